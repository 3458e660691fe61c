package theme

import "git.lost.host/meutraa/eotw/internal/game"

type Theme interface {
	RenderCue(cue game.ActiveCue) string
	RenderTarget(direction game.Direction) string
	RenderPulse(direction game.Direction) string
	RenderMiss() string
}

package theme

import (
	"fmt"

	"git.lost.host/meutraa/eotw/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderCue(cue game.ActiveCue) string {
	color := getSpeedColor(cue.Speed)
	sym := syms[cue.Direction]
	if cue.Scale < 0.6 {
		sym = fallingSym
	}
	return colored(color, sym)
}

func (t *DefaultTheme) RenderTarget(direction game.Direction) string {
	return colored(targetColor, targetSyms[direction])
}

func (t *DefaultTheme) RenderPulse(direction game.Direction) string {
	return colored(pulseColor, syms[direction])
}

func (t *DefaultTheme) RenderMiss() string {
	return colored(missColor, missSym)
}

func colored(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	fallingSym = "·"
	missSym    = "✗"
)

var (
	syms        = [...]string{"▲", "▼", "◀", "▶"}
	targetSyms  = [...]string{"△", "▽", "◁", "▷"}
	targetColor = Color{106, 106, 106}
	pulseColor  = Color{0, 236, 128}
	missColor   = Color{236, 30, 0}
	speedColors = map[game.Speed]Color{
		game.Slow:   {236, 30, 0},  // red
		game.Medium: {0, 118, 236}, // blue
		game.Fast:   {0, 200, 60},  // green
	}
)

func getSpeedColor(s game.Speed) Color {
	col, ok := speedColors[s]
	if !ok {
		return Color{255, 255, 255}
	}
	return col
}

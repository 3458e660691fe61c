package parser

import "git.lost.host/meutraa/eotw/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}

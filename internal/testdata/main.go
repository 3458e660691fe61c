package testdata

import (
	"git.lost.host/meutraa/eotw/internal/game"
	"git.lost.host/meutraa/eotw/internal/parser"
)

const data = `
name = "Test Song"
filename = "test.ogg"

[[arrows]]
click_time = 1.0
speed = "Slow"
direction = "Up"

[[arrows]]
click_time = 2.0
speed = "Slow"
direction = "Down"

[[arrows]]
click_time = 3.0
speed = "Slow"
direction = "Left"

[[arrows]]
click_time = 4.0
speed = "Medium"
direction = "Up"

[[arrows]]
click_time = 5.0
speed = "Fast"
direction = "Right"
`

func GetChart() (*game.Chart, error) {
	p := parser.DefaultParser{}
	return p.ParseBytes("test.toml", []byte(data))
}

package render

import (
	"bytes"
	"testing"

	"git.lost.host/meutraa/eotw/internal/game"
)

func TestProject(t *testing.T) {
	r := DefaultRenderer{}
	r.SetSize(80, 24)

	tests := []struct {
		p        game.Position
		col, row uint16
	}{
		{game.Position{X: -400, Y: 300}, 1, 1},
		{game.Position{X: 0, Y: 0}, 41, 13},
		{game.Position{X: game.TargetPosition, Y: game.Up.Y()}, 61, 7},
		{game.Position{X: 1000, Y: -1000}, 80, 24},
	}
	for _, test := range tests {
		col, row := r.Project(test.p)
		if col != test.col || row != test.row {
			t.Fatalf("%v: expected %v,%v got %v,%v", test.p, test.col, test.row, col, row)
		}
	}
}

func TestVisible(t *testing.T) {
	r := DefaultRenderer{}
	if !r.Visible(game.Position{X: game.SpawnPosition, Y: game.Right.Y()}) {
		t.Fatal("spawn position should be visible")
	}
	if r.Visible(game.Position{X: game.FlyByPosition, Y: 0}) {
		t.Fatal("fly-by position should be off screen")
	}
}

func TestDecorationsExpire(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}
	r.AddDecoration(3, 2, "x", 2)

	for i := 0; i < 2; i++ {
		r.tickDecorations()
		r.flush()
		if out.String() != "\033[2;3Hx" {
			t.Fatalf("frame %v: unexpected output %q", i, out.String())
		}
		out.Reset()
	}
	r.tickDecorations()
	r.flush()
	if out.Len() != 0 || len(r.decorations) != 0 {
		t.Fatalf("decoration outlived its frames: %q", out.String())
	}
}

func TestWidthSkipsEscapes(t *testing.T) {
	tests := []struct {
		message string
		width   int
	}{
		{"", 0},
		{"x", 1},
		{"Score: 10", 9},
		{"\033[38;2;236;30;0m▲\033[0m", 1},
	}
	for _, test := range tests {
		if w := width(test.message); w != test.width {
			t.Fatalf("%q: expected %v, got %v", test.message, test.width, w)
		}
	}
}

func TestClearBlanksDrawnCells(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}

	r.Clear()
	r.flush()
	if out.Len() != 0 {
		t.Fatalf("clear of an empty frame wrote %q", out.String())
	}

	r.Fill(2, 3, "\033[31m▲\033[0m")
	r.Fill(1, 2, "abc")
	r.flush()
	out.Reset()

	r.Clear()
	r.flush()
	if out.String() != "\033[2;3H \033[1;2H   " {
		t.Fatalf("unexpected clear output %q", out.String())
	}
	if bytes.Contains(out.Bytes(), []byte("\033[2J")) {
		t.Fatal("clear wiped the whole screen")
	}

	out.Reset()
	r.Clear()
	r.flush()
	if out.Len() != 0 {
		t.Fatalf("cells were blanked twice: %q", out.String())
	}
}

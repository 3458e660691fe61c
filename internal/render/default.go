package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/eotw/internal/game"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out io.Writer

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
	drawn        []cell
	columns      int
	rows         int
}

// cell is a span of the screen written by Fill since the last Clear.
type cell struct {
	row, column uint16
	width       int
}

type decoration struct {
	X, Y    uint16
	Content string
	Frames  int // remaining frames until removed
}

func (r *DefaultRenderer) Init() error {
	if nil == r.Out {
		r.Out = os.Stdout
	}
	fd := int(os.Stdout.Fd())
	columns, rows, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	r.columns, r.rows = columns, rows

	state, err := term.MakeRaw(fd)
	if nil != err {
		return fmt.Errorf("unable to make terminal raw: %w", err)
	}
	r.restoreState = state

	fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) Size() (int, int) {
	return r.columns, r.rows
}

// SetSize overrides the terminal size, for example after a resize.
func (r *DefaultRenderer) SetSize(columns, rows int) {
	r.columns, r.rows = columns, rows
}

// Project maps a world position onto a terminal cell. Rows and columns
// start at 1.
func (r *DefaultRenderer) Project(p game.Position) (col, row uint16) {
	x := (p.X + game.WindowWidth/2) / game.WindowWidth
	y := (game.WindowHeight/2 - p.Y) / game.WindowHeight
	return uint16(clamp(int(x*float32(r.columns))+1, 1, r.columns)),
		uint16(clamp(int(y*float32(r.rows))+1, 1, r.rows))
}

func (r *DefaultRenderer) Visible(p game.Position) bool {
	return p.X >= -game.WindowWidth/2 && p.X < game.WindowWidth/2 &&
		p.Y > -game.WindowHeight/2 && p.Y <= game.WindowHeight/2
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *DefaultRenderer) AddDecoration(col, row uint16, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames == 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	cont := true
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now)

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

// Clear blanks every cell drawn since the previous Clear.
func (r *DefaultRenderer) Clear() {
	for _, c := range r.drawn {
		r.moveTo(c.row, c.column)
		r.buffer.WriteString(strings.Repeat(" ", c.width))
	}
	r.drawn = r.drawn[:0]
}

func (r *DefaultRenderer) Fill(row, column uint16, message string) {
	r.moveTo(row, column)
	r.buffer.WriteString(message)
	r.drawn = append(r.drawn, cell{row: row, column: column, width: width(message)})
}

func (r *DefaultRenderer) moveTo(row, column uint16) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
}

// width counts the runes of message that take up a cell, skipping escape
// sequences.
func width(message string) int {
	n := 0
	escape := false
	for _, c := range message {
		switch {
		case c == '\033':
			escape = true
		case escape:
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				escape = false
			}
		default:
			n++
		}
	}
	return n
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
}

var _ Renderer = (*DefaultRenderer)(nil)

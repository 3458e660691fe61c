package input

import (
	"unicode"

	"git.lost.host/meutraa/eotw/internal/game"
	"github.com/eiannone/keyboard"
)

// Reader turns keyboard events into per tick key snapshots.
type Reader struct {
	events   <-chan keyboard.KeyEvent
	bindings Bindings
}

func NewReader(events <-chan keyboard.KeyEvent, bindings Bindings) *Reader {
	if nil == bindings {
		bindings = DefaultBindings()
	}
	return &Reader{events: events, bindings: bindings}
}

// Open starts listening to the terminal keyboard. Close must be called
// to restore the terminal.
func Open(bindings Bindings) (*Reader, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	return NewReader(events, bindings), nil
}

func Close() error {
	return keyboard.Close()
}

// Poll drains the events queued since the last call without blocking.
// quit is set when Esc or Ctrl-C was pressed.
func (r *Reader) Poll() (keys game.Keys, quit bool) {
	for i := len(r.events); i > 0; i-- {
		ev := <-r.events
		if nil != ev.Err {
			continue
		}
		switch ev.Key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			quit = true
		case keyboard.KeyArrowUp:
			keys = keys.With(game.KeyArrowUp)
		case keyboard.KeyArrowDown:
			keys = keys.With(game.KeyArrowDown)
		case keyboard.KeyArrowLeft:
			keys = keys.With(game.KeyArrowLeft)
		case keyboard.KeyArrowRight:
			keys = keys.With(game.KeyArrowRight)
		default:
			if k, ok := r.bindings[unicode.ToLower(ev.Rune)]; ok {
				keys = keys.With(k)
			}
		}
	}
	return keys, quit
}

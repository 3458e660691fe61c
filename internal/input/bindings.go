package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"git.lost.host/meutraa/eotw/internal/game"
	"gopkg.in/ini.v1"
)

// Bindings maps letter keys to the alternate key of each direction.
// Arrow keys are always bound.
type Bindings map[rune]game.Key

func DefaultBindings() Bindings {
	return Bindings{
		'w': game.KeyUpAlt,
		's': game.KeyDownAlt,
		'a': game.KeyLeftAlt,
		'd': game.KeyRightAlt,
	}
}

// LoadBindings reads the [keys] section of an ini file, for example
//
//	[keys]
//	up = k
//	down = j
//
// Directions missing from the file keep their default key.
func LoadBindings(path string) (Bindings, error) {
	f, err := ini.Load(path)
	if nil != err {
		return nil, fmt.Errorf("unable to read key bindings: %w", err)
	}
	section := f.Section("keys")

	alt := map[game.Direction]rune{}
	for r, k := range DefaultBindings() {
		alt[game.Direction(k-game.KeyUpAlt)] = r
	}
	for _, d := range game.Directions() {
		key, err := section.GetKey(strings.ToLower(d.String()))
		if nil != err {
			continue
		}
		value := key.String()
		r, size := utf8.DecodeRuneInString(value)
		if r == utf8.RuneError || size != len(value) {
			return nil, fmt.Errorf("key binding for %v must be a single character, got %q", d, value)
		}
		alt[d] = r
	}

	b := Bindings{}
	for d, r := range alt {
		if _, ok := b[r]; ok {
			return nil, fmt.Errorf("key %q is bound twice", r)
		}
		b[r] = d.Keys()[1]
	}
	return b, nil
}

package game

// Key is one of the physical keys the game listens to, two per direction.
type Key uint8

const (
	KeyArrowUp Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyUpAlt
	KeyDownAlt
	KeyLeftAlt
	KeyRightAlt

	KeyCount
)

// Keys is the set of keys pressed during one tick.
type Keys uint8

func (k Keys) With(key Key) Keys {
	return k | 1<<key
}

func (k Keys) Has(key Key) bool {
	return k&(1<<key) != 0
}

// JustPressed reports whether either key of d was pressed.
func (k Keys) JustPressed(d Direction) bool {
	for _, key := range d.Keys() {
		if k.Has(key) {
			return true
		}
	}
	return false
}

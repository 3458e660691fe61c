package game

import (
	"fmt"
	"math"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// Directions in lane order, top to bottom.
func Directions() [4]Direction {
	return [4]Direction{Up, Down, Left, Right}
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", d)
}

func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if s == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Y is the lane offset on the axis perpendicular to travel.
func (d Direction) Y() float32 {
	switch d {
	case Up:
		return WindowHeight / 4
	case Down:
		return WindowHeight / 12
	case Left:
		return -WindowHeight / 12
	default:
		return -WindowHeight / 4
	}
}

// Rotation in radians. Cues point right unrotated.
func (d Direction) Rotation() float32 {
	switch d {
	case Up:
		return math.Pi * 0.5
	case Down:
		return -math.Pi * 0.5
	case Left:
		return math.Pi
	default:
		return 0
	}
}

// Keys returns the two physical keys that play this direction.
func (d Direction) Keys() [2]Key {
	switch d {
	case Up:
		return [2]Key{KeyArrowUp, KeyUpAlt}
	case Down:
		return [2]Key{KeyArrowDown, KeyDownAlt}
	case Left:
		return [2]Key{KeyArrowLeft, KeyLeftAlt}
	default:
		return [2]Key{KeyArrowRight, KeyRightAlt}
	}
}

package game

import "fmt"

type Speed uint8

const (
	Slow Speed = iota
	Medium
	Fast
)

var speedNames = [...]string{"Slow", "Medium", "Fast"}

var speedMultipliers = [...]float32{1.0, 1.2, 1.5}

func (s Speed) String() string {
	if int(s) < len(speedNames) {
		return speedNames[s]
	}
	return fmt.Sprintf("Speed(%d)", s)
}

func ParseSpeed(s string) (Speed, error) {
	for i, name := range speedNames {
		if s == name {
			return Speed(i), nil
		}
	}
	return 0, fmt.Errorf("unknown speed %q", s)
}

func (s Speed) Multiplier() float32 {
	if int(s) < len(speedMultipliers) {
		return speedMultipliers[s]
	}
	return 1
}

// Value is the absolute travel speed in units per second.
func (s Speed) Value() float32 {
	return BaseSpeed * s.Multiplier()
}

// TravelTime is how long a cue of this speed takes from spawn to target.
func (s Speed) TravelTime() float64 {
	return float64(Distance / s.Value())
}

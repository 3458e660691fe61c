package game

import "math"

const (
	easingEpsilon float32 = 0.02
	minScale      float32 = 0.2
)

// Advance moves c along the travel axis by dt seconds. Past the far edge
// of the hit window the cue drops, spins and shrinks. Only Position.X is
// used for judgement.
func Advance(c *ActiveCue, dt float32) {
	c.Position.X += dt * c.Speed.Value()

	overshoot := c.Position.X - (TargetPosition + Threshold)
	if overshoot < easingEpsilon {
		return
	}
	c.Position.Y -= dt * overshoot * 2
	c.Rotation -= dt * overshoot * c.Speed.Multiplier() / 720
	c.Scale = float32(math.Max(float64(minScale), float64(1-overshoot/300)))
}

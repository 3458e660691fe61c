package game

const (
	WindowWidth  float32 = 800.0
	WindowHeight float32 = 600.0

	// BaseSpeed is the travel speed of a Slow cue in units per second.
	BaseSpeed float32 = 200.0

	SpawnPosition  float32 = -400.0
	TargetPosition float32 = 200.0

	// Threshold is the radius of the hit window around TargetPosition.
	Threshold float32 = 20.0

	// Distance travelled by a cue between spawning and reaching the target.
	Distance = TargetPosition - SpawnPosition

	// FlyByPosition is where an unresolved cue counts as missed.
	FlyByPosition = 2 * TargetPosition
)

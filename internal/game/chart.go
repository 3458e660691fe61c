package game

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Cue is one authored note. SpawnTime is derived once from HitTime and
// Speed and never recomputed.
type Cue struct {
	HitTime   float64 // Seconds after song start the player should press
	SpawnTime float64 // Seconds after song start the cue appears
	Direction Direction
	Speed     Speed
}

func NewCue(hitTime float64, speed Speed, direction Direction) Cue {
	return Cue{
		HitTime:   hitTime,
		SpawnTime: hitTime - speed.TravelTime(),
		Direction: direction,
		Speed:     speed,
	}
}

// Chart is a loaded song. Cues are sorted by SpawnTime.
type Chart struct {
	Name     string
	Filename string
	Cues     []Cue
}

// Duration is the hit time of the last cue.
func (c *Chart) Duration() float64 {
	last := 0.0
	for _, cue := range c.Cues {
		if cue.HitTime > last {
			last = cue.HitTime
		}
	}
	return last
}

// Sum identifies the chart content for score history.
func (c *Chart) Sum() string {
	h := sha256.New()
	h.Write([]byte(c.Name))
	h.Write([]byte{0})
	h.Write([]byte(c.Filename))
	h.Write([]byte{0})
	var buf [10]byte
	for _, cue := range c.Cues {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(cue.HitTime))
		buf[8] = byte(cue.Direction)
		buf[9] = byte(cue.Speed)
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

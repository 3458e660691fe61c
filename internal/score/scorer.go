package score

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/eotw/internal/game"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the result of this performance
	Save(chart *game.Chart, state State) error

	// Load up previous results for the chart, oldest first
	Load(chart *game.Chart) ([]History, error)

	Judge(cue *game.ActiveCue, keys game.Keys) game.Judgement
}

type History struct {
	Sum      string
	State    State
	PlayedAt time.Time
}

// State is the running score of one session. All counters only grow.
type State struct {
	Corrects uint64
	Fails    uint64
	Score    uint64
}

func (s *State) Apply(j game.Judgement) {
	switch j := j.(type) {
	case game.Hit:
		s.Corrects++
		s.Score += j.Points
	case game.Miss:
		s.Fails++
	}
}

func (s State) String() string {
	return fmt.Sprintf("Score: %v. Corrects: %v. Fails: %v.", s.Score, s.Corrects, s.Fails)
}

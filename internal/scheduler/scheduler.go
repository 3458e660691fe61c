package scheduler

import "git.lost.host/meutraa/eotw/internal/game"

// Scheduler hands out the cues of a chart as their spawn times come up.
// Pending cues are consumed from the front and never re-sorted.
type Scheduler struct {
	pending []game.Cue
}

// New copies the cues of chart, which must already be sorted by spawn time.
func New(chart *game.Chart) *Scheduler {
	pending := make([]game.Cue, len(chart.Cues))
	copy(pending, chart.Cues)
	return &Scheduler{pending: pending}
}

// Due returns the cues spawning within (sec-delta, sec], in chart order,
// and drops them from the queue. Cues still pending at or before sec-delta
// missed their window; they are returned at the front as well and counted
// in late, so the queue never stalls behind them. A zero delta marks the
// first tick of a timeline, where everything up to sec is due on time.
func (s *Scheduler) Due(sec, delta float64) (due []game.Cue, late int) {
	n := 0
	for n < len(s.pending) && s.pending[n].SpawnTime <= sec {
		if delta > 0 && s.pending[n].SpawnTime <= sec-delta {
			late++
		}
		n++
	}
	if n == 0 {
		return nil, 0
	}
	due = s.pending[:n:n]
	s.pending = s.pending[n:]
	return due, late
}

func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Done reports whether every cue has been dispatched.
func (s *Scheduler) Done() bool {
	return len(s.pending) == 0
}

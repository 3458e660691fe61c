package session

import (
	"io"
	"time"

	"git.lost.host/meutraa/eotw/internal/audio"
	"git.lost.host/meutraa/eotw/internal/clock"
	"git.lost.host/meutraa/eotw/internal/game"
	"git.lost.host/meutraa/eotw/internal/scheduler"
	"git.lost.host/meutraa/eotw/internal/score"
	"github.com/sirupsen/logrus"
)

const DefaultPreRoll = 3 * time.Second

type Options struct {
	// PreRoll delays the song after Begin so early cues can travel into view.
	// Zero means DefaultPreRoll; a negative value starts the song on the
	// first tick.
	PreRoll time.Duration
	Player  audio.Player
	Scorer  score.Scorer
	Sink    Sink
	Logger  logrus.FieldLogger
	// Now is the wall clock, time.Now when nil.
	Now func() time.Time
}

// Session plays one chart. It is not safe for concurrent use; Tick is
// meant to be driven by a single frame loop.
type Session struct {
	clock   *clock.Clock
	preRoll float64
	player  audio.Player
	scorer  score.Scorer
	sink    Sink
	log     logrus.FieldLogger

	chart   *game.Chart
	queue   *scheduler.Scheduler
	field   game.Field
	state   score.State
	tick    uint64
	started bool
}

func New(opts Options) *Session {
	s := &Session{
		clock:   clock.New(opts.Now),
		preRoll: opts.PreRoll.Seconds(),
		player:  opts.Player,
		scorer:  opts.Scorer,
		sink:    opts.Sink,
		log:     opts.Logger,
	}
	if opts.PreRoll == 0 {
		s.preRoll = DefaultPreRoll.Seconds()
	}
	if nil == s.player {
		s.player = audio.Silent{}
	}
	if nil == s.scorer {
		s.scorer = &score.DefaultScorer{}
	}
	if nil == s.sink {
		s.sink = discard{}
	}
	if nil == s.log {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}
	return s
}

// Begin resets the clock and installs chart as the pending queue,
// clearing the score and any active cues.
func (s *Session) Begin(chart *game.Chart) {
	s.clock.Reset()
	s.chart = chart
	s.queue = scheduler.New(chart)
	s.field.Clear()
	s.state = score.State{}
	s.tick = 0
	s.started = false
	s.log.WithFields(logrus.Fields{
		"chart": chart.Name,
		"cues":  len(chart.Cues),
	}).Info("session started")
}

// Tick advances the session to now: due cues are activated, active cues
// move, then each settled cue is judged against keys.
func (s *Session) Tick(now time.Time, keys game.Keys) {
	if nil == s.queue {
		return
	}
	s.clock.Tick(now)
	s.tick++

	elapsed := s.clock.ElapsedSeconds()
	delta := s.clock.DeltaSecondsF64()
	s.startSong(elapsed)

	// Charts are timed from the start of the song.
	sec := elapsed - s.preRoll
	due, late := s.queue.Due(sec, delta)
	if late > 0 {
		s.log.WithFields(logrus.Fields{
			"late": late,
			"sec":  sec,
		}).Warn("cues activated after their window")
	}
	for _, cue := range due {
		active := game.Spawn(cue)
		id := s.field.Insert(active, s.tick)
		s.log.WithFields(logrus.Fields{
			"direction": cue.Direction,
			"speed":     cue.Speed,
			"spawn":     cue.SpawnTime,
		}).Debug("cue activated")
		s.sink.Notify(Activated{
			ID:        id,
			Direction: active.Direction,
			Speed:     active.Speed,
			Position:  active.Position,
		})
	}

	dt := s.clock.DeltaSeconds()
	s.field.Settled(s.tick, func(id game.ID, c *game.ActiveCue) {
		game.Advance(c, dt)
	})

	s.field.Settled(s.tick, func(id game.ID, c *game.ActiveCue) {
		j := s.scorer.Judge(c, keys)
		if nil == j {
			return
		}
		s.field.Remove(id)
		s.state.Apply(j)
		entry := s.log.WithField("direction", c.Direction)
		if hit, ok := j.(game.Hit); ok {
			entry.WithField("points", hit.Points).Debug("cue hit")
		} else {
			entry.Debug("cue missed")
		}
		s.sink.Notify(Resolved{ID: id, Direction: c.Direction, Judgement: j})
	})
}

func (s *Session) startSong(elapsed float64) {
	if s.started {
		return
	}
	if elapsed <= s.preRoll {
		return
	}
	s.started = true
	s.log.WithFields(logrus.Fields{
		"chart":    s.chart.Name,
		"filename": s.chart.Filename,
	}).Info("starting song")
	if err := s.player.Play(s.chart.Name, s.chart.Filename); nil != err {
		s.log.WithError(err).Error("unable to start song")
	}
}

// ResetClock restarts the timeline only. Pending and active cues and
// the score are left as they are.
func (s *Session) ResetClock() {
	s.clock.Reset()
}

func (s *Session) CurrentScore() score.State {
	return s.state
}

// SongTime is the time since the song started, negative during pre-roll.
func (s *Session) SongTime() float64 {
	return s.clock.ElapsedSeconds() - s.preRoll
}

func (s *Session) Pending() int {
	if nil == s.queue {
		return 0
	}
	return s.queue.Pending()
}

// Active visits every cue on the field.
func (s *Session) Active(fn func(id game.ID, c game.ActiveCue)) {
	s.field.Each(func(id game.ID, c *game.ActiveCue) {
		fn(id, *c)
	})
}

// Done reports whether every cue of the chart has been resolved.
func (s *Session) Done() bool {
	return nil != s.queue && s.queue.Done() && s.field.Len() == 0
}

func (s *Session) Chart() *game.Chart {
	return s.chart
}

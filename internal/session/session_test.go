package session

import (
	"testing"
	"time"

	"git.lost.host/meutraa/eotw/internal/game"
	"git.lost.host/meutraa/eotw/internal/score"
	"git.lost.host/meutraa/eotw/internal/testdata"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const frame = 100 * time.Millisecond

type fakePlayer struct {
	plays []string
}

func (p *fakePlayer) Play(name, filename string) error {
	p.plays = append(p.plays, filename)
	return nil
}

func (p *fakePlayer) Close() {}

type harness struct {
	now    time.Time
	player *fakePlayer
	events []Event
	s      *Session
}

func newHarness(chart *game.Chart) *harness {
	h := &harness{now: time.Unix(100, 0), player: &fakePlayer{}}
	h.s = New(Options{
		PreRoll: 3 * time.Second,
		Player:  h.player,
		Sink:    SinkFunc(func(ev Event) { h.events = append(h.events, ev) }),
		Now:     func() time.Time { return h.now },
	})
	h.s.Begin(chart)
	return h
}

func (h *harness) step(keys game.Keys) {
	h.now = h.now.Add(frame)
	h.s.Tick(h.now, keys)
}

// lead returns the active cue furthest along the track.
func (h *harness) lead() (game.ActiveCue, bool) {
	var lead game.ActiveCue
	found := false
	h.s.Active(func(id game.ID, c game.ActiveCue) {
		if !found || c.Position.X > lead.Position.X {
			lead = c
			found = true
		}
	})
	return lead, found
}

func (h *harness) resolved() []Resolved {
	out := []Resolved{}
	for _, ev := range h.events {
		if r, ok := ev.(Resolved); ok {
			out = append(out, r)
		}
	}
	return out
}

func (h *harness) activated() []Activated {
	out := []Activated{}
	for _, ev := range h.events {
		if a, ok := ev.(Activated); ok {
			out = append(out, a)
		}
	}
	return out
}

func single(hitTime float64, d game.Direction) *game.Chart {
	return &game.Chart{
		Name:     "single",
		Filename: "single.ogg",
		Cues:     []game.Cue{game.NewCue(hitTime, game.Slow, d)},
	}
}

func TestSongStartsOnceAfterPreRoll(t *testing.T) {
	h := newHarness(single(10, game.Up))
	for i := 0; i < 30; i++ {
		h.step(0)
	}
	if len(h.player.plays) != 0 {
		t.Fatalf("song started during pre-roll at %v", h.s.SongTime())
	}
	for i := 0; i < 10; i++ {
		h.step(0)
	}
	if len(h.player.plays) != 1 || h.player.plays[0] != "single.ogg" {
		t.Fatalf("expected one start of single.ogg, got %v", h.player.plays)
	}
}

func TestPreRollOption(t *testing.T) {
	tests := []struct {
		preRoll time.Duration
		frames  int
	}{
		{0, 31},
		{time.Second, 11},
		{-time.Second, 1},
	}
	for _, test := range tests {
		now := time.Unix(100, 0)
		player := &fakePlayer{}
		s := New(Options{
			PreRoll: test.preRoll,
			Player:  player,
			Now:     func() time.Time { return now },
		})
		s.Begin(single(10, game.Up))
		for i := 1; i <= test.frames; i++ {
			now = now.Add(frame)
			s.Tick(now, 0)
			if i < test.frames && len(player.plays) != 0 {
				t.Fatalf("pre-roll %v: song started at frame %v", test.preRoll, i)
			}
		}
		if len(player.plays) != 1 {
			t.Fatalf("pre-roll %v: expected a start at frame %v, got %v", test.preRoll, test.frames, player.plays)
		}
	}
}

func TestContiguousTicksAreNeverLate(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	now := time.Unix(100, 0)
	s := New(Options{Logger: logger, Now: func() time.Time { return now }})
	s.Begin(chart)
	for i := 0; i < 2000 && !s.Done(); i++ {
		now = now.Add(frame)
		s.Tick(now, 0)
	}
	for _, entry := range hook.AllEntries() {
		if entry.Level <= logrus.WarnLevel {
			t.Fatalf("unexpected %v: %v %v", entry.Level, entry.Message, entry.Data)
		}
	}
}

func TestSpawnedCueWaitsOneTick(t *testing.T) {
	h := newHarness(single(5, game.Up))
	for len(h.activated()) == 0 {
		h.step(0)
		if h.s.SongTime() > 5 {
			t.Fatal("cue never activated")
		}
	}
	a := h.activated()[0]
	if a.Position.X != game.SpawnPosition || a.Position.Y != game.Up.Y() {
		t.Fatalf("unexpected spawn position %v", a.Position)
	}
	if h.s.SongTime() < 2.0 || h.s.SongTime() > 2.0+frame.Seconds() {
		t.Fatalf("activated at %v, expected spawn time 2.0", h.s.SongTime())
	}
	c, _ := h.lead()
	if c.Position.X != game.SpawnPosition {
		t.Fatalf("cue moved on its spawn tick: %v", c.Position.X)
	}

	h.step(0)
	c, _ = h.lead()
	if c.Position.X != game.SpawnPosition+20 {
		t.Fatalf("expected cue to move 20 units, got %v", c.Position.X)
	}
	if len(h.activated()) != 1 {
		t.Fatalf("cue activated %v times", len(h.activated()))
	}
}

// advanceTo steps without input until the lead cue is at x.
func advanceTo(t *testing.T, h *harness, x float32) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if c, ok := h.lead(); ok && c.Position.X == x {
			return
		}
		h.step(0)
	}
	t.Fatalf("lead cue never reached %v", x)
}

func TestPerfectHit(t *testing.T) {
	h := newHarness(single(5, game.Left))
	advanceTo(t, h, game.TargetPosition-20)

	// Wrong lane does nothing.
	h.step(game.Keys(0).With(game.KeyArrowRight))
	if len(h.resolved()) != 0 {
		t.Fatalf("wrong key resolved the cue: %v", h.resolved())
	}

	h = newHarness(single(5, game.Left))
	advanceTo(t, h, game.TargetPosition-20)
	h.step(game.Keys(0).With(game.KeyArrowLeft))

	r := h.resolved()
	if len(r) != 1 || r[0].Judgement != (game.Hit{Points: 100}) || r[0].Direction != game.Left {
		t.Fatalf("expected a perfect hit, got %v", r)
	}
	expected := score.State{Corrects: 1, Score: 100}
	if h.s.CurrentScore() != expected {
		t.Fatalf("expected %v, got %v", expected, h.s.CurrentScore())
	}
	if !h.s.Done() {
		t.Fatal("expected session to be done")
	}
}

func TestEdgeHit(t *testing.T) {
	h := newHarness(single(5, game.Down))
	advanceTo(t, h, game.TargetPosition)
	h.step(game.Keys(0).With(game.KeyDownAlt))
	r := h.resolved()
	if len(r) != 1 || r[0].Judgement != (game.Hit{Points: 10}) {
		t.Fatalf("expected a 10 point hit, got %v", r)
	}
}

func TestFlyBy(t *testing.T) {
	h := newHarness(single(5, game.Right))
	for i := 0; i < 500 && len(h.resolved()) == 0; i++ {
		h.step(0)
	}
	r := h.resolved()
	if len(r) != 1 || r[0].Judgement != (game.Miss{}) {
		t.Fatalf("expected a miss, got %v", r)
	}
	expected := score.State{Fails: 1}
	if h.s.CurrentScore() != expected {
		t.Fatalf("expected %v, got %v", expected, h.s.CurrentScore())
	}
}

func TestOneKeyHitsOverlappingCues(t *testing.T) {
	chart := &game.Chart{
		Name:     "double",
		Filename: "double.ogg",
		Cues: []game.Cue{
			game.NewCue(5.0, game.Slow, game.Up),
			game.NewCue(5.05, game.Slow, game.Up),
		},
	}
	h := newHarness(chart)
	advanceTo(t, h, game.TargetPosition-20)
	h.step(game.Keys(0).With(game.KeyArrowUp))

	r := h.resolved()
	if len(r) != 2 {
		t.Fatalf("expected both cues resolved, got %v", r)
	}
	expected := score.State{Corrects: 2, Score: 110}
	if h.s.CurrentScore() != expected {
		t.Fatalf("expected %v, got %v", expected, h.s.CurrentScore())
	}
}

func TestWholeChartMissed(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	h := newHarness(chart)
	for i := 0; i < 2000 && !h.s.Done(); i++ {
		h.step(0)
	}
	if !h.s.Done() {
		t.Fatal("session never finished")
	}
	if len(h.activated()) != len(chart.Cues) {
		t.Fatalf("expected %v activations, got %v", len(chart.Cues), len(h.activated()))
	}
	expected := score.State{Fails: uint64(len(chart.Cues))}
	if h.s.CurrentScore() != expected {
		t.Fatalf("expected %v, got %v", expected, h.s.CurrentScore())
	}
}

func TestResetClockKeepsQueueAndScore(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal(err)
	}
	h := newHarness(chart)
	for len(h.resolved()) == 0 {
		h.step(0)
	}
	before := h.s.CurrentScore()
	pending := h.s.Pending()

	h.s.ResetClock()
	if h.s.SongTime() != -3 {
		t.Fatalf("expected song time -3 after reset, got %v", h.s.SongTime())
	}
	if h.s.CurrentScore() != before || h.s.Pending() != pending {
		t.Fatal("resetting the clock changed the session")
	}
}

func TestCurrentScoreIsStable(t *testing.T) {
	h := newHarness(single(5, game.Up))
	for i := 0; i < 100; i++ {
		h.step(0)
	}
	if h.s.CurrentScore() != h.s.CurrentScore() {
		t.Fatal("score changed without a tick")
	}
}

func TestBeginClearsSession(t *testing.T) {
	h := newHarness(single(5, game.Up))
	for i := 0; i < 500 && !h.s.Done(); i++ {
		h.step(0)
	}
	if h.s.CurrentScore().Fails != 1 {
		t.Fatal("expected a miss before restarting")
	}

	h.s.Begin(single(5, game.Down))
	if h.s.CurrentScore() != (score.State{}) {
		t.Fatalf("score not cleared: %v", h.s.CurrentScore())
	}
	if h.s.Pending() != 1 || h.s.Done() {
		t.Fatal("expected a fresh queue")
	}
	if _, ok := h.lead(); ok {
		t.Fatal("active cues survived Begin")
	}
}

func BenchmarkTick(b *testing.B) {
	chart := &game.Chart{Filename: "bench.ogg"}
	for i := 0; i < 10000; i++ {
		chart.Cues = append(chart.Cues, game.NewCue(float64(i)*0.01, game.Slow, game.Directions()[i%4]))
	}
	now := time.Unix(0, 0)
	s := New(Options{Now: func() time.Time { return now }})
	s.Begin(chart)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		now = now.Add(time.Millisecond)
		s.Tick(now, 0)
	}
}

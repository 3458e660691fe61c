package clock

import "time"

// Clock is the game time source. It only advances when Tick is called,
// so the song timeline is independent of when the process started.
type Clock struct {
	now func() time.Time

	start    time.Time
	lastTick time.Time
	ticked   bool

	delta   time.Duration
	elapsed time.Duration

	deltaSeconds    float32
	deltaSecondsF64 float64
	elapsedSeconds  float64
}

// New returns a clock reading reset instants from now, or from the wall
// clock when now is nil.
func New(now func() time.Time) *Clock {
	if nil == now {
		now = time.Now
	}
	c := &Clock{now: now}
	c.start = c.now()
	return c
}

// Reset restarts the timeline at the current instant. The next Tick
// reports a zero delta.
func (c *Clock) Reset() {
	c.start = c.now()
	c.ticked = false
	c.lastTick = time.Time{}
	c.delta = 0
	c.elapsed = 0
	c.deltaSeconds = 0
	c.deltaSecondsF64 = 0
	c.elapsedSeconds = 0
}

// Tick records a frame at now. It must be called once per frame.
func (c *Clock) Tick(now time.Time) {
	if c.ticked {
		c.delta = now.Sub(c.lastTick)
	} else {
		c.delta = 0
	}
	c.deltaSeconds = float32(c.delta.Seconds())
	c.deltaSecondsF64 = c.delta.Seconds()

	c.elapsed = now.Sub(c.start)
	c.elapsedSeconds = c.elapsed.Seconds()

	c.lastTick = now
	c.ticked = true
}

func (c *Clock) Elapsed() time.Duration { return c.elapsed }
func (c *Clock) Delta() time.Duration   { return c.delta }

// ElapsedSeconds is kept in double precision; schedules are compared
// against it over the length of a whole song.
func (c *Clock) ElapsedSeconds() float64 { return c.elapsedSeconds }

// DeltaSeconds is the single precision frame delta used for motion.
func (c *Clock) DeltaSeconds() float32 { return c.deltaSeconds }

func (c *Clock) DeltaSecondsF64() float64 { return c.deltaSecondsF64 }

package game

type Position struct {
	X, Y float32
}

// ActiveCue is a spawned cue moving towards the target.
type ActiveCue struct {
	Position  Position
	Rotation  float32
	Scale     float32
	Direction Direction
	Speed     Speed
}

// Spawn creates the runtime cue at the spawn coordinate of its lane.
func Spawn(c Cue) ActiveCue {
	return ActiveCue{
		Position:  Position{X: SpawnPosition, Y: c.Direction.Y()},
		Rotation:  c.Direction.Rotation(),
		Scale:     1,
		Direction: c.Direction,
		Speed:     c.Speed,
	}
}

// ID refers to a slot in a Field. A stale ID never resolves to a newer
// cue occupying the same slot.
type ID struct {
	index      uint32
	generation uint32
}

type slot struct {
	cue        ActiveCue
	generation uint32
	alive      bool
	born       uint64
}

// Field holds the active cues of a session.
type Field struct {
	slots []slot
	free  []uint32
	count int
}

func (f *Field) Insert(c ActiveCue, tick uint64) ID {
	var i uint32
	if n := len(f.free); n > 0 {
		i = f.free[n-1]
		f.free = f.free[:n-1]
	} else {
		f.slots = append(f.slots, slot{})
		i = uint32(len(f.slots) - 1)
	}
	s := &f.slots[i]
	s.generation++
	s.cue = c
	s.alive = true
	s.born = tick
	f.count++
	return ID{index: i, generation: s.generation}
}

func (f *Field) Get(id ID) (*ActiveCue, bool) {
	if int(id.index) >= len(f.slots) {
		return nil, false
	}
	s := &f.slots[id.index]
	if !s.alive || s.generation != id.generation {
		return nil, false
	}
	return &s.cue, true
}

func (f *Field) Remove(id ID) bool {
	if _, ok := f.Get(id); !ok {
		return false
	}
	f.slots[id.index].alive = false
	f.free = append(f.free, id.index)
	f.count--
	return true
}

func (f *Field) Len() int { return f.count }

func (f *Field) Clear() {
	f.free = f.free[:0]
	for i := range f.slots {
		f.slots[i].alive = false
		f.free = append(f.free, uint32(i))
	}
	f.count = 0
}

// Each visits every live cue in slot order. Removing the visited cue
// from within fn is allowed.
func (f *Field) Each(fn func(id ID, c *ActiveCue)) {
	for i := range f.slots {
		s := &f.slots[i]
		if !s.alive {
			continue
		}
		fn(ID{index: uint32(i), generation: s.generation}, &s.cue)
	}
}

// Settled is like Each but skips cues inserted at tick.
func (f *Field) Settled(tick uint64, fn func(id ID, c *ActiveCue)) {
	f.Each(func(id ID, c *ActiveCue) {
		if f.slots[id.index].born == tick {
			return
		}
		fn(id, c)
	})
}

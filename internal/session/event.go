package session

import "git.lost.host/meutraa/eotw/internal/game"

// Event is either Activated or Resolved.
type Event interface {
	event()
}

type Activated struct {
	ID        game.ID
	Direction game.Direction
	Speed     game.Speed
	Position  game.Position
}

type Resolved struct {
	ID        game.ID
	Direction game.Direction
	Judgement game.Judgement
}

func (Activated) event() {}
func (Resolved) event()  {}

// Sink receives session events as they happen within a tick.
type Sink interface {
	Notify(ev Event)
}

type SinkFunc func(ev Event)

func (f SinkFunc) Notify(ev Event) { f(ev) }

type discard struct{}

func (discard) Notify(Event) {}

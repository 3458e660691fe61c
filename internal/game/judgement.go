package game

// Judgement is the outcome of resolving an active cue, either Hit or
// Miss. A nil Judgement means the cue is still in play.
type Judgement interface {
	judgement()
}

type Hit struct {
	Points uint64
}

type Miss struct{}

func (Hit) judgement()  {}
func (Miss) judgement() {}

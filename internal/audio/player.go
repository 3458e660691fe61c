package audio

// Player starts the song of a chart. Play is called once per session.
type Player interface {
	Play(name, filename string) error
	Close()
}

// Silent is used when audio is muted.
type Silent struct{}

func (Silent) Play(name, filename string) error { return nil }
func (Silent) Close()                           {}

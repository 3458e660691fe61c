package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// DefaultPlayer plays song files through the system speaker. Filenames
// are resolved relative to Dir.
type DefaultPlayer struct {
	Dir string

	streamer beep.StreamSeekCloser
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3", ".ogg", ".wav":
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

func (p *DefaultPlayer) Play(name, filename string) error {
	path := filepath.Join(p.Dir, filename)
	streamer, format, err := decode(path)
	if nil != err {
		return fmt.Errorf("unable to open song %v for %v: %w", path, name, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/60)); nil != err {
		streamer.Close()
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	p.streamer = streamer
	speaker.Play(streamer)
	return nil
}

func (p *DefaultPlayer) Close() {
	if nil == p.streamer {
		return
	}
	speaker.Lock()
	p.streamer.Close()
	speaker.Unlock()
	p.streamer = nil
}

package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.lost.host/meutraa/eotw/internal/game"
	"github.com/BurntSushi/toml"
)

// DefaultParser reads .toml and .json charts.
type DefaultParser struct{}

type document struct {
	Name     string  `toml:"name"`
	Filename string  `toml:"filename"`
	Arrows   []arrow `toml:"arrows"`
}

type arrow struct {
	ClickTime float64 `toml:"click_time"`
	Speed     string  `toml:"speed"`
	Direction string  `toml:"direction"`
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, &LoadError{Path: file, Reason: ReasonRead, Err: err}
	}
	return p.ParseBytes(file, data)
}

// ParseBytes parses data using the format implied by the extension of name.
func (p *DefaultParser) ParseBytes(name string, data []byte) (*game.Chart, error) {
	var doc *document
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		doc, err = decodeJSON(data)
	default:
		doc, err = decodeTOML(data)
	}
	if nil != err {
		return nil, &LoadError{Path: name, Reason: ReasonSyntax, Err: err}
	}

	chart, err := doc.chart()
	if nil != err {
		return nil, &LoadError{Path: name, Reason: ReasonField, Err: err}
	}
	return chart, nil
}

func decodeTOML(data []byte) (*document, error) {
	var doc document
	if _, err := toml.Decode(string(data), &doc); nil != err {
		return nil, err
	}

	// A missing key decodes to its zero value, so presence is checked on
	// the raw tables.
	var raw struct {
		Arrows []map[string]interface{} `toml:"arrows"`
	}
	if _, err := toml.Decode(string(data), &raw); nil != err {
		return nil, err
	}
	for i, fields := range raw.Arrows {
		for _, key := range requiredArrowFields {
			if _, ok := fields[key]; !ok {
				return nil, fmt.Errorf("arrow %v: %v is missing", i, key)
			}
		}
	}
	return &doc, nil
}

var requiredArrowFields = []string{"click_time", "speed", "direction"}

func (d *document) chart() (*game.Chart, error) {
	if strings.TrimSpace(d.Filename) == "" {
		return nil, errors.New("filename is empty")
	}

	cues := make([]game.Cue, 0, len(d.Arrows))
	for i, a := range d.Arrows {
		speed, err := game.ParseSpeed(a.Speed)
		if nil != err {
			return nil, fmt.Errorf("arrow %v: %w", i, err)
		}
		direction, err := game.ParseDirection(a.Direction)
		if nil != err {
			return nil, fmt.Errorf("arrow %v: %w", i, err)
		}
		cues = append(cues, game.NewCue(a.ClickTime, speed, direction))
	}

	// Authored order is hit time order; mixed speeds can spawn out of it.
	sort.SliceStable(cues, func(i, j int) bool {
		return cues[i].SpawnTime < cues[j].SpawnTime
	})

	return &game.Chart{
		Name:     d.Name,
		Filename: d.Filename,
		Cues:     cues,
	}, nil
}

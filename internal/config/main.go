package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Config struct {
	Chart       string
	PreRoll     time.Duration
	FramePeriod time.Duration
	Database    string
	Keys        string
	LogFile     string
	LogLevel    string
	Mute        bool
}

func Parse(args []string) (*Config, error) {
	app := kingpin.New("eotw", "Terminal rhythm game")
	app.Version("0.3.0")

	c := &Config{}
	app.Arg("chart", "Chart file (.toml or .json)").Required().ExistingFileVar(&c.Chart)
	app.Flag("pre-roll", "Delay before the song starts").Default("3s").Short('d').DurationVar(&c.PreRoll)
	app.Flag("frame-period", "Render frame period").Default("4ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("database", "Score history database").Default("./scores.db").StringVar(&c.Database)
	app.Flag("keys", "Key bindings ini file").Short('k').StringVar(&c.Keys)
	app.Flag("log-file", "Log file").Default("eotw.log").StringVar(&c.LogFile)
	app.Flag("log-level", "Log level").Default("info").EnumVar(&c.LogLevel, "debug", "info", "warn", "error")
	app.Flag("mute", "Do not play the song").BoolVar(&c.Mute)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	if c.PreRoll <= 0 {
		return nil, fmt.Errorf("pre-roll must be positive, got %v", c.PreRoll)
	}
	if c.FramePeriod <= 0 {
		return nil, fmt.Errorf("frame period must be positive, got %v", c.FramePeriod)
	}
	return c, nil
}

func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if nil != err {
		return logrus.InfoLevel
	}
	return level
}

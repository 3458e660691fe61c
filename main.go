package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/eotw/internal/audio"
	"git.lost.host/meutraa/eotw/internal/config"
	"git.lost.host/meutraa/eotw/internal/input"
	"git.lost.host/meutraa/eotw/internal/parser"
	"git.lost.host/meutraa/eotw/internal/render"
	"git.lost.host/meutraa/eotw/internal/score"
	"git.lost.host/meutraa/eotw/internal/theme"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	logger := logrus.New()
	logger.SetOutput(logFile)
	logger.SetLevel(cfg.Level())

	bindings := input.DefaultBindings()
	if cfg.Keys != "" {
		bindings, err = input.LoadBindings(cfg.Keys)
		if nil != err {
			return err
		}
	}

	var player audio.Player = &audio.DefaultPlayer{Dir: filepath.Dir(cfg.Chart)}
	if cfg.Mute {
		player = audio.Silent{}
	}
	defer player.Close()

	p := &Program{
		Config:   cfg,
		Parser:   &parser.DefaultParser{},
		Scorer:   &score.DefaultScorer{Path: cfg.Database},
		Theme:    &theme.DefaultTheme{},
		Renderer: &render.DefaultRenderer{},
		Player:   player,
		Log:      logger,
	}
	if err := p.Init(); nil != err {
		return err
	}

	in, err := input.Open(bindings)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := input.Close(); nil != err {
			logger.WithError(err).Error("unable to close keyboard")
		}
	}()
	p.Input = in

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	p.Renderer.RenderLoop(cfg.FramePeriod, func(now time.Time) bool {
		cont := p.Update(now)
		p.Render()
		return cont
	})
	if err := p.Renderer.Deinit(); nil != err {
		logger.WithError(err).Error("unable to restore terminal")
	}

	fmt.Println(p.Finish())
	return nil
}

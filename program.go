package main

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/eotw/internal/audio"
	"git.lost.host/meutraa/eotw/internal/config"
	"git.lost.host/meutraa/eotw/internal/game"
	"git.lost.host/meutraa/eotw/internal/input"
	"git.lost.host/meutraa/eotw/internal/parser"
	"git.lost.host/meutraa/eotw/internal/render"
	"git.lost.host/meutraa/eotw/internal/score"
	"git.lost.host/meutraa/eotw/internal/session"
	"git.lost.host/meutraa/eotw/internal/theme"
	"github.com/sirupsen/logrus"
)

const (
	pulseFrames = 60
	missFrames  = 120
)

type Program struct {
	Config   *config.Config
	Parser   parser.Parser
	Scorer   *score.DefaultScorer
	Theme    theme.Theme
	Renderer *render.DefaultRenderer
	Input    *input.Reader
	Player   audio.Player
	Log      logrus.FieldLogger

	chart   *game.Chart
	session *session.Session
	best    score.State
	hasBest bool
	quit    bool
}

func (p *Program) Init() error {
	var err error
	p.chart, err = p.Parser.Parse(p.Config.Chart)
	if nil != err {
		return err
	}
	p.Log.WithFields(logrus.Fields{
		"chart": p.chart.Name,
		"song":  p.chart.Filename,
		"cues":  len(p.chart.Cues),
	}).Info("chart loaded")

	if err := p.Scorer.Init(); nil != err {
		p.Log.WithError(err).Warn("score history disabled")
		p.Scorer = nil
	} else if histories, err := p.Scorer.Load(p.chart); nil != err {
		p.Log.WithError(err).Warn("unable to load score history")
	} else {
		p.best, p.hasBest = score.Best(histories)
	}

	p.session = session.New(session.Options{
		PreRoll: p.Config.PreRoll,
		Player:  p.Player,
		Sink:    p,
		Logger:  p.Log,
	})
	p.session.Begin(p.chart)
	return nil
}

// Update polls input and advances the session. It returns false once the
// chart is finished or the player quit.
func (p *Program) Update(now time.Time) bool {
	keys, quit := p.Input.Poll()
	if quit {
		p.quit = true
		return false
	}
	p.session.Tick(now, keys)
	return !p.session.Done()
}

func (p *Program) Notify(ev session.Event) {
	r, ok := ev.(session.Resolved)
	if !ok {
		return
	}
	switch r.Judgement.(type) {
	case game.Hit:
		col, row := p.Renderer.Project(game.Position{X: game.TargetPosition, Y: r.Direction.Y()})
		p.Renderer.AddDecoration(col, row, p.Theme.RenderPulse(r.Direction), pulseFrames)
	case game.Miss:
		col, row := p.Renderer.Project(game.Position{X: game.WindowWidth / 2, Y: r.Direction.Y()})
		p.Renderer.AddDecoration(col-1, row, p.Theme.RenderMiss(), missFrames)
	}
}

func (p *Program) Render() {
	p.Renderer.Clear()

	for _, d := range game.Directions() {
		col, row := p.Renderer.Project(game.Position{X: game.TargetPosition, Y: d.Y()})
		p.Renderer.Fill(row, col, p.Theme.RenderTarget(d))
	}

	p.session.Active(func(id game.ID, c game.ActiveCue) {
		if !p.Renderer.Visible(c.Position) {
			return
		}
		col, row := p.Renderer.Project(c.Position)
		p.Renderer.Fill(row, col, p.Theme.RenderCue(c))
	})

	if t := p.session.SongTime(); t >= 0 {
		p.Renderer.Fill(1, 2, fmt.Sprintf("Time:%.2f", t))
	}
	p.Renderer.Fill(2, 2, p.session.CurrentScore().String())
	if p.hasBest {
		p.Renderer.Fill(3, 2, fmt.Sprintf("Best: %v", p.best.Score))
	}
}

// Finish records the result of a completed chart.
func (p *Program) Finish() score.State {
	state := p.session.CurrentScore()
	p.Log.WithFields(logrus.Fields{
		"score":    state.Score,
		"corrects": state.Corrects,
		"fails":    state.Fails,
		"quit":     p.quit,
	}).Info("session finished")

	if nil == p.Scorer {
		return state
	}
	defer p.Scorer.Deinit()
	if p.quit {
		return state
	}
	if err := p.Scorer.Save(p.chart, state); nil != err {
		p.Log.WithError(err).Error("unable to save score")
	}
	return state
}

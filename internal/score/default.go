package score

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/eotw/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

const (
	minPoints = 10
	maxPoints = 100
)

type DefaultScorer struct {
	Path string

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	path := s.Path
	if path == "" {
		path = "./scores.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists plays
	  (
		  id integer not null primary key,
		  chart text not null,
		  score integer not null,
		  corrects integer not null,
		  fails integer not null,
		  played_at integer not null
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create score table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

func (s *DefaultScorer) Save(c *game.Chart, state State) error {
	_, err := s.db.Exec(
		"insert into plays(chart, score, corrects, fails, played_at) values(?, ?, ?, ?, ?)",
		c.Sum(), state.Score, state.Corrects, state.Fails, time.Now().UnixNano(),
	)
	if nil != err {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

func (s *DefaultScorer) Load(c *game.Chart) ([]History, error) {
	histories := []History{}
	rows, err := s.db.Query(
		"select chart, score, corrects, fails, played_at from plays where chart = ? order by played_at, id",
		c.Sum(),
	)
	if nil != err {
		return nil, fmt.Errorf("unable to load scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h History
		var playedAt int64
		if err := rows.Scan(&h.Sum, &h.State.Score, &h.State.Corrects, &h.State.Fails, &playedAt); nil != err {
			return nil, fmt.Errorf("unable to read score: %w", err)
		}
		h.PlayedAt = time.Unix(0, playedAt)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

// Best returns the highest previous score for the chart.
func Best(histories []History) (State, bool) {
	var best State
	found := false
	for _, h := range histories {
		if !found || h.State.Score > best.Score {
			best = h.State
			found = true
		}
	}
	return best, found
}

func (s *DefaultScorer) Judge(cue *game.ActiveCue, keys game.Keys) game.Judgement {
	return Judge(cue.Position.X, keys.JustPressed(cue.Direction))
}

// Judge classifies a cue at travel position x. The hit test runs first,
// so a cue is never both hit and missed on the same tick.
func Judge(x float32, pressed bool) game.Judgement {
	if pressed && InWindow(x) {
		return game.Hit{Points: Points(game.TargetPosition - x)}
	}
	if x >= game.FlyByPosition {
		return game.Miss{}
	}
	return nil
}

func InWindow(x float32) bool {
	return x >= game.TargetPosition-game.Threshold && x <= game.TargetPosition+game.Threshold
}

// Points for a hit distance from the target, between 10 and 100.
func Points(distance float32) uint64 {
	multiplier := (game.Threshold - float32(math.Abs(float64(distance)))) / game.Threshold
	points := math.Min(math.Max(float64(multiplier*100), minPoints), maxPoints)
	return uint64(points)
}

package game

import (
	"errors"
	"slices"
)

// ErrNotLoaded is returned by Save after a failed Load. Writing then would
// replace the stored scores with ones that were never read.
var ErrNotLoaded = errors.New("scores were not loaded, refusing to overwrite them")

// Scores is the persisted part of the game. History holds the most recent
// final scores, oldest first.
type Scores struct {
	History   []int
	HighScore int
}

// normalized enforces the invariants on data that came from storage.
func (s Scores) normalized() Scores {
	history := slices.DeleteFunc(slices.Clone(s.History), func(n int) bool {
		return n < 0
	})
	if n := len(history); n > historyLength {
		history = history[n-historyLength:]
	}
	high := max(s.HighScore, 0)
	for _, n := range history {
		high = max(high, n)
	}
	return Scores{History: history, HighScore: high}
}

// Storage is a durable home for Scores. Missing or malformed data is not an
// error, Load returns zero values for it.
type Storage interface {
	Load() (Scores, error)
	Save(Scores) error
}

// ScoreStore keeps the high score and recent history in memory and writes
// them through to a Storage. A nil Storage keeps everything in memory.
type ScoreStore struct {
	storage    Storage
	scores     Scores
	loadFailed bool
}

func NewScoreStore(storage Storage) *ScoreStore {
	return &ScoreStore{storage: storage}
}

func (s *ScoreStore) Load() error {
	s.scores = Scores{}
	if s.storage == nil {
		return nil
	}
	loaded, err := s.storage.Load()
	s.loadFailed = err != nil
	if err != nil {
		return err
	}
	s.scores = loaded.normalized()
	return nil
}

func (s *ScoreStore) Save() error {
	if s.storage == nil {
		return nil
	}
	if s.loadFailed {
		return ErrNotLoaded
	}
	return s.storage.Save(s.Scores())
}

// RecordResult appends a final score and reports whether it beat the high
// score.
func (s *ScoreStore) RecordResult(final int) bool {
	s.scores.History = append(s.scores.History, final)
	if n := len(s.scores.History); n > historyLength {
		s.scores.History = slices.Clone(s.scores.History[n-historyLength:])
	}
	if final > s.scores.HighScore {
		s.scores.HighScore = final
		return true
	}
	return false
}

func (s *ScoreStore) HighScore() int {
	return s.scores.HighScore
}

func (s *ScoreStore) History() []int {
	return slices.Clone(s.scores.History)
}

func (s *ScoreStore) Scores() Scores {
	return Scores{History: s.History(), HighScore: s.scores.HighScore}
}

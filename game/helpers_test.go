package game

import (
	"testing"
	"time"
)

// seqRand returns vals in a loop.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type memStorage struct {
	scores  Scores
	saves   int
	loadErr error
	saveErr error
}

func (m *memStorage) Load() (Scores, error) {
	return m.scores, m.loadErr
}

func (m *memStorage) Save(s Scores) error {
	m.saves++
	m.scores = s
	return m.saveErr
}

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestGameWithStore is newTestGame for a storage whose Load may fail.
func newTestGameWithStore(t *testing.T, storage Storage) *Game {
	t.Helper()
	store := NewScoreStore(storage)
	store.Load()
	g := New(DefaultConfig(), store, &seqRand{vals: []float64{0.5}})
	g.Resize(Bounds{W: 200, H: 100})
	return g
}

// newTestGame returns a game on a 200x100 surface whose random source always
// yields 0.5, so every star lands at (90, 40) and lives 1150ms.
func newTestGame(t *testing.T, storage Storage) *Game {
	t.Helper()
	store := NewScoreStore(storage)
	if err := store.Load(); err != nil {
		t.Fatalf("load scores: %v", err)
	}
	g := New(DefaultConfig(), store, &seqRand{vals: []float64{0.5}})
	g.Resize(Bounds{W: 200, H: 100})
	return g
}

// startPlaying runs the countdown and returns the time play began.
func startPlaying(t *testing.T, g *Game, now time.Time) time.Time {
	t.Helper()
	if !g.Start(now) {
		t.Fatalf("start refused in phase %v", g.Phase())
	}
	now = now.Add(countdownLength)
	if snap := g.Tick(now); snap.Phase != PhasePlaying {
		t.Fatalf("phase after countdown = %v, want playing", snap.Phase)
	}
	return now
}

// spawnNext ticks just past the current spawn interval so a new star
// appears.
func spawnNext(t *testing.T, g *Game, now time.Time) time.Time {
	t.Helper()
	now = now.Add(g.spawnInterval + time.Millisecond)
	snap := g.Tick(now)
	if n := len(snap.Stars); n == 0 || !snap.Stars[n-1].Spawned.Equal(now) {
		t.Fatalf("no star spawned at %v", now.Sub(epoch))
	}
	return now
}

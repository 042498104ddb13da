// Package game implements the rules of Star Catch: stars appear at random
// places for a moment and the player clicks them for points. The package
// draws nothing. Frontends feed it input and time and render the Snapshot
// returned by Tick.
package game

import (
	"slices"
	"time"
)

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	// History is oldest first.
	History []int
	// Countdown is the digit to show during PhaseCountdown, 0 otherwise.
	Countdown int
	Stars     []Star
	Confetti  []Particle
	NewRecord bool
	Bounds    Bounds
}

// Game holds the whole session state. It is not safe for concurrent use,
// frontends call it from their single update loop.
type Game struct {
	cfg      Config
	rnd      Rand
	store    *ScoreStore
	entities *Entities
	bounds   Bounds

	phase          Phase
	score          int
	newRecord      bool
	countdown      int
	countdownStart time.Time
	lastSpawn      time.Time
	spawnInterval  time.Duration
	cues           []Cue
}

// New creates a game in the menu. The store should already be loaded. A nil
// store keeps scores in memory only, a nil rnd uses math/rand.
func New(cfg Config, store *ScoreStore, rnd Rand) *Game {
	if store == nil {
		store = NewScoreStore(nil)
	}
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Game{
		cfg:           cfg,
		rnd:           rnd,
		store:         store,
		entities:      NewEntities(cfg, rnd),
		phase:         PhaseMenu,
		spawnInterval: firstSpawnInterval,
	}
}

// Resize sets the surface that stars and confetti are placed in.
func (g *Game) Resize(b Bounds) {
	g.bounds = b
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Score() int {
	return g.score
}

// Start begins a countdown from the menu or the game over screen.
func (g *Game) Start(now time.Time) bool {
	if g.phase != PhaseMenu && g.phase != PhaseGameOver {
		return false
	}
	g.begin(now)
	return true
}

// Replay is Start restricted to the game over screen.
func (g *Game) Replay(now time.Time) bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.begin(now)
	return true
}

func (g *Game) begin(now time.Time) {
	g.entities.Clear()
	g.score = 0
	g.newRecord = false
	g.spawnInterval = firstSpawnInterval
	g.countdownStart = now
	g.countdown = 3
	g.phase = PhaseCountdown
	g.emit(CueClick, CueMusicStart)
}

// Stop ends the running game, records the result and saves the scores. The
// game is over even if saving fails, the error is only returned for
// reporting.
func (g *Game) Stop() error {
	if g.phase != PhasePlaying {
		return nil
	}
	g.phase = PhaseGameOver
	g.emit(CueClick, CueMusicStop, CueCheer)

	g.newRecord = g.store.RecordResult(g.score)
	if g.newRecord {
		g.entities.SpawnConfettiBurst(g.bounds, g.cfg.ConfettiCount)
	}
	return g.store.Save()
}

// Exit returns from the game over screen to the menu.
func (g *Game) Exit() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.entities.Clear()
	g.phase = PhaseMenu
	g.emit(CueClick)
	return true
}

// Pointer handles a click or tap at surface coordinates. At most one star is
// collected per call.
func (g *Game) Pointer(x, y float64) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if !g.entities.Hit(x, y) {
		return false
	}
	g.score++
	g.emit(CueCollect)
	return true
}

// Tick advances timers to now and returns the frame to draw. Time is
// measured from wall clock deltas, so a long pause between ticks skips the
// countdown or expires all stars at once.
func (g *Game) Tick(now time.Time) Snapshot {
	if g.phase == PhaseCountdown {
		elapsed := max(now.Sub(g.countdownStart), 0)
		sec := int(elapsed / time.Second)
		if elapsed < countdownLength {
			g.countdown = 3 - sec
		} else {
			g.countdown = 0
			g.phase = PhasePlaying
			g.lastSpawn = now
		}
	}

	if g.phase == PhasePlaying {
		if now.Sub(g.lastSpawn) > g.spawnInterval {
			g.entities.SpawnStar(g.bounds, now)
			g.lastSpawn = now
			g.spawnInterval = between(minSpawnInterval, spawnIntervalRange, g.rnd.Float64())
		}
		g.entities.AgeStars(now)
	}

	if g.phase == PhaseGameOver && g.newRecord {
		g.entities.AdvanceConfetti(g.bounds)
	}

	return g.Snapshot()
}

// Latest returns the history newest first, the order score boards list it in.
func (s Snapshot) Latest() []int {
	latest := slices.Clone(s.History)
	slices.Reverse(latest)
	return latest
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.store.HighScore(),
		History:   g.store.History(),
		Countdown: g.countdown,
		Stars:     slices.Clone(g.entities.Stars),
		Confetti:  slices.Clone(g.entities.Confetti),
		NewRecord: g.newRecord,
		Bounds:    g.bounds,
	}
}

// Cues returns the sounds requested since the last call, in order.
func (g *Game) Cues() []Cue {
	cues := g.cues
	g.cues = nil
	return cues
}

func (g *Game) emit(cues ...Cue) {
	g.cues = append(g.cues, cues...)
}

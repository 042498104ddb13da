package game

import (
	"math/rand"
	"time"
)

const (
	countdownLength    = 3 * time.Second
	minStarLifespan    = 800 * time.Millisecond
	starLifespanRange  = 700 * time.Millisecond
	firstSpawnInterval = 1000 * time.Millisecond
	minSpawnInterval   = 500 * time.Millisecond
	spawnIntervalRange = 1500 * time.Millisecond
	historyLength      = 5
)

// Config holds the geometry that depends on the coordinate space of the
// frontend, pixels for a window and cells for a terminal.
type Config struct {
	StarSize      float64
	ConfettiCount int
	// ConfettiScale multiplies confetti speed, size and start offset.
	ConfettiScale float64
}

func DefaultConfig() Config {
	return Config{
		StarSize:      20,
		ConfettiCount: 100,
		ConfettiScale: 1,
	}
}

// Rand is the source of randomness for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64()
}

// between returns a duration in [lo, lo+span) for r in [0, 1).
func between(lo, span time.Duration, r float64) time.Duration {
	return lo + time.Duration(float64(span)*r)
}

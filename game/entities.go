package game

import (
	"math"
	"slices"
	"time"
)

// Bounds is the size of the drawing surface.
type Bounds struct {
	W, H float64
}

type Star struct {
	X, Y     float64
	Size     float64
	Spawned  time.Time
	Lifespan time.Duration
}

// Contains reports whether the point lies in the star's box, edges included.
func (s Star) Contains(x, y float64) bool {
	return x >= s.X && x <= s.X+s.Size &&
		y >= s.Y && y <= s.Y+s.Size
}

func (s Star) Expired(now time.Time) bool {
	return now.Sub(s.Spawned) >= s.Lifespan
}

// Particle is a piece of confetti. Hue is in degrees, saturation and
// lightness are fixed.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Hue    float64
}

// RGB returns the particle color with components in [0, 1].
func (p Particle) RGB() (r, g, b float64) {
	h := math.Mod(p.Hue, 360)
	if h < 0 {
		h += 360
	}
	x := 1 - math.Abs(math.Mod(h/60, 2)-1)
	switch {
	case h < 60:
		return 1, x, 0
	case h < 120:
		return x, 1, 0
	case h < 180:
		return 0, 1, x
	case h < 240:
		return 0, x, 1
	case h < 300:
		return x, 0, 1
	}
	return 1, 0, x
}

// Entities owns the stars and confetti that are currently alive.
type Entities struct {
	Stars    []Star
	Confetti []Particle

	cfg Config
	rnd Rand
}

func NewEntities(cfg Config, rnd Rand) *Entities {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Entities{cfg: cfg, rnd: rnd}
}

// SpawnStar places a new star fully inside b.
func (e *Entities) SpawnStar(b Bounds, now time.Time) Star {
	size := e.cfg.StarSize
	star := Star{
		X:        e.rnd.Float64() * max(0, b.W-size),
		Y:        e.rnd.Float64() * max(0, b.H-size),
		Size:     size,
		Spawned:  now,
		Lifespan: between(minStarLifespan, starLifespanRange, e.rnd.Float64()),
	}
	e.Stars = append(e.Stars, star)
	return star
}

func (e *Entities) AgeStars(now time.Time) {
	e.Stars = slices.DeleteFunc(e.Stars, func(s Star) bool {
		return s.Expired(now)
	})
}

// Hit removes the oldest star containing the point. Overlapping stars behind
// it survive.
func (e *Entities) Hit(x, y float64) bool {
	i := slices.IndexFunc(e.Stars, func(s Star) bool {
		return s.Contains(x, y)
	})
	if i < 0 {
		return false
	}
	e.Stars = slices.Delete(e.Stars, i, i+1)
	return true
}

// SpawnConfettiBurst replaces all confetti with count particles falling in
// from just above the top edge.
func (e *Entities) SpawnConfettiBurst(b Bounds, count int) {
	k := e.cfg.ConfettiScale
	e.Confetti = e.Confetti[:0]
	for range count {
		e.Confetti = append(e.Confetti, Particle{
			X:    e.rnd.Float64() * b.W,
			Y:    -10 * k,
			VX:   (-2 + e.rnd.Float64()*4) * k,
			VY:   (2 + e.rnd.Float64()*3) * k,
			Size: (4 + e.rnd.Float64()*4) * k,
			Hue:  e.rnd.Float64() * 360,
		})
	}
}

// AdvanceConfetti moves every particle by one step and drops the ones that
// left the bottom of b.
func (e *Entities) AdvanceConfetti(b Bounds) {
	for i := range e.Confetti {
		p := &e.Confetti[i]
		p.X += p.VX
		p.Y += p.VY
	}
	e.Confetti = slices.DeleteFunc(e.Confetti, func(p Particle) bool {
		return p.Y >= b.H
	})
}

func (e *Entities) Clear() {
	e.Stars = e.Stars[:0]
	e.Confetti = e.Confetti[:0]
}

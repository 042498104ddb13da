package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"starcatch/game"
)

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	scoreStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	hintStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	starStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

const (
	starRune     = '*'
	confettiRune = '•'
)

func render(s tcell.Screen, snap game.Snapshot) {
	s.Clear()
	w, h := s.Size()
	cx, cy := w/2, h/2

	switch snap.Phase {
	case game.PhaseMenu:
		drawCentered(s, cx, cy-4, "STAR CATCH", titleStyle)
		drawScoreBoard(s, cx, cy-1, snap)
		drawCentered(s, cx, cy+3, "[Enter] start   [q] quit", hintStyle)

	case game.PhaseCountdown:
		drawCentered(s, cx, cy, strconv.Itoa(snap.Countdown), titleStyle)

	case game.PhasePlaying:
		for _, star := range snap.Stars {
			drawStar(s, star)
		}
		drawText(s, 1, 0, fmt.Sprintf("Score: %d", snap.Score), scoreStyle)
		hint := "[s] stop"
		drawText(s, w-len(hint)-1, 0, hint, hintStyle)

	case game.PhaseGameOver:
		for _, p := range snap.Confetti {
			drawParticle(s, p)
		}
		drawCentered(s, cx, cy-5, "GAME OVER", titleStyle)
		final := fmt.Sprintf("Final score: %d", snap.Score)
		if snap.NewRecord {
			final += "  NEW HIGH SCORE!"
		}
		drawCentered(s, cx, cy-3, final, scoreStyle)
		drawScoreBoard(s, cx, cy-1, snap)
		drawCentered(s, cx, cy+3, "[Enter] replay   [Esc] exit", hintStyle)
	}
}

func drawScoreBoard(s tcell.Screen, cx, y int, snap game.Snapshot) {
	drawCentered(s, cx, y, fmt.Sprintf("High score: %d", snap.HighScore), textStyle)
	drawCentered(s, cx, y+1, "Latest: "+latestScores(snap.Latest()), textStyle)
}

// drawStar fills the cells whose centers lie inside the star, which are the
// cells a click counts for.
func drawStar(s tcell.Screen, star game.Star) {
	x0, y0 := int(star.X), int(star.Y)
	x1, y1 := int(star.X+star.Size), int(star.Y+star.Size)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if star.Contains(float64(x)+0.5, float64(y)+0.5) {
				s.SetContent(x, y, starRune, nil, starStyle)
			}
		}
	}
}

func drawParticle(s tcell.Screen, p game.Particle) {
	if p.Y < 0 || p.X < 0 {
		return
	}
	r, g, b := p.RGB()
	color := tcell.NewRGBColor(channel(r), channel(g), channel(b))
	s.SetContent(int(p.X), int(p.Y), confettiRune, nil, tcell.StyleDefault.Foreground(color))
}

func channel(v float64) int32 {
	return int32(math.Round(v * 255))
}

// latestScores formats scores already ordered newest first.
func latestScores(latest []int) string {
	if len(latest) == 0 {
		return "-"
	}
	texts := make([]string, len(latest))
	for i, score := range latest {
		texts[i] = strconv.Itoa(score)
	}
	return strings.Join(texts, " ")
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}

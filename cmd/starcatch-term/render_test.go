package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"starcatch/game"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 20)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := range w {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	var lines []string
	for y := range h {
		lines = append(lines, row(screen, y))
	}
	return strings.Join(lines, "\n")
}

func TestRenderStarCells(t *testing.T) {
	screen := newTestScreen(t)
	render(screen, game.Snapshot{
		Phase: game.PhasePlaying,
		Score: 4,
		Stars: []game.Star{{X: 3, Y: 5, Size: 2}},
	})

	for y := 4; y <= 7; y++ {
		for x := 2; x <= 5; x++ {
			mainc, _, _, _ := screen.GetContent(x, y)
			want := x >= 3 && x <= 4 && y >= 5 && y <= 6
			if got := mainc == starRune; got != want {
				t.Errorf("cell (%d, %d) star = %v, want %v", x, y, got, want)
			}
		}
	}
	if !strings.Contains(row(screen, 0), "Score: 4") {
		t.Errorf("score line = %q", row(screen, 0))
	}
}

func TestRenderMenuScores(t *testing.T) {
	screen := newTestScreen(t)
	render(screen, game.Snapshot{
		Phase:     game.PhaseMenu,
		HighScore: 9,
		History:   []int{1, 9, 4},
	})

	text := screenText(screen)
	for _, want := range []string{"STAR CATCH", "High score: 9", "Latest: 4 9 1"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu does not show %q:\n%s", want, text)
		}
	}
}

func TestRenderGameOverRecord(t *testing.T) {
	screen := newTestScreen(t)
	render(screen, game.Snapshot{
		Phase:     game.PhaseGameOver,
		Score:     7,
		HighScore: 7,
		History:   []int{5, 7},
		NewRecord: true,
		Confetti:  []game.Particle{{X: 1, Y: 1, Hue: 120}},
	})

	text := screenText(screen)
	if !strings.Contains(text, "Final score: 7  NEW HIGH SCORE!") {
		t.Errorf("game over screen:\n%s", text)
	}
	mainc, _, style, _ := screen.GetContent(1, 1)
	if mainc != confettiRune {
		t.Errorf("confetti cell = %q", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("confetti color = %v, want green", fg)
	}
}

func TestRenderCountdown(t *testing.T) {
	screen := newTestScreen(t)
	render(screen, game.Snapshot{Phase: game.PhaseCountdown, Countdown: 2})
	if got := strings.TrimSpace(row(screen, 10)); got != "2" {
		t.Errorf("countdown row = %q, want 2", got)
	}
}

func TestMouseClickCollectsStarOnce(t *testing.T) {
	g := game.New(terminalConfig(), nil, nil)
	g.Resize(game.Bounds{W: 2, H: 2})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.Start(start)
	g.Tick(start.Add(3 * time.Second))
	g.Tick(start.Add(4*time.Second + time.Millisecond))

	// The surface is as big as a star, so the star covers cell (0, 0).
	in := input{game: g}
	in.mouse(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	in.mouse(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	in.mouse(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
}

func TestKeys(t *testing.T) {
	g := game.New(terminalConfig(), nil, nil)
	in := input{game: g}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if in.key(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now) {
		t.Fatal("enter quits")
	}
	if g.Phase() != game.PhaseCountdown {
		t.Fatalf("phase = %v, want countdown", g.Phase())
	}
	g.Tick(now.Add(3 * time.Second))
	in.key(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), now)
	if g.Phase() != game.PhaseGameOver {
		t.Fatalf("phase = %v, want gameover", g.Phase())
	}
	in.key(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now)
	if g.Phase() != game.PhaseMenu {
		t.Fatalf("phase = %v, want menu", g.Phase())
	}
	if !in.key(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
		t.Error("escape in menu does not quit")
	}
	if !in.key(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), now) {
		t.Error("q does not quit")
	}
}

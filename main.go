package main

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gonutz/prototype/draw"

	"starcatch/game"
	"starcatch/storage"
)

func main() {
	backgroundColor := rgb(12, 12, 40)
	buttonColor := rgb(60, 60, 120)
	scoreColor := rgb(0, 255, 0)
	const (
		windowW, windowH         = 1280, 720
		buttonW, buttonH         = 220, 60
		musicLoopFile            = "rsc/music_loop.wav"
		musicLoopLengthInSeconds = 14
	)
	cueSounds := map[game.Cue]string{
		game.CueClick:   "rsc/click.wav",
		game.CueCollect: "rsc/collect.wav",
		game.CueCheer:   "rsc/cheer.wav",
	}

	scores := game.NewScoreStore(storage.Default())
	if err := scores.Load(); err != nil {
		log.Printf("loading scores: %v", err)
	}
	g := game.New(game.DefaultConfig(), scores, nil)
	g.Resize(game.Bounds{W: windowW, H: windowH})

	startButton := button{
		text: "START",
		x:    (windowW - buttonW) / 2,
		y:    windowH/2 + 40,
		w:    buttonW,
		h:    buttonH,
	}
	stopButton := button{
		text: "STOP",
		x:    windowW - buttonW/2 - 20,
		y:    20,
		w:    buttonW / 2,
		h:    buttonH * 2 / 3,
	}
	replayButton := button{
		text: "REPLAY",
		x:    windowW/2 - buttonW - 20,
		y:    windowH/2 + 120,
		w:    buttonW,
		h:    buttonH,
	}
	exitButton := button{
		text: "EXIT",
		x:    windowW/2 + 20,
		y:    windowH/2 + 120,
		w:    buttonW,
		h:    buttonH,
	}

	stop := func() {
		if err := g.Stop(); err != nil {
			log.Printf("saving scores: %v", err)
		}
	}

	// Missing sound files are reported once and then skipped.
	brokenSounds := map[string]bool{}
	playSound := func(window draw.Window, path string) {
		if path == "" || brokenSounds[path] {
			return
		}
		if err := window.PlaySoundFile(path); err != nil {
			log.Printf("playing %s: %v", path, err)
			brokenSounds[path] = true
		}
	}

	var (
		musicPlaying   bool
		nextMusicStart time.Time
	)

	err := draw.RunWindow("Star Catch", windowW, windowH, func(window draw.Window) {
		now := time.Now()

		// Handle input.
		for _, click := range window.Clicks() {
			if click.Button != draw.LeftButton {
				continue
			}
			x, y := click.X, click.Y
			switch phase := g.Phase(); {
			case phase == game.PhaseMenu && startButton.contains(x, y):
				g.Start(now)
			case phase == game.PhasePlaying && stopButton.contains(x, y):
				stop()
			case phase == game.PhaseGameOver && replayButton.contains(x, y):
				g.Replay(now)
			case phase == game.PhaseGameOver && exitButton.contains(x, y):
				g.Exit()
			default:
				g.Pointer(float64(x), float64(y))
			}
		}

		if window.WasKeyPressed(draw.KeyEnter) || window.WasKeyPressed(draw.KeyNumEnter) {
			g.Start(now)
		}
		if window.WasKeyPressed(draw.KeyS) {
			stop()
		}
		if window.WasKeyPressed(draw.KeyEscape) {
			switch g.Phase() {
			case game.PhaseMenu:
				window.Close()
			case game.PhasePlaying:
				stop()
			case game.PhaseGameOver:
				g.Exit()
			}
		}

		// Update game state.
		snap := g.Tick(now)

		for _, cue := range g.Cues() {
			switch cue {
			case game.CueMusicStart:
				musicPlaying = true
				nextMusicStart = now
			case game.CueMusicStop:
				// draw has no way to stop a playing sound, the current loop
				// runs out and is not started again.
				musicPlaying = false
			default:
				playSound(window, cueSounds[cue])
			}
		}
		if musicPlaying && !now.Before(nextMusicStart) {
			playSound(window, musicLoopFile)
			nextMusicStart = now.Add(seconds(musicLoopLengthInSeconds))
		}

		// Draw game.
		window.FillRect(0, 0, windowW, windowH, backgroundColor)

		drawCentered := func(text string, y int, scale float32, color draw.Color) {
			w, _ := window.GetScaledTextSize(text, scale)
			window.DrawScaledText(text, (windowW-w)/2, y, scale, color)
		}
		drawButton := func(b button) {
			window.FillRect(b.x, b.y, b.w, b.h, buttonColor)
			window.DrawRect(b.x, b.y, b.w, b.h, draw.White)
			const scale = 2
			w, h := window.GetScaledTextSize(b.text, scale)
			window.DrawScaledText(b.text, b.x+(b.w-w)/2, b.y+(b.h-h)/2, scale, draw.White)
		}
		drawScoreBoard := func(y int) {
			drawCentered(fmt.Sprintf("High Score: %d", snap.HighScore), y, 3, draw.White)
			drawCentered("Latest: "+latestScores(snap.Latest()), y+50, 2, draw.White)
		}

		switch snap.Phase {
		case game.PhaseMenu:
			drawCentered("Star Catch", windowH/4, 8, draw.White)
			drawScoreBoard(windowH/2 - 80)
			drawButton(startButton)

		case game.PhaseCountdown:
			drawCentered(strconv.Itoa(snap.Countdown), windowH/2-60, 12, draw.White)

		case game.PhasePlaying:
			for _, star := range snap.Stars {
				size := round(star.Size)
				window.FillRect(round(star.X), round(star.Y), size, size, draw.White)
			}
			window.DrawScaledText(fmt.Sprintf("Score: %d", snap.Score), 10, 10, 2, scoreColor)
			drawButton(stopButton)

		case game.PhaseGameOver:
			for _, p := range snap.Confetti {
				red, green, blue := p.RGB()
				size := round(p.Size)
				color := draw.RGB(float32(red), float32(green), float32(blue))
				window.FillRect(round(p.X), round(p.Y), size, size, color)
			}
			drawCentered("Game Over", windowH/6, 6, draw.White)
			finalText := fmt.Sprintf("Final Score: %d", snap.Score)
			if snap.NewRecord {
				finalText += "  NEW HIGH SCORE!"
			}
			drawCentered(finalText, windowH/3, 3, scoreColor)
			drawScoreBoard(windowH/3 + 80)
			drawButton(replayButton)
			drawButton(exitButton)
		}
	})
	if err != nil {
		log.Fatal(err)
	}
}

type button struct {
	text string
	x    int
	y    int
	w    int
	h    int
}

func (b button) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
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
	return strings.Join(texts, "  ")
}

func rgb(r, g, b int) draw.Color {
	return rgba(r, g, b, 255)
}

func rgba(r, g, b, a int) draw.Color {
	return draw.RGBA(
		float32(r)/255,
		float32(g)/255,
		float32(b)/255,
		float32(a)/255,
	)
}

func seconds(s float64) time.Duration {
	return time.Duration(round(s * float64(time.Second)))
}

func round(x float64) int {
	return int(math.Round(x))
}

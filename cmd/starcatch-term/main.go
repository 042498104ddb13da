// Command starcatch-term plays Star Catch in a terminal. Click stars with the
// mouse, one cell is one unit of the game surface.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"starcatch/game"
	"starcatch/storage"
)

const targetFPS = 60

func main() {
	dataDir := flag.String("data", "", "directory for the score files (default $"+storage.DataDirEnv+" or next to the executable)")
	flag.Parse()

	var store game.Storage = storage.Default()
	if *dataDir != "" {
		store = storage.NewDir(*dataDir)
	}

	// Log lines would tear the screen, hold them until it is closed.
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer func() { os.Stderr.Write(logs.Bytes()) }()

	s, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer s.Fini()
	s.EnableMouse()
	s.HideCursor()

	scores := game.NewScoreStore(store)
	if err := scores.Load(); err != nil {
		log.Printf("loading scores: %v", err)
	}
	g := game.New(terminalConfig(), scores, nil)
	resize(s, g)

	run(s, g)
}

func terminalConfig() game.Config {
	return game.Config{
		StarSize:      2,
		ConfettiCount: 60,
		ConfettiScale: 0.25,
	}
}

func resize(s tcell.Screen, g *game.Game) {
	w, h := s.Size()
	g.Resize(game.Bounds{W: float64(w), H: float64(h)})
}

func run(s tcell.Screen, g *game.Game) {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / targetFPS)
	defer tick.Stop()

	in := input{game: g}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				resize(s, g)
			case *tcell.EventKey:
				if in.key(e, time.Now()) {
					return
				}
			case *tcell.EventMouse:
				in.mouse(e)
			}
		case now := <-tick.C:
			snap := g.Tick(now)
			for _, cue := range g.Cues() {
				if cue == game.CueCollect {
					s.Beep()
				}
			}
			render(s, snap)
			s.Show()
		}
	}
}

// input turns terminal events into game commands.
type input struct {
	game       *game.Game
	buttonDown bool
}

// key handles a key press and reports whether the program should quit.
func (in *input) key(e *tcell.EventKey, now time.Time) bool {
	g := in.game
	switch e.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		g.Start(now)
	case tcell.KeyEscape:
		switch g.Phase() {
		case game.PhaseMenu:
			return true
		case game.PhasePlaying:
			in.stop()
		case game.PhaseGameOver:
			g.Exit()
		}
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return true
		case 's', 'S':
			in.stop()
		case 'r', 'R':
			g.Replay(now)
		case 'x', 'X':
			g.Exit()
		}
	}
	return false
}

// mouse clicks on the center of the cell under the cursor. Drags and held
// buttons do not click again.
func (in *input) mouse(e *tcell.EventMouse) {
	down := e.Buttons()&tcell.Button1 != 0
	if down && !in.buttonDown {
		x, y := e.Position()
		in.game.Pointer(float64(x)+0.5, float64(y)+0.5)
	}
	in.buttonDown = down
}

func (in *input) stop() {
	if err := in.game.Stop(); err != nil {
		log.Printf("saving scores: %v", err)
	}
}

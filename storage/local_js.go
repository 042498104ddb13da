//go:build js

package storage

import (
	"syscall/js"

	"starcatch/game"
)

// Local keeps scores in the browser's localStorage.
type Local struct{}

// Default returns the storage used by the game in this build.
func Default() game.Storage {
	return Local{}
}

func (Local) Load() (game.Scores, error) {
	// getItem yields null for missing keys, which does not parse and falls
	// back to the zero value.
	history := getItem(historyName)
	highscore := getItem(highscoreName)
	return game.Scores{
		History:   bytesToHistory([]byte(history)),
		HighScore: bytesToHighscore([]byte(highscore)),
	}, nil
}

func (Local) Save(s game.Scores) error {
	setItem(historyName, string(historyToBytes(s.History)))
	setItem(highscoreName, string(highscoreToBytes(s.HighScore)))
	return nil
}

func getItem(key string) string {
	return js.Global().Get("localStorage").Call("getItem", key).String()
}

func setItem(key, value string) {
	js.Global().Get("localStorage").Call("setItem", key, value)
}

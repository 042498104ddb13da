// Package storage persists Star Catch scores. Browser builds use
// localStorage, every other build writes two small files.
package storage

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
)

const (
	historyName   = "starcatch_history"
	highscoreName = "starcatch_highscore"
)

func historyToBytes(history []int) []byte {
	if history == nil {
		history = []int{}
	}
	data, _ := json.Marshal(history)
	return data
}

// bytesToHistory returns nil for anything that is not a JSON list of
// integers. Negative entries are dropped.
func bytesToHistory(data []byte) []int {
	var history []int
	if err := json.Unmarshal(bytes.TrimSpace(data), &history); err != nil {
		return nil
	}
	return slices.DeleteFunc(history, func(n int) bool { return n < 0 })
}

func highscoreToBytes(score int) []byte {
	return []byte(strconv.Itoa(score))
}

func bytesToHighscore(data []byte) int {
	score, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}

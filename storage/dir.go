//go:build !js

package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"starcatch/game"
	"starcatch/internal/config"
)

// DataDirEnv overrides the directory the desktop build keeps its scores in.
const DataDirEnv = "STARCATCH_DATA_DIR"

// Dir keeps scores in two files inside a directory.
type Dir struct {
	path string
}

func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// Default returns the storage used by the game in this build.
func Default() game.Storage {
	return NewDir(config.GetEnv(DataDirEnv, dataDir()))
}

func (d *Dir) Path() string {
	return d.path
}

func (d *Dir) Load() (game.Scores, error) {
	var scores game.Scores

	data, err := d.read(historyName)
	if err != nil {
		return game.Scores{}, err
	}
	scores.History = bytesToHistory(data)

	data, err = d.read(highscoreName)
	if err != nil {
		return game.Scores{}, err
	}
	scores.HighScore = bytesToHighscore(data)

	return scores, nil
}

func (d *Dir) Save(s game.Scores) error {
	if err := d.write(historyName, historyToBytes(s.History)); err != nil {
		return err
	}
	return d.write(highscoreName, highscoreToBytes(s.HighScore))
}

// read returns no data and no error for a file that does not exist yet.
func (d *Dir) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (d *Dir) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(d.path, name), data, 0666); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

//go:build !windows && !js

package storage

import (
	"os"
	"path/filepath"
)

func dataDir() string {
	dir := "."

	if exe, err := os.Executable(); err == nil {
		dir = filepath.Dir(exe)
	}

	return dir
}

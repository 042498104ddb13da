//go:build windows

package storage

import "os"

func dataDir() string {
	return os.Getenv("APPDATA")
}

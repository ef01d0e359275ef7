// Package config resolves nudge's data locations and loads the persisted
// display configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvNudgeHome overrides the data directory.
	EnvNudgeHome = "NUDGE_HOME"
	// EnvNudgeDB overrides the history database path.
	EnvNudgeDB = "NUDGE_DB"
)

// DataDir returns the directory used to store nudge data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvNudgeHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nudge"), nil
}

// EnsureDataDir returns DataDir after creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return d, nil
}

// DBPath returns the full path to the SQLite history database.
func DBPath() (string, error) {
	if p := os.Getenv(EnvNudgeDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "nudge.db"), nil
}

// Package paths locates the wellscore config directory, which holds the
// local assessment history and the optional weights file.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName     = "wellscore"
	dbName      = "wellscore.db"
	weightsName = "weights.yaml"
)

// Dir is $XDG_CONFIG_HOME/wellscore, or ~/.config/wellscore when the
// variable is unset or relative.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

func DB() (string, error) {
	return file(dbName)
}

// Weights is the default location of the weights override file.
func Weights() (string, error) {
	return file(weightsName)
}

func file(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ManifestName is the file name of the project configuration.
const ManifestName = "jsfront.toml"

// ErrNoManifest is returned when no jsfront.toml exists between the start
// directory and the filesystem root.
var ErrNoManifest = errors.New("no " + ManifestName + " found")

// FindManifest walks up from startDir to locate jsfront.toml.
func FindManifest(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if st, err := os.Stat(candidate); err == nil {
			if !st.IsDir() {
				return candidate, nil
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNoManifest
}

// FindProjectRoot returns the directory containing jsfront.toml.
func FindProjectRoot(startDir string) (string, error) {
	manifestPath, err := FindManifest(startDir)
	if err != nil {
		return "", err
	}
	return filepath.Dir(manifestPath), nil
}

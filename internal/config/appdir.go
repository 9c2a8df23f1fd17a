package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const applicationName = "WATSS"

// ApplicationDirectory returns the platform-specific data directory, creating it if needed.
func ApplicationDirectory() (string, error) {
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	var applicationDirectory string
	switch runtime.GOOS {
	case "darwin":
		applicationDirectory = filepath.Join(homeDirectory, "Library", "Application Support", applicationName)
	case "windows":
		applicationDirectory = filepath.Join(homeDirectory, "AppData", "Roaming", applicationName)
	default: // linux and others
		applicationDirectory = filepath.Join(homeDirectory, ".local", "share", applicationName)
	}
	if err := os.MkdirAll(applicationDirectory, 0o755); err != nil {
		return "", fmt.Errorf("failed to create application directory: %w", err)
	}
	return applicationDirectory, nil
}

// DatabasePath is where the sqlite backend keeps its slots.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "submissions.db")
}

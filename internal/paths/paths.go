package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns ~/.plugin-selector.
func ConfigDir() string {
	return filepath.Join(home(), ".plugin-selector")
}

// ConfigFile returns ~/.plugin-selector/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogFile returns ~/.plugin-selector/debug.log.
func LogFile() string {
	return filepath.Join(ConfigDir(), "debug.log")
}

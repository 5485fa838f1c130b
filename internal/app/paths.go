package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/tally/internal/constants"
)

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

// ResolveDBPath expands "~" and falls back to the app data directory.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, constants.DBFileName), nil
	}
	return ExpandPath(raw)
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

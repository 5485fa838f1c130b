package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/hance08/tally/internal/constants"
	"github.com/spf13/afero"
)

// ResolveExportPath turns the user supplied target into a file path. An empty
// target or a directory gets the default export file name.
func ResolveExportPath(fs afero.Fs, target string) (string, error) {
	if target == "" {
		return constants.ExportFileName, nil
	}

	isDir, err := afero.IsDir(fs, target)
	if err == nil && isDir {
		return filepath.Join(target, constants.ExportFileName), nil
	}

	return target, nil
}

// WriteFile writes an exported snapshot, creating parent directories.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ReadFile loads an import payload.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return data, nil
}

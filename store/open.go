package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Open returns the TaskStore for the configured format.
// json, yaml, and toml are served by FileTaskStore on fsys; sqlite opens a
// database next to dataFile with a .db extension.
func Open(fsys afero.Fs, logger *slog.Logger, dataFile, format string) (TaskStore, error) {
	if strings.ToLower(format) == formatSQLite {
		dbPath := dataFile
		if dbPath == "" {
			dbPath = defaultDataFile
		}
		dbPath = strings.TrimSuffix(dbPath, filepath.Ext(dbPath)) + ".db"
		return NewSQLiteTaskStore(dbPath, logger)
	}

	s := NewFileTaskStore(fsys, logger)
	if err := s.Initialize(map[string]string{
		dataFileKey:       dataFile,
		dataFileFormatKey: format,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", dataFile, err)
	}
	return s, nil
}

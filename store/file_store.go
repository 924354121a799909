package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/afero"
)

const (
	defaultDataFile   = "db/tasks.json"
	dataFileKey       = "dataFile"
	dataFileFormatKey = "dataFileFormat"
	defaultDataFormat = formatJSON
	lockSuffix        = ".lock"
)

// FileTaskStore implements TaskStore on top of a single document file.
// It supports JSON, YAML, and TOML formats. Every read and write goes to disk;
// nothing is cached between calls.
type FileTaskStore struct {
	fs       afero.Fs
	logger   *slog.Logger
	filePath string
	format   string
	flk      *flock.Flock // nil when fs is not the OS filesystem
}

// NewFileTaskStore creates a new instance of FileTaskStore backed by fsys.
// It does not initialize the store; Initialize must be called separately.
func NewFileTaskStore(fsys afero.Fs, logger *slog.Logger) *FileTaskStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileTaskStore{
		fs:     fsys,
		logger: logger,
	}
}

// Initialize configures the FileTaskStore.
// It reads the 'dataFile' and 'dataFileFormat' keys from config, falling back to
// db/tasks.json and json. The parent directory is created if needed; the data
// file itself is only created by the first Save.
func (s *FileTaskStore) Initialize(config map[string]string) error {
	if val, ok := config[dataFileKey]; ok && val != "" {
		s.filePath = val
	} else {
		s.filePath = defaultDataFile
	}

	if val, ok := config[dataFileFormatKey]; ok && val != "" {
		formatLower := strings.ToLower(val)
		switch formatLower {
		case formatJSON, formatYAML, formatTOML:
			s.format = formatLower
		default:
			return fmt.Errorf("unsupported dataFileFormat: %s. Supported formats are json, yaml, toml", val)
		}
	} else {
		s.format = defaultDataFormat
	}

	// Default path with a non-JSON format gets the matching extension.
	if s.filePath == defaultDataFile && s.format != formatJSON {
		ext := filepath.Ext(s.filePath)
		s.filePath = strings.TrimSuffix(s.filePath, ext) + "." + s.format
	}

	dir := filepath.Dir(s.filePath)
	if dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, ok := s.fs.(*afero.OsFs); ok {
		s.flk = flock.New(s.filePath + lockSuffix)
	}
	return nil
}

// Path returns the data file location.
func (s *FileTaskStore) Path() string {
	return s.filePath
}

// Format returns the data file format.
func (s *FileTaskStore) Format() string {
	return s.format
}

func (s *FileTaskStore) lock() (func(), error) {
	if s.flk == nil {
		return func() {}, nil
	}
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("could not lock %s: %w", s.flk.Path(), err)
	}
	return func() { _ = s.flk.Unlock() }, nil
}

// Read returns the stored collection. A missing data file is an empty collection.
func (s *FileTaskStore) Read() ([]models.Task, error) {
	unlock, err := s.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", s.filePath, err)
	}

	tasks, err := decodeTasks(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.filePath, err)
	}
	return tasks, nil
}

// Write replaces the stored collection. The document is written to a temporary
// file first and renamed over the data file.
func (s *FileTaskStore) Write(tasks []models.Task) error {
	data, err := encodeTasks(s.format, tasks)
	if err != nil {
		return err
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	tempFilePath := fmt.Sprintf("%s.%s.tmp", s.filePath, uuid.NewString())
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}
	if err := s.fs.Rename(tempFilePath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.filePath, err)
	}
	return nil
}

// Load implements TaskStore.
func (s *FileTaskStore) Load() []models.Task {
	tasks, err := s.Read()
	if err != nil {
		s.logger.Error("failed to read tasks", "path", s.filePath, "error", err)
		return []models.Task{}
	}
	return tasks
}

// Save implements TaskStore.
func (s *FileTaskStore) Save(tasks []models.Task) {
	if err := s.Write(tasks); err != nil {
		s.logger.Error("failed to save tasks", "path", s.filePath, "error", err)
	}
}

// Close releases the lock handle.
// flock.Close is idempotent and safe to call when the lock is not held.
func (s *FileTaskStore) Close() error {
	if s.flk == nil {
		return nil
	}
	return s.flk.Close()
}

package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/josephgoksu/todo/models"
	_ "modernc.org/sqlite"
)

// SQLiteTaskStore implements TaskStore on a SQLite database.
// Sequence order is kept in the position column.
type SQLiteTaskStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteTaskStore opens (creating if needed) the database at dbPath.
func NewSQLiteTaskStore(dbPath string, logger *slog.Logger) (*SQLiteTaskStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteTaskStore{db: db, path: dbPath, logger: logger}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteTaskStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		position INTEGER PRIMARY KEY,
		id INTEGER NOT NULL,
		description TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database location.
func (s *SQLiteTaskStore) Path() string {
	return s.path
}

// Read returns the stored collection ordered by position.
func (s *SQLiteTaskStore) Read() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT id, description, completed FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Write replaces every row in a single transaction.
func (s *SQLiteTaskStore) Write(tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks (position, id, description, completed) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range tasks {
		if _, err := stmt.Exec(i, t.ID, t.Description, t.Completed); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load implements TaskStore.
func (s *SQLiteTaskStore) Load() []models.Task {
	tasks, err := s.Read()
	if err != nil {
		s.logger.Error("failed to read tasks", "path", s.path, "error", err)
		return []models.Task{}
	}
	return tasks
}

// Save implements TaskStore.
func (s *SQLiteTaskStore) Save(tasks []models.Task) {
	if err := s.Write(tasks); err != nil {
		s.logger.Error("failed to save tasks", "path", s.path, "error", err)
	}
}

// Close closes the database connection.
func (s *SQLiteTaskStore) Close() error {
	return s.db.Close()
}

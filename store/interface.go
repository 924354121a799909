package store

import "github.com/josephgoksu/todo/models"

// TaskStore defines the contract for persisting the task collection.
// The collection is always read and written as a whole; there are no partial
// writes and no transactions spanning a load and a save.
type TaskStore interface {
	// Load returns the full collection in stored order.
	// It never fails visibly: a missing file yields an empty collection, and any
	// read or decode failure is logged and also yields an empty collection.
	Load() []models.Task

	// Save replaces the stored collection with tasks.
	// Failures are logged and otherwise ignored; the caller proceeds as if the
	// write succeeded.
	Save(tasks []models.Task)

	// Path returns the location of the backing file or database.
	Path() string

	// Close releases any resources held by the store, such as lock handles or
	// database connections.
	Close() error
}

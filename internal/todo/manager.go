package todo

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/josephgoksu/todo/models"
)

// Store is the persistence contract the Manager needs.
// store.TaskStore satisfies it.
type Store interface {
	Load() []models.Task
	Save(tasks []models.Task)
}

// Option is one entry of a single or multiple choice prompt.
type Option struct {
	Label string
	Value int64
}

// Prompter collects raw user input. Every method blocks until the user answers
// and returns ErrAborted when the prompt is interrupted.
type Prompter interface {
	// Input asks for free text.
	Input(label string) (string, error)
	// Select asks for exactly one option and returns its Value.
	Select(label string, options []Option) (int64, error)
	// MultiSelect asks for any number of options and returns their Values.
	MultiSelect(label string, options []Option) ([]int64, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// Outcome identifies how an operation finished.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeUpdated
	OutcomeDeleted
	OutcomeCancelled
	OutcomeCompleted
	OutcomeNothingPending
	OutcomeNoSelection
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDeleted:
		return "deleted"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeCompleted:
		return "completed"
	case OutcomeNothingPending:
		return "nothing pending"
	case OutcomeNoSelection:
		return "no selection"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Manager runs each task operation as a full load, operate, save cycle.
// It keeps no copy of the collection between calls.
type Manager struct {
	store  Store
	prompt Prompter
	now    func() time.Time
	logger *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock overrides the time source used for new task IDs.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a Manager over store, asking prompt for user choices.
func NewManager(store Store, prompt Prompter, opts ...ManagerOption) *Manager {
	m := &Manager{
		store:  store,
		prompt: prompt,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add validates description before loading anything, then appends and saves.
// A duplicate description is merged silently and still reported as added.
func (m *Manager) Add(description string) (Outcome, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, emptyDescriptionError()
	}

	current := m.store.Load()
	next, err := Add(current, description, m.now())
	if err != nil {
		return 0, err
	}
	if len(next) <= len(current) {
		m.logger.Debug("duplicate description merged", "description", description)
	}

	m.store.Save(next)
	return OutcomeAdded, nil
}

// List returns the collection in display order.
func (m *Manager) List() ([]models.Task, error) {
	tasks := m.store.Load()
	if len(tasks) == 0 {
		return nil, ErrEmptyCollection
	}
	return SortForDisplay(tasks), nil
}

// Edit asks which task to change, by position in the loaded sequence, and
// for its new description.
func (m *Manager) Edit() (Outcome, error) {
	tasks := m.store.Load()
	if len(tasks) == 0 {
		return 0, fmt.Errorf("nothing to edit: %w", ErrEmptyCollection)
	}

	index, err := m.prompt.Select("Select a task to edit", positionOptions(tasks))
	if err != nil {
		return 0, err
	}

	description, err := m.prompt.Input("New description")
	if err != nil {
		return 0, err
	}

	next, err := UpdateDescription(tasks, int(index), description)
	if err != nil {
		return 0, err
	}

	m.store.Save(next)
	return OutcomeUpdated, nil
}

// Delete asks which task to remove, by position, and for confirmation.
func (m *Manager) Delete() (Outcome, error) {
	tasks := m.store.Load()
	if len(tasks) == 0 {
		return 0, fmt.Errorf("nothing to delete: %w", ErrEmptyCollection)
	}

	index, err := m.prompt.Select("Select a task to delete", positionOptions(tasks))
	if err != nil {
		return 0, err
	}

	confirmed, err := m.prompt.Confirm("Are you sure you want to delete this task")
	if err != nil {
		return 0, err
	}
	if !confirmed {
		return OutcomeCancelled, nil
	}

	next, err := RemoveAt(tasks, int(index))
	if err != nil {
		return 0, err
	}

	m.store.Save(next)
	return OutcomeDeleted, nil
}

// Complete asks which pending tasks are done, addressing them by ID.
func (m *Manager) Complete() (Outcome, error) {
	tasks := m.store.Load()
	pending := Pending(tasks)
	if len(pending) == 0 {
		return OutcomeNothingPending, nil
	}

	ids, err := m.prompt.MultiSelect("Select the tasks you have completed", identityOptions(pending))
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return OutcomeNoSelection, nil
	}

	m.store.Save(MarkCompleted(tasks, ids))
	return OutcomeCompleted, nil
}

// positionOptions addresses tasks by index into the full loaded sequence.
func positionOptions(tasks []models.Task) []Option {
	options := make([]Option, len(tasks))
	for i, t := range tasks {
		options[i] = Option{Label: t.Description, Value: int64(i)}
	}
	return options
}

// identityOptions addresses tasks by ID, for filtered views whose positions
// do not match the full sequence.
func identityOptions(tasks []models.Task) []Option {
	options := make([]Option, len(tasks))
	for i, t := range tasks {
		options[i] = Option{Label: t.Description, Value: t.ID}
	}
	return options
}

package todo

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/josephgoksu/todo/models"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore records every save so tests can assert on write counts.
type memStore struct {
	tasks []models.Task
	saves int
}

func (s *memStore) Load() []models.Task {
	return append([]models.Task{}, s.tasks...)
}

func (s *memStore) Save(tasks []models.Task) {
	s.saves++
	s.tasks = append([]models.Task{}, tasks...)
}

// scriptedPrompter answers prompts from queues and records what it was shown.
type scriptedPrompter struct {
	inputs   []string
	selects  []int64
	multis   [][]int64
	confirms []bool
	err      error

	shown [][]Option
}

func (p *scriptedPrompter) Input(string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

func (p *scriptedPrompter) Select(_ string, options []Option) (int64, error) {
	p.shown = append(p.shown, options)
	if p.err != nil {
		return 0, p.err
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *scriptedPrompter) MultiSelect(_ string, options []Option) ([]int64, error) {
	p.shown = append(p.shown, options)
	if p.err != nil {
		return nil, p.err
	}
	v := p.multis[0]
	p.multis = p.multis[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func fixedClock() func() time.Time {
	next := t0
	return func() time.Time {
		now := next
		next = next.Add(time.Millisecond)
		return now
	}
}

func newTestManager(s Store, p Prompter) *Manager {
	return NewManager(s, p, WithClock(fixedClock()))
}

func TestManager_AddBlankDoesNotWrite(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: 1, Description: "a"}}}
	m := newTestManager(s, &scriptedPrompter{})

	_, err := m.Add("   ")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, s.saves)
	assert.Len(t, s.tasks, 1)
}

func TestManager_AddDuplicateIsSilentMerge(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: 1, Description: "Buy milk", Completed: true}}}
	logs := &bytes.Buffer{}
	m := NewManager(s, &scriptedPrompter{},
		WithClock(fixedClock()),
		WithLogger(slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))

	outcome, err := m.Add("  Buy milk ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAdded, outcome)
	assert.Equal(t, 1, s.saves, "the merged collection is still written")
	assert.Equal(t, []models.Task{{ID: 1, Description: "Buy milk", Completed: true}}, s.tasks)
	assert.Contains(t, logs.String(), "duplicate description merged")
}

func TestManager_ListEmpty(t *testing.T) {
	m := newTestManager(&memStore{}, &scriptedPrompter{})
	_, err := m.List()
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestManager_ListDoesNotWrite(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: 1, Description: "b", Completed: true}, {ID: 2, Description: "a"}}}
	m := newTestManager(s, &scriptedPrompter{})

	first, err := m.List()
	require.NoError(t, err)
	second, err := m.List()
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 1}, taskIDs(first))
	assert.Equal(t, first, second)
	assert.Equal(t, 0, s.saves)
	assert.Equal(t, []int64{1, 2}, taskIDs(s.tasks), "stored order untouched")
}

func TestManager_EditByPositionInLoadedOrder(t *testing.T) {
	s := &memStore{tasks: []models.Task{
		{ID: 1, Description: "zeta", Completed: true},
		{ID: 2, Description: "alpha"},
	}}
	p := &scriptedPrompter{selects: []int64{0}, inputs: []string{"  omega "}}
	m := newTestManager(s, p)

	outcome, err := m.Edit()
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, []Option{{Label: "zeta", Value: 0}, {Label: "alpha", Value: 1}}, p.shown[0])
	assert.Equal(t, models.Task{ID: 1, Description: "omega", Completed: true}, s.tasks[0])
	assert.Equal(t, 1, s.saves)
}

func TestManager_EditSoftFailures(t *testing.T) {
	m := newTestManager(&memStore{}, &scriptedPrompter{})
	_, err := m.Edit()
	assert.ErrorIs(t, err, ErrEmptyCollection)
	assert.Contains(t, err.Error(), "nothing to edit")

	s := &memStore{tasks: []models.Task{{ID: 1, Description: "a"}}}
	m = newTestManager(s, &scriptedPrompter{selects: []int64{0}, inputs: []string{" "}})
	_, err = m.Edit()
	assert.True(t, IsValidationError(err))
	assert.Equal(t, 0, s.saves)
}

func TestManager_DeleteCancelled(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: 1, Description: "a"}, {ID: 2, Description: "b"}}}
	m := newTestManager(s, &scriptedPrompter{selects: []int64{1}, confirms: []bool{false}})

	outcome, err := m.Delete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)
	assert.Equal(t, 0, s.saves)
	assert.Len(t, s.tasks, 2)
}

func TestManager_DeleteConfirmed(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: 1, Description: "a"}, {ID: 2, Description: "b"}, {ID: 3, Description: "c"}}}
	m := newTestManager(s, &scriptedPrompter{selects: []int64{1}, confirms: []bool{true}})

	outcome, err := m.Delete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeleted, outcome)
	assert.Equal(t, []int64{1, 3}, taskIDs(s.tasks))
}

func TestManager_DeleteEmpty(t *testing.T) {
	_, err := newTestManager(&memStore{}, &scriptedPrompter{}).Delete()
	assert.ErrorIs(t, err, ErrEmptyCollection)
	assert.Contains(t, err.Error(), "nothing to delete")
}

func TestManager_CompleteByIdentity(t *testing.T) {
	s := &memStore{tasks: []models.Task{
		{ID: 10, Description: "done already", Completed: true},
		{ID: 20, Description: "a"},
		{ID: 30, Description: "b"},
		{ID: 40, Description: "c"},
	}}
	p := &scriptedPrompter{multis: [][]int64{{40, 20}}}
	m := newTestManager(s, p)

	outcome, err := m.Complete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeCompleted, outcome)
	assert.Equal(t, []Option{{Label: "a", Value: 20}, {Label: "b", Value: 30}, {Label: "c", Value: 40}}, p.shown[0])
	assert.Equal(t, []bool{true, true, false, true}, completedFlags(s.tasks))
}

func TestManager_CompleteNothingPendingVersusNoSelection(t *testing.T) {
	allDone := &memStore{tasks: []models.Task{{ID: 1, Description: "a", Completed: true}}}
	outcome, err := newTestManager(allDone, &scriptedPrompter{}).Complete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeNothingPending, outcome)
	assert.Equal(t, 0, allDone.saves)

	outcome, err = newTestManager(&memStore{}, &scriptedPrompter{}).Complete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeNothingPending, outcome)

	pending := &memStore{tasks: []models.Task{{ID: 1, Description: "a"}}}
	outcome, err = newTestManager(pending, &scriptedPrompter{multis: [][]int64{nil}}).Complete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeNoSelection, outcome)
	assert.Equal(t, 0, pending.saves)
	assert.NotEqual(t, OutcomeNothingPending.String(), OutcomeNoSelection.String())
}

func TestManager_AbortedPromptDoesNotWrite(t *testing.T) {
	s := &memStore{tasks: []models.Task{{ID: 1, Description: "a"}}}
	m := newTestManager(s, &scriptedPrompter{err: ErrAborted})

	for name, op := range map[string]func() (Outcome, error){
		"edit":     m.Edit,
		"delete":   m.Delete,
		"complete": m.Complete,
	} {
		_, err := op()
		assert.ErrorIs(t, err, ErrAborted, name)
	}
	assert.Equal(t, 0, s.saves)
}

func TestManager_EndToEndWithFileStore(t *testing.T) {
	fs := store.NewFileTaskStore(afero.NewMemMapFs(), nil)
	require.NoError(t, fs.Initialize(map[string]string{"dataFile": "db/tasks.json"}))

	p := &scriptedPrompter{}
	m := newTestManager(fs, p)

	_, err := m.Add("Buy milk")
	require.NoError(t, err)
	_, err = m.Add("  Buy milk  ")
	require.NoError(t, err)

	listed, err := m.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Buy milk", listed[0].Description)
	assert.False(t, listed[0].Completed)

	p.multis = [][]int64{{listed[0].ID}}
	_, err = m.Complete()
	require.NoError(t, err)

	listed, err = m.List()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].Completed)

	p.selects = []int64{0}
	p.confirms = []bool{true}
	outcome, err := m.Delete()
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeleted, outcome)

	_, err = m.List()
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todo/internal/todo"
	"github.com/stretchr/testify/assert"
)

func press(m checklistModel, keys ...tea.KeyMsg) checklistModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(checklistModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func checklistOptions() []todo.Option {
	return []todo.Option{
		{Label: "a", Value: 20},
		{Label: "b", Value: 30},
		{Label: "c", Value: 40},
	}
}

func TestChecklist_ToggleAndConfirm(t *testing.T) {
	m := newChecklistModel("Pick", checklistOptions())

	m = press(m, keySpace, keyDown, keyDown, runes("x"), keyEnter)

	assert.True(t, m.done)
	assert.False(t, m.aborted)
	assert.Equal(t, []int64{20, 40}, m.values())
}

func TestChecklist_ToggleTwiceClears(t *testing.T) {
	m := newChecklistModel("Pick", checklistOptions())

	m = press(m, keySpace, keySpace, keyEnter)

	assert.Empty(t, m.values())
	assert.True(t, m.done)
}

func TestChecklist_CursorBounds(t *testing.T) {
	m := newChecklistModel("Pick", checklistOptions())

	m = press(m, keyUp)
	assert.Equal(t, 0, m.cursor)

	m = press(m, keyDown, keyDown, keyDown, runes("j"))
	assert.Equal(t, 2, m.cursor)

	m = press(m, runes("k"))
	assert.Equal(t, 1, m.cursor)
}

func TestChecklist_SelectAll(t *testing.T) {
	m := newChecklistModel("Pick", checklistOptions())

	m = press(m, runes("a"))
	assert.Equal(t, []int64{20, 30, 40}, m.values())

	m = press(m, runes("a"))
	assert.Empty(t, m.values())
}

func TestChecklist_Abort(t *testing.T) {
	for name, key := range map[string]tea.KeyMsg{
		"esc":    keyEsc,
		"q":      runes("q"),
		"ctrl+c": {Type: tea.KeyCtrlC},
	} {
		m := press(newChecklistModel("Pick", checklistOptions()), keySpace, key)
		assert.True(t, m.aborted, name)
	}
}

func TestChecklist_View(t *testing.T) {
	m := newChecklistModel("Select the tasks you have completed", checklistOptions())
	m = press(m, keySpace)

	view := m.View()
	assert.Contains(t, view, "Select the tasks you have completed")
	assert.Contains(t, view, "▶ ")
	assert.Contains(t, view, "b")
	assert.Contains(t, view, GlyphDone)

	m = press(m, keyEnter)
	assert.Empty(t, m.View())
}

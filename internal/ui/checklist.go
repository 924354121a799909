package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todo/internal/todo"
)

// RunChecklist shows options as a checklist and returns the Values the user
// ticked, in option order. An empty result means the user confirmed nothing.
func RunChecklist(label string, options []todo.Option, in io.Reader, out io.Writer) ([]int64, error) {
	m := newChecklistModel(label, options)

	var opts []tea.ProgramOption
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	finalModel, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("error running checklist: %w", err)
	}

	result := finalModel.(checklistModel)
	if result.aborted {
		return nil, todo.ErrAborted
	}
	return result.values(), nil
}

type checklistModel struct {
	label    string
	options  []todo.Option
	cursor   int
	selected map[int]bool
	aborted  bool
	done     bool
}

func newChecklistModel(label string, options []todo.Option) checklistModel {
	return checklistModel{
		label:    label,
		options:  options,
		selected: make(map[int]bool),
	}
}

func (m checklistModel) Init() tea.Cmd {
	return nil
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(m.options) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "a":
		all := len(m.values()) < len(m.options)
		for i := range m.options {
			m.selected[i] = all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// values returns the ticked Values in option order.
func (m checklistModel) values() []int64 {
	var out []int64
	for i, opt := range m.options {
		if m.selected[i] {
			out = append(out, opt.Value)
		}
	}
	return out
}

func (m checklistModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var s strings.Builder
	s.WriteString("\n" + StyleSelectTitle.Render(m.label) + "\n\n")

	for i, opt := range m.options {
		cursor := "  "
		checkbox := "[ ]"
		style := StyleSelectNormal

		if m.selected[i] {
			checkbox = StyleDone.Render("[" + GlyphDone + "]")
		}
		if m.cursor == i {
			cursor = "▶ "
			style = StyleSelectActive
		}
		s.WriteString(cursor + checkbox + " " + style.Render(opt.Label) + "\n")
	}

	s.WriteString("\n" + StyleSelectDim.Render("↑/↓ navigate • space toggle • a all • enter confirm • esc cancel") + "\n")
	return s.String()
}

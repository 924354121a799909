package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/todo"
	"github.com/josephgoksu/todo/internal/ui"
)

// MenuItem represents a menu option
type MenuItem struct {
	Label  string
	Action string
	Run    func(s *session)
}

var menuItems = []MenuItem{
	{Label: "Add a task", Action: "add", Run: (*session).add},
	{Label: "List tasks", Action: "list", Run: (*session).list},
	{Label: "Edit a task", Action: "edit", Run: (*session).edit},
	{Label: "Delete a task", Action: "delete", Run: (*session).remove},
	{Label: "Mark tasks as completed", Action: "complete", Run: (*session).complete},
	{Label: "Exit", Action: "exit"},
}

// session drives the menu until the user exits or aborts the menu prompt.
type session struct {
	manager *todo.Manager
	prompt  todo.Prompter
	out     io.Writer
	errOut  io.Writer
}

func newSession(manager *todo.Manager, prompt todo.Prompter, out, errOut io.Writer) *session {
	return &session{manager: manager, prompt: prompt, out: out, errOut: errOut}
}

func (s *session) run() {
	fmt.Fprintln(s.out, ui.StyleHeader.Render("todo"))
	for s.step() {
	}
	fmt.Fprintln(s.out, "Goodbye!")
}

// step shows the menu once and runs the chosen action. It reports whether
// the session should continue.
func (s *session) step() bool {
	logger.SetAction("menu")

	options := make([]todo.Option, len(menuItems))
	for i, item := range menuItems {
		options[i] = todo.Option{Label: item.Label, Value: int64(i)}
	}

	choice, err := s.prompt.Select("What would you like to do?", options)
	if err != nil {
		if !errors.Is(err, todo.ErrAborted) {
			PrintError(s.errOut, "Could not read your choice.", err)
		}
		return false
	}

	item := menuItems[choice]
	if item.Run == nil {
		return false
	}
	logger.SetAction(item.Action)
	item.Run(s)
	fmt.Fprintln(s.out)
	return true
}

func (s *session) add() {
	description, err := s.prompt.Input("Task description")
	if err != nil {
		s.report(0, err, "")
		return
	}
	logger.SetLastInput(description)
	outcome, err := s.manager.Add(description)
	s.report(outcome, err, "")
}

func (s *session) list() {
	tasks, err := s.manager.List()
	if errors.Is(err, todo.ErrEmptyCollection) {
		ui.Warn(s.out, "No tasks yet.")
		return
	}
	if err != nil {
		PrintError(s.errOut, "Could not list tasks.", err)
		return
	}
	ui.RenderTaskList(s.out, tasks)
}

func (s *session) edit() {
	outcome, err := s.manager.Edit()
	s.report(outcome, err, "No tasks to edit.")
}

func (s *session) remove() {
	outcome, err := s.manager.Delete()
	s.report(outcome, err, "No tasks to delete.")
}

func (s *session) complete() {
	outcome, err := s.manager.Complete()
	s.report(outcome, err, "")
}

// report prints the message for an operation result. emptyMsg is shown when
// the operation found no tasks to work on.
func (s *session) report(outcome todo.Outcome, err error, emptyMsg string) {
	switch {
	case err == nil:
		s.reportOutcome(outcome)
	case errors.Is(err, todo.ErrAborted):
		ui.Warn(s.out, "Operation cancelled.")
	case todo.IsValidationError(err):
		ui.Fail(s.out, "Description cannot be empty.")
	case errors.Is(err, todo.ErrEmptyCollection) && emptyMsg != "":
		ui.Warn(s.out, emptyMsg)
	default:
		PrintError(s.errOut, "Something went wrong.", err)
	}
}

func (s *session) reportOutcome(outcome todo.Outcome) {
	switch outcome {
	case todo.OutcomeAdded:
		ui.Success(s.out, "Task added.")
	case todo.OutcomeUpdated:
		ui.Success(s.out, "Task updated.")
	case todo.OutcomeDeleted:
		ui.Success(s.out, "Task deleted.")
	case todo.OutcomeCancelled:
		ui.Warn(s.out, "Deletion cancelled.")
	case todo.OutcomeCompleted:
		ui.Success(s.out, "Tasks marked as completed.")
	case todo.OutcomeNothingPending:
		ui.Success(s.out, "No pending tasks. Nice work!")
	case todo.OutcomeNoSelection:
		ui.Warn(s.out, "No tasks selected.")
	}
}

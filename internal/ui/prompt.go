package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/josephgoksu/todo/internal/todo"
	"github.com/manifoldco/promptui"
)

// PromptUI asks questions with promptui widgets and a bubbletea checklist.
// It needs a terminal on both ends.
type PromptUI struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

var _ todo.Prompter = (*PromptUI)(nil)

// NewPromptUI returns a PromptUI on the given streams; nil means the process terminal.
func NewPromptUI(stdin io.ReadCloser, stdout io.WriteCloser) *PromptUI {
	return &PromptUI{Stdin: stdin, Stdout: stdout}
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▶ {{ .Label | cyan }}",
	Inactive: "  {{ .Label | white }}",
	Selected: "▶ {{ .Label | green | bold }}",
}

func (p *PromptUI) Input(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}
	value, err := prompt.Run()
	if err != nil {
		return "", promptError(err)
	}
	return value, nil
}

func (p *PromptUI) Select(label string, options []todo.Option) (int64, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select %q: no options", label)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     options,
		Templates: selectTemplates,
		Size:      10,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return 0, promptError(err)
	}
	return options[i].Value, nil
}

func (p *PromptUI) MultiSelect(label string, options []todo.Option) ([]int64, error) {
	var in io.Reader
	var out io.Writer
	if p.Stdin != nil {
		in = p.Stdin
	}
	if p.Stdout != nil {
		out = p.Stdout
	}
	return RunChecklist(label, options, in, out)
}

// Confirm treats any answer other than y as no.
func (p *PromptUI) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, promptError(err)
	}
	return true, nil
}

// promptError maps promptui interrupts onto todo.ErrAborted.
func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return todo.ErrAborted
	}
	return fmt.Errorf("prompt failed: %w", err)
}

package ui

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/josephgoksu/todo/internal/todo"
)

// LinePrompter asks questions one line at a time. It is used when input is
// piped or redirected, where terminal widgets cannot run.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ todo.Prompter = (*LinePrompter)(nil)

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(in), out: out}
}

// readLine returns the next line, or todo.ErrAborted once input is exhausted.
func (p *LinePrompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", todo.ErrAborted
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

func (p *LinePrompter) Input(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

func (p *LinePrompter) printOptions(label string, options []todo.Option) {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt.Label)
	}
}

func (p *LinePrompter) Select(label string, options []todo.Option) (int64, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select %q: no options", label)
	}

	p.printOptions(label, options)
	for {
		fmt.Fprint(p.out, "> ")
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := parseChoice(line, len(options))
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return options[n-1].Value, nil
	}
}

// MultiSelect accepts numbers separated by commas or spaces. A blank line
// selects nothing.
func (p *LinePrompter) MultiSelect(label string, options []todo.Option) ([]int64, error) {
	p.printOptions(label, options)
	for {
		fmt.Fprint(p.out, "numbers (blank for none)> ")
		line, err := p.readLine()
		if err != nil {
			return nil, err
		}
		picked, err := parseChoices(line, len(options))
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}

		var values []int64
		for _, n := range picked {
			values = append(values, options[n-1].Value)
		}
		return values, nil
	}
}

func (p *LinePrompter) Confirm(label string) (bool, error) {
	fmt.Fprintf(p.out, "%s? [y/N]: ", label)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func parseChoice(s string, limit int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > limit {
		return 0, fmt.Errorf("please enter a number between 1 and %d", limit)
	}
	return n, nil
}

// parseChoices returns the distinct choices in ascending order.
func parseChoices(s string, limit int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	var picked []int
	for _, f := range fields {
		n, err := parseChoice(f, limit)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(picked, n) {
			picked = append(picked, n)
		}
	}
	slices.Sort(picked)
	return picked, nil
}

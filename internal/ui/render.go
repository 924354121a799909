package ui

import (
	"fmt"
	"io"

	"github.com/josephgoksu/todo/models"
)

// RenderTaskList writes tasks in the order given, one per line, as
// "N. [glyph] description" with a 1-based position.
func RenderTaskList(w io.Writer, tasks []models.Task) {
	fmt.Fprintln(w, StyleHeader.Render("Your tasks"))
	for i, t := range tasks {
		glyph := Icon(GlyphPending, StylePending)
		if t.Completed {
			glyph = Icon(GlyphDone, StyleDone)
		}
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, glyph, t.Description)
	}
}

// Success, Warn and Fail print one-line status messages.
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, Icon(GlyphDone, StyleSuccess)+" "+msg)
}

func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, StyleWarning.Render(msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Icon(GlyphPending, StyleError)+" "+msg)
}

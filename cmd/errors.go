package cmd

import (
	"fmt"
	"io"
)

// PrintError prints a user-friendly message by default. With --verbose it
// prints the full technical error instead.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if GetConfig().Verbose && technicalErr != nil {
		fmt.Fprintf(w, "Error: %v\n", technicalErr)
		return
	}
	fmt.Fprintln(w, userMsg)
}

// Package echo prints a line of text.
package echo

import (
	"fmt"
	"io"
)

// Print writes text and a trailing newline to w.
func Print(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, text)
	return err
}

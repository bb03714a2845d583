package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"training.pl/textcli/internal/common"
)

// FormatError writes err to w as a one-line diagnostic, plus a hint for
// usage errors.
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	if useColor {
		red.EnableColor()
		yellow.EnableColor()
	} else {
		red.DisableColor()
		yellow.DisableColor()
	}

	_, _ = red.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, err.Error())

	var e *common.Error
	if errors.As(err, &e) && e.Type == common.ErrUsage {
		_, _ = yellow.Fprintf(w, "Run '%s --help' for usage.\n", common.AppName)
	}
}

// ShouldUseColor determines if diagnostics written to w should be colored.
// It respects the --no-color flag, NO_COLOR, and whether w is a terminal.
func ShouldUseColor(noColorFlag bool, w io.Writer) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

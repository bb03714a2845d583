// Package cat writes files to an output stream, optionally decorating each
// line with a number, an end-of-line marker, or visible tabs.
package cat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"training.pl/textcli/internal/command"
	"training.pl/textcli/internal/common"
	"training.pl/textcli/internal/ctxlog"
)

// Run opens path (or stdin when path is "-") and writes its decorated lines
// to w. An open failure yields a FILE_OPEN error and no output.
func Run(ctx context.Context, w io.Writer, stdin io.Reader, path string, opts command.DisplayOptions) error {
	logger := ctxlog.FromContext(ctx)

	r, closeFunc, err := Open(path, stdin)
	if err != nil {
		logger.Debug("Open failed.", "path", path, "error", err)
		return err
	}
	defer func() { _ = closeFunc() }()

	logger.Debug("Displaying file.", "path", path, "options", opts)
	lines, err := Display(w, r, opts)
	if err != nil {
		return common.NewIOError(path, err)
	}
	logger.Debug("Display finished.", "path", path, "lines", lines)
	return nil
}

// Open returns a reader for path and a func that releases it.
func Open(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == common.StdinPath {
		return stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, common.NewFileOpenError(path, err)
	}
	return f, f.Close, nil
}

// Display copies r to w line by line, applying opts, and returns the number of
// lines written. A final line without a newline is still written with one.
// Lines read before a read error are flushed to w before it is returned.
func Display(w io.Writer, r io.Reader, opts command.DisplayOptions) (int, error) {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)
	f := formatter{opts: opts}

	index := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return index, errors.Join(readErr, bw.Flush())
		}
		if line == "" && readErr != nil {
			break
		}

		if _, err := bw.WriteString(f.format(index, trimEOL(line))); err != nil {
			return index, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return index, err
		}
		index++

		if readErr != nil {
			break
		}
	}

	return index, bw.Flush()
}

// formatter carries the blank-line count across lines.
type formatter struct {
	opts   command.DisplayOptions
	blanks int
}

// format decorates the line at zero-based index. With NumberNonblank the
// number is the 1-based index less the blank lines seen so far; with only
// NumberAll it is the raw index.
func (f *formatter) format(index int, line string) string {
	var b strings.Builder

	if f.opts.Numbered() {
		switch {
		case !f.opts.NumberNonblank:
			writeNumber(&b, index)
		case isBlank(line):
			f.blanks++
		default:
			writeNumber(&b, index+1-f.blanks)
		}
	}

	b.WriteString(line)
	if f.opts.ShowEnds {
		b.WriteString(common.EndOfLineMarker)
	}

	out := b.String()
	if f.opts.ShowTabs {
		out = strings.ReplaceAll(out, "\t", common.TabMarker)
	}
	return out
}

func writeNumber(b *strings.Builder, n int) {
	fmt.Fprintf(b, "%*d%s", common.LineNumberWidth, n, common.LineNumberSeparator)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

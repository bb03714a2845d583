package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training.pl/textcli/internal/command"
	"training.pl/textcli/internal/common"
)

func newTestApp(t *testing.T, cfg Config, stdin string) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	a, err := New(validated, strings.NewReader(stdin), &stdout, &stderr)
	require.NoError(t, err)
	return a, &stdout, &stderr
}

func TestRun_Print(t *testing.T) {
	t.Parallel()

	a, stdout, stderr := newTestApp(t, Config{}, "")

	err := a.Run(context.Background(), command.Print{Text: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_PrintEmpty(t *testing.T) {
	t.Parallel()

	a, stdout, _ := newTestApp(t, Config{}, "")

	err := a.Run(context.Background(), command.Print{})

	require.NoError(t, err)
	assert.Equal(t, "\n", stdout.String())
}

func TestRun_Display(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "test.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello file!"), 0600))
	a, stdout, _ := newTestApp(t, Config{}, "")

	// --- Act ---
	err := a.Run(context.Background(), command.Display{
		Path:    path,
		Options: command.DisplayOptions{NumberAll: true, ShowEnds: true},
	})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "     0  hello file!$\n", stdout.String())
}

func TestRun_DisplayMissingFile(t *testing.T) {
	t.Parallel()

	a, stdout, stderr := newTestApp(t, Config{NoColor: true}, "")
	path := filepath.Join(t.TempDir(), "missing.txt")

	err := a.Run(context.Background(), command.Display{Path: path})
	require.Error(t, err)
	code := a.ReportError(err)

	assert.Equal(t, common.ExitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error: cannot open "+path)
	assert.NotContains(t, stderr.String(), "--help")
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()

	a, stdout, stderr := newTestApp(t, Config{LogLevel: "debug", LogFormat: "json"}, "piped\n")

	err := a.Run(context.Background(), command.Display{Path: common.StdinPath})

	require.NoError(t, err)
	assert.Equal(t, "piped\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"Display finished."`)
	assert.Contains(t, stderr.String(), `"lines":1`)
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "usage error has a hint",
			err:  common.NewUsageError("unknown flag: --x"),
			want: "Error: unknown flag: --x\nRun 'textcli --help' for usage.\n",
		},
		{
			name: "file open error",
			err:  common.NewFileOpenError("a.txt", os.ErrNotExist),
			want: "Error: cannot open a.txt: file does not exist\n",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			FormatError(&buf, tc.err, false)

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestFormatError_Color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FormatError(&buf, errors.New("boom"), true)

	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[31;1mError: "))
	assert.True(t, strings.HasSuffix(buf.String(), "boom\n"))
}

func TestFormatError_Nil(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FormatError(&buf, nil, true)

	assert.Empty(t, buf.String())
}

func TestShouldUseColor(t *testing.T) {
	t.Parallel()

	assert.False(t, ShouldUseColor(true, os.Stderr))
	assert.False(t, ShouldUseColor(false, &bytes.Buffer{}))
}

// Package app runs parsed commands against the process streams.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"training.pl/textcli/internal/cat"
	"training.pl/textcli/internal/command"
	"training.pl/textcli/internal/common"
	"training.pl/textcli/internal/ctxlog"
	"training.pl/textcli/internal/echo"
)

// App dispatches commands to their handlers.
type App struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	useColor bool
}

// New builds an App from a validated config. Logs go to stderr.
func New(cfg *Config, stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	logger, err := common.NewLogger(stderr, cfg.Level(), cfg.LogFormat)
	if err != nil {
		return nil, common.NewUsageError(err.Error())
	}

	return &App{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
		useColor: ShouldUseColor(cfg.NoColor, stderr),
	}, nil
}

// Run executes cmd.
func (a *App) Run(ctx context.Context, cmd command.Command) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	switch c := cmd.(type) {
	case command.Print:
		a.logger.Debug("Printing text.", "length", len(c.Text))
		if err := echo.Print(a.stdout, c.Text); err != nil {
			return common.NewIOError("", err)
		}
		return nil
	case command.Display:
		return cat.Run(ctx, a.stdout, a.stdin, c.Path, c.Options)
	default:
		panic(fmt.Sprintf("app: unhandled command %T", cmd))
	}
}

// ReportError writes err to stderr and returns the exit code for it.
func (a *App) ReportError(err error) int {
	FormatError(a.stderr, err, a.useColor)
	return common.ExitCode(err)
}

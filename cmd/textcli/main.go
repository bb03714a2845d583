package main

import (
	"context"
	"io"
	"os"

	"training.pl/textcli/internal/app"
	"training.pl/textcli/internal/cli"
	"training.pl/textcli/internal/common"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, executes the command, and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd, cfg, err := cli.Parse(args, stdout, stderr)
	if err != nil {
		app.FormatError(stderr, err, app.ShouldUseColor(false, stderr))
		return common.ExitCode(err)
	}
	if cmd == nil {
		return common.ExitSuccess
	}

	a, err := app.New(cfg, stdin, stdout, stderr)
	if err != nil {
		app.FormatError(stderr, err, app.ShouldUseColor(cfg.NoColor, stderr))
		return common.ExitCode(err)
	}

	if err := a.Run(ctx, cmd); err != nil {
		return a.ReportError(err)
	}
	return common.ExitSuccess
}

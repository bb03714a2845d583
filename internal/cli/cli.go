package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"training.pl/textcli/internal/app"
	"training.pl/textcli/internal/command"
	"training.pl/textcli/internal/common"
)

// Parse processes command-line arguments into a command and the global
// config. A nil command with a nil error means help or version output was
// written to stdout and the program should exit cleanly. Every returned
// error is a USAGE *common.Error.
func Parse(args []string, stdout, stderr io.Writer) (command.Command, *app.Config, error) {
	var (
		parsed command.Command
		cfg    *app.Config
		global app.Config
	)

	root := &cobra.Command{
		Use:           common.AppName + " <command>",
		Short:         "Simple command line commands",
		Version:       common.AppVersion,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.NewConfig(global)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.NewUsageError("missing command: expected print-text or display-file")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&global.LogLevel, "log-level", app.DefaultLogLevel, "Logging level: 'debug', 'info', 'warn', or 'error'")
	pf.StringVar(&global.LogFormat, "log-format", app.DefaultLogFormat, "Log output format: 'text' or 'json'")
	pf.BoolVar(&global.NoColor, "no-color", false, "Disable colored diagnostics")

	root.AddCommand(
		newPrintTextCmd(&parsed),
		newDisplayFileCmd(&parsed),
	)

	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		return nil, nil, asUsageError(err)
	}
	if parsed == nil {
		return nil, nil, nil
	}
	return parsed, cfg, nil
}

func newPrintTextCmd(parsed *command.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "print-text [text]",
		Short: "Display a line of text passed as an argument",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = command.Print{Text: firstArg(args)}
			return nil
		},
	}
}

func newDisplayFileCmd(parsed *command.Command) *cobra.Command {
	var (
		opts        command.DisplayOptions
		showEndsAlt bool
	)

	cmd := &cobra.Command{
		Use:   "display-file [path]",
		Short: "Print a file on the standard output, '-' reads standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ShowEnds = opts.ShowEnds || showEndsAlt
			*parsed = command.Display{Path: firstArg(args), Options: opts}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.NumberAll, "number-all", "n", false, "Number all output lines")
	f.BoolVarP(&opts.NumberNonblank, "number-nonblank", "b", false, "Number non-blank output lines, overrides -n")
	f.BoolVarP(&opts.ShowEnds, "show-ends", "s", false, "Display $ at end of each line")
	f.BoolVarP(&showEndsAlt, "show-ends-e", "e", false, "Same as -s")
	f.BoolVarP(&opts.ShowTabs, "show-tabs", "T", false, "Display TAB characters as ^I")
	_ = f.MarkHidden("show-ends-e")
	cmd.SetGlobalNormalizationFunc(normalizeDisplayFlag)

	return cmd
}

// normalizeDisplayFlag makes --number an alias of --number-all.
func normalizeDisplayFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "number":
		name = "number-all"
	}
	return pflag.NormalizedName(name)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func asUsageError(err error) error {
	var e *common.Error
	if errors.As(err, &e) {
		return e
	}
	return common.NewUsageError(err.Error())
}

// Package cli is responsible for parsing command-line arguments and
// validating user input. It translates the subcommand, its flags, and the
// global flags into a command.Command and an app.Config.
package cli

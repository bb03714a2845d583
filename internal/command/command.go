// Package command defines the commands the CLI can run.
package command

// Command is one of Print or Display.
type Command interface {
	command()
}

// Print writes Text followed by a newline.
type Print struct {
	Text string
}

// Display writes the contents of Path with the decorations in Options.
type Display struct {
	Path    string
	Options DisplayOptions
}

// DisplayOptions selects the per-line decorations.
type DisplayOptions struct {
	NumberAll      bool
	NumberNonblank bool
	ShowEnds       bool
	ShowTabs       bool
}

// Numbered reports whether lines get a number prefix.
func (o DisplayOptions) Numbered() bool {
	return o.NumberAll || o.NumberNonblank
}

func (Print) command()   {}
func (Display) command() {}

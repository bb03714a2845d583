package common

// Program identity
const (
	AppName    = "textcli"
	AppVersion = "0.1"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Line decoration
const (
	LineNumberWidth     = 6
	LineNumberSeparator = "  "
	EndOfLineMarker     = "$"
	TabMarker           = "^I"
)

// StdinPath names standard input wherever a file path is accepted.
const StdinPath = "-"

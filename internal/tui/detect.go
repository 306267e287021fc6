package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the terminal interaction mode.
type Mode int

const (
	// ModeNonInteractive indicates no TTY or explicitly disabled interactivity.
	ModeNonInteractive Mode = iota
	// ModeInteractive indicates a TTY is available for interactive prompts.
	ModeInteractive
)

// DetectMode determines the terminal interaction mode.
//
// Returns ModeNonInteractive when:
//   - DATACOMMONS_NON_INTERACTIVE=1 environment variable is set
//   - CI environment variable is set (any non-empty value)
//   - NO_COLOR environment variable is set (any non-empty value)
//   - stdin or stdout is not a terminal
func DetectMode() Mode {
	if os.Getenv("DATACOMMONS_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	stdinFd := int(os.Stdin.Fd())
	stdoutFd := int(os.Stdout.Fd())
	if !term.IsTerminal(stdinFd) || !term.IsTerminal(stdoutFd) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience wrapper returning true when DetectMode
// reports ModeInteractive.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

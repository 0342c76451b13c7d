// Package detector provides terminal detection for process and output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how child processes and progress output are presented.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeInteractive runs compilers under a pseudo-terminal.
	ModeInteractive
	// ModePlain uses pipes, suitable for CI logs and redirected output.
	ModePlain
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeInteractive
}

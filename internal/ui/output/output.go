// Package output creates termenv outputs with the colour profile used across rebuild.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the colour profile for a writer. NO_COLOR always wins. An
// interactive terminal gets its detected capabilities, everything else plain ANSI
// so CI logs keep their colours.
func Profile(interactive bool) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if interactive {
		return termenv.EnvColorProfile()
	}
	return termenv.ANSI
}

// New creates a termenv.Output writing to w, defaulting to stderr.
func New(w io.Writer, interactive bool, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(Profile(interactive)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

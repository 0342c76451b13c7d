package domain

import "time"

// CompileResult is the outcome of compiling one translation unit.
type CompileResult struct {
	Success bool
	// Output holds the compiler diagnostics.
	Output         string
	HadDiagnostics bool
	Duration       time.Duration
}

// LinkResult is the outcome of linking the executable.
type LinkResult struct {
	Success  bool
	Output   string
	Duration time.Duration
}

// CopiedResource records one file copied by the resource synchronizer.
type CopiedResource struct {
	Source      string
	Destination string
}

// BuildResult summarizes one build invocation.
type BuildResult struct {
	Compiled []string
	Skipped  []string
	// Warnings lists units that compiled with diagnostics.
	Warnings []string
	Linked   bool
	// LinkReason explains why the executable was relinked.
	LinkReason string
	UpToDate   bool
	Resources  []CopiedResource
}

// HasWarnings reports whether any unit compiled with diagnostics.
func (r *BuildResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// BuildOptions tune a single build invocation.
type BuildOptions struct {
	// Jobs overrides the configured number of parallel compiles when positive.
	Jobs int
	// Force marks every unit stale.
	Force bool
}

// PlanOptions tune a single planning pass.
type PlanOptions struct {
	// Force marks every unit stale with the reason "forced".
	Force bool
}

// CompileCommand is one entry of a compilation database. Entries written by other
// tools may carry Command instead of Arguments.
type CompileCommand struct {
	Directory string   `json:"directory"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
	File      string   `json:"file"`
	Output    string   `json:"output,omitempty"`
}

// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rebuild/internal/core/domain"
)

// CompilerClient abstracts every invocation of the external compiler.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type CompilerClient interface {
	// Dependencies runs the dependency probe for source and returns the
	// prerequisites the compiler reported, the source itself excluded.
	Dependencies(ctx context.Context, cfg *domain.Config, source string) ([]string, error)

	// Compile compiles one translation unit into its object file.
	// A non-nil error means the unit failed to compile; the result still carries
	// the diagnostics.
	Compile(ctx context.Context, cfg *domain.Config, unit *domain.TranslationUnit) (domain.CompileResult, error)

	// Link links objects into the executable at output.
	Link(ctx context.Context, cfg *domain.Config, objects []string, output string) (domain.LinkResult, error)

	// CompileCommand returns the compile invocation of unit as a compilation database entry.
	CompileCommand(cfg *domain.Config, unit *domain.TranslationUnit) domain.CompileCommand

	// LinkCommand returns the argv used to link objects into output.
	LinkCommand(cfg *domain.Config, objects []string, output string) []string
}

// Package compiler implements ports.CompilerClient for gcc and clang style drivers.
package compiler

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/rebuild/internal/adapters/shell"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompilerClient = (*Client)(nil)

// Client invokes the configured compiler from the project root.
type Client struct {
	runner *shell.Runner
}

// New creates a Client running processes through runner.
func New(runner *shell.Runner) *Client {
	return &Client{runner: runner}
}

// Dependencies runs "<compiler> <flags> -I<inc>... -MM -I<headerDir> <source>" and
// returns the prerequisites of the emitted rule, source excluded.
func (c *Client) Dependencies(ctx context.Context, cfg *domain.Config, source string) ([]string, error) {
	args := make([]string, 0, len(cfg.CompilerFlags)+len(cfg.IncludePaths)+4)
	args = append(args, cfg.Compiler)
	args = append(args, cfg.CompilerFlags...)
	args = append(args, includeFlags(cfg, cfg.IncludePaths)...)
	args = append(args, "-MM", "-I"+cfg.Rel(cfg.HeaderDir), cfg.Rel(source))

	out, err := c.runner.Capture(ctx, shell.Command{Args: args, Dir: cfg.Root})
	if err != nil {
		return nil, err
	}

	prereqs, err := parseMakeRule(string(out))
	if err != nil {
		return nil, zerr.Wrap(err, "unusable dependency output")
	}

	deps := make([]string, 0, len(prereqs))
	for _, p := range prereqs {
		if cfg.Abs(p) == source {
			continue
		}
		deps = append(deps, p)
	}
	return deps, nil
}

// CompileCommand returns "<compiler> <flags> -c -I<headerDir> -I<inc>... <source> -o <object>".
func (c *Client) CompileCommand(cfg *domain.Config, unit *domain.TranslationUnit) domain.CompileCommand {
	args := make([]string, 0, len(cfg.CompilerFlags)+len(cfg.IncludePaths)+6)
	args = append(args, cfg.Compiler)
	args = append(args, cfg.CompilerFlags...)
	args = append(args, "-c", "-I"+cfg.Rel(cfg.HeaderDir))
	args = append(args, includeFlags(cfg, cfg.IncludePaths)...)
	args = append(args, cfg.Rel(unit.Source), "-o", cfg.Rel(unit.Object))

	return domain.CompileCommand{
		Directory: cfg.Root,
		Arguments: args,
		File:      unit.Source,
		Output:    unit.Object,
	}
}

// Compile compiles unit, creating its object directory first.
func (c *Client) Compile(ctx context.Context, cfg *domain.Config, unit *domain.TranslationUnit) (domain.CompileResult, error) {
	if err := os.MkdirAll(filepath.Dir(unit.Object), domain.DirPerm); err != nil {
		return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "failed to create object directory"),
			"path", cfg.Rel(filepath.Dir(unit.Object)))
	}

	start := time.Now()
	output, err := c.run(ctx, cfg, c.CompileCommand(cfg, unit).Arguments)

	return domain.CompileResult{
		Success:        err == nil,
		Output:         output,
		HadDiagnostics: strings.TrimSpace(output) != "",
		Duration:       time.Since(start),
	}, err
}

// LinkCommand returns "<compiler> -o <output> <objects...> -L<lib>... <linkerFlags>".
func (c *Client) LinkCommand(cfg *domain.Config, objects []string, output string) []string {
	args := make([]string, 0, len(objects)+len(cfg.LibraryPaths)+len(cfg.LinkerFlags)+3)
	args = append(args, cfg.Compiler, "-o", cfg.Rel(output))
	for _, obj := range objects {
		args = append(args, cfg.Rel(obj))
	}
	for _, lib := range cfg.LibraryPaths {
		args = append(args, "-L"+cfg.Rel(lib))
	}
	return append(args, cfg.LinkerFlags...)
}

// Link links objects into output, creating the executable directory first.
func (c *Client) Link(ctx context.Context, cfg *domain.Config, objects []string, output string) (domain.LinkResult, error) {
	if err := os.MkdirAll(filepath.Dir(output), domain.DirPerm); err != nil {
		return domain.LinkResult{}, zerr.With(zerr.Wrap(err, "failed to create executable directory"),
			"path", cfg.Rel(filepath.Dir(output)))
	}

	start := time.Now()
	out, err := c.run(ctx, cfg, c.LinkCommand(cfg, objects, output))

	return domain.LinkResult{
		Success:  err == nil,
		Output:   out,
		Duration: time.Since(start),
	}, err
}

func (c *Client) run(ctx context.Context, cfg *domain.Config, args []string) (string, error) {
	var buf bytes.Buffer
	err := c.runner.Run(ctx, shell.Command{Args: args, Dir: cfg.Root}, &buf)
	return strings.ReplaceAll(buf.String(), "\r\n", "\n"), err
}

func includeFlags(cfg *domain.Config, dirs []string) []string {
	flags := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		flags = append(flags, "-I"+cfg.Rel(dir))
	}
	return flags
}

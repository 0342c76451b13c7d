// Package linear provides a synchronous, line-oriented renderer for build progress.
package linear

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/rebuild/internal/ui/output"
	"go.trai.ch/rebuild/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer with chronological lines. Progress goes to
// stdout, failure banners to stderr. Compiler diagnostics are indented by a tab.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output
	errOut *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer, interactive bool) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.New(stdout, interactive),
		errOut: output.New(stderr, interactive),
	}
}

// OnUnitPlanned prints one line of a dry run.
func (r *Renderer) OnUnitPlanned(name string, verdict domain.Verdict, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	icon, colour := style.Check, style.Green
	if verdict != domain.VerdictFresh {
		icon, colour = style.Tilde, style.Yellow
	}
	_, _ = fmt.Fprintf(r.stdout, "%s %-5s %s %s\n",
		style.Paint(r.out, colour, icon),
		verdict,
		name,
		r.out.String("("+reason+")").Faint().String())
}

// OnUnitSkipped prints the skip line of an up to date unit.
func (r *Renderer) OnUnitSkipped(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, style.Paint(r.out, style.Green, "Skipping (up to date): "+name))
}

// OnCompileStart echoes the compiler command.
func (r *Renderer) OnCompileStart(_ string, argv []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printCommandLocked(argv)
}

// OnCompileComplete prints the diagnostics of one compile.
func (r *Renderer) OnCompileComplete(name, diagnostics string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printDiagnosticsLocked(diagnostics)
	if err != nil {
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n",
			style.Paint(r.errOut, style.Red, style.Cross),
			r.errOut.String("Compilation of "+name+" failed").Bold().String())
	}
}

// OnLinkStart announces the link step.
func (r *Renderer) OnLinkStart(name string, argv []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout)
	_, _ = fmt.Fprintln(r.stdout, r.paintBold(r.out, style.Iris, "Generating executable "+name+"..."))
	r.printCommandLocked(argv)
}

// OnLinkComplete prints the linker diagnostics.
func (r *Renderer) OnLinkComplete(name, diagnostics string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printDiagnosticsLocked(diagnostics)
	if err != nil {
		_, _ = fmt.Fprintf(r.stderr, "%s %s\n",
			style.Paint(r.errOut, style.Red, style.Cross),
			r.errOut.String("Linking "+name+" failed").Bold().String())
	}
}

// OnResourceCopied prints one copied resource.
func (r *Renderer) OnResourceCopied(src, dst string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.stdout, style.Paint(r.out, style.Yellow, fmt.Sprintf("    Copying %s to %s...", src, dst)))
}

// OnBuildComplete prints the closing banner of a build.
func (r *Renderer) OnBuildComplete(result *domain.BuildResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case err != nil:
		title := "Building failed!"
		if errors.Is(err, domain.ErrLinkFailed) {
			title = "Linking failed!"
		}
		r.bannerLocked(r.stderr, r.errOut, style.Red, title, "Skipping executable generation")
	case result.UpToDate:
		r.bannerLocked(r.stdout, r.out, style.Green, "Everything up to date!", "Skipping executable generation")
	case result.HasWarnings():
		r.bannerLocked(r.stdout, r.out, style.Yellow, "Compilation succeeded with warnings", summary(result))
	default:
		r.bannerLocked(r.stdout, r.out, style.Green, "Compilation succeeded", summary(result))
	}
}

func summary(result *domain.BuildResult) string {
	s := fmt.Sprintf("%d compiled, %d up to date", len(result.Compiled), len(result.Skipped))
	if result.Linked {
		s += ", relinked (" + result.LinkReason + ")"
	}
	return s
}

// bannerLocked prints a title with a detail line and an underline.
// Must be called with r.mu held.
func (r *Renderer) bannerLocked(w io.Writer, out *termenv.Output, c lipgloss.Color, title, detail string) {
	width := max(len(title), len(detail))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, r.paintBold(out, c, title))
	_, _ = fmt.Fprintln(w, r.paintBold(out, c, detail))
	_, _ = fmt.Fprintln(w, style.Paint(out, c, strings.Repeat("-", width)))
}

// printCommandLocked must be called with r.mu held.
func (r *Renderer) printCommandLocked(argv []string) {
	_, _ = fmt.Fprintf(r.stdout, "%s%s\n", r.out.String("Running: ").Bold().String(), strings.Join(argv, " "))
}

// printDiagnosticsLocked must be called with r.mu held.
func (r *Renderer) printDiagnosticsLocked(diagnostics string) {
	diagnostics = strings.TrimRight(diagnostics, "\r\n")
	if diagnostics == "" {
		return
	}
	for _, line := range strings.Split(diagnostics, "\n") {
		_, _ = fmt.Fprintf(r.stdout, "\t%s\n", strings.TrimSuffix(line, "\r"))
	}
	_, _ = fmt.Fprintln(r.stdout)
}

func (r *Renderer) paintBold(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(out.Color(string(c))).Bold().String()
}

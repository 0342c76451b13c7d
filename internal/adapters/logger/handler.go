package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rebuild/internal/ui/output"
	"go.trai.ch/rebuild/internal/ui/style"
)

// PrettyHandler is a slog.Handler producing coloured, human-readable lines.
// Warnings and errors are prefixed with an icon, and continuation lines of a
// message are indented to stay aligned with its first line.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	parts  []string
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w, defaulting to stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w, true),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var (
		icon   string
		colour lipgloss.Color
	)
	switch {
	case r.Level >= slog.LevelError:
		icon, colour = style.Cross, style.Red
	case r.Level >= slog.LevelWarn:
		icon, colour = style.Warning, style.Yellow
	default:
		colour = style.Slate
	}

	msg := r.Message
	if icon != "" {
		msg = icon + " " + indent(msg, strings.Repeat(" ", len([]rune(icon))+1))
	}

	parts := make([]string, 0, len(h.parts)+r.NumAttrs())
	parts = append(parts, h.parts...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.groups, attr)
		return true
	})
	if len(parts) > 0 {
		msg += " " + strings.Join(parts, " ")
	}

	_, err := h.out.WriteString(style.Paint(h.out, colour, msg) + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended. They are
// qualified by the groups opened so far.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.parts = slices.Clone(h.parts)
	for _, attr := range attrs {
		clone.parts = appendAttr(clone.parts, h.groups, attr)
	}
	return &clone
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(slices.Clone(h.groups), name)
	return &clone
}

// appendAttr formats attr as key=value, flattening groups into dotted keys.
func appendAttr(parts, groups []string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			groups = append(groups[:len(groups):len(groups)], attr.Key)
		}
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, groups, a)
		}
		return parts
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return append(parts, key+"="+attr.Value.String())
}

// indent prefixes every non-empty line after the first with pad.
func indent(msg, pad string) string {
	lines := strings.Split(msg, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

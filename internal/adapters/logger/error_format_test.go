package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rebuild/internal/adapters/logger"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name: "mixed chain with partial metadata",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				outer := zerr.Wrap(inner, "outer")
				return zerr.With(outer, "outer_key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
			wantMetadata: []map[string]any{
				{"outer_key": "outer_val"},
				{"inner_key": "inner_val"},
			},
		},
		{
			name:         "metadata folded into standard cause",
			err:          zerr.With(errors.New("exit status 2"), "exit_code", 2),
			wantMessages: []string{"exit status 2"},
			wantMetadata: []map[string]any{{"exit_code": 2}},
		},
		{
			name:         "sentinel with metadata",
			err:          zerr.With(domain.ErrEntryNotFound, "pattern", "src/main.cpp"),
			wantMessages: []string{domain.ErrEntryNotFound.Error()},
			wantMetadata: []map[string]any{{"pattern": "src/main.cpp"}},
		},
		{
			name:         "path mapping keeps path and root",
			err:          zerr.With(zerr.With(domain.ErrPathMapping, "path", "/elsewhere/util.cpp"), "root", "/project/src"),
			wantMessages: []string{domain.ErrPathMapping.Error()},
			wantMetadata: []map[string]any{{"path": "/elsewhere/util.cpp", "root": "/project/src"}},
		},
		{
			name: "discovery failure over a failed command",
			err: zerr.With(
				zerr.Wrap(zerr.With(errors.New("exit status 1"), "exit_code", 1), domain.ErrDiscoveryFailed.Error()),
				"source", "src/main.cpp",
			),
			wantMessages: []string{domain.ErrDiscoveryFailed.Error(), "exit status 1"},
			wantMetadata: []map[string]any{{"source": "src/main.cpp"}, {"exit_code": 1}},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			assert.Len(t, entries, len(tt.wantMessages), "entry count mismatch")
			for i, wantMsg := range tt.wantMessages {
				assert.Equal(t, wantMsg, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries with caused by",
			entries: []logger.ErrorEntry{{Message: "outer error"}, {Message: "inner error"}},
			want:    "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name:    "entry with metadata on main error",
			entries: []logger.ErrorEntry{{Message: "main error", Metadata: map[string]any{"key": "value"}}},
			want:    "Error: main error\n       key: value",
		},
		{
			name: "entry with metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"cause_key": "cause_val"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      cause_key: cause_val",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2\nline3"}},
			want:    "Error: line1\n       line2\n       line3",
		},
		{
			name:    "multiline cause message",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "cause line1\ncause line2"}},
			want:    "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": "m"},
			}},
			want: "Error: error\n       alpha: a\n       mike: m\n       zebra: z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestCollectAndFormatIntegration(t *testing.T) {
	err := zerr.With(
		zerr.Wrap(zerr.With(zerr.New("compiler exited with status 1"), "exit_code", 1), "failed to compile"),
		"source", "src/main.cpp",
	)

	got := logger.FormatErrorEntriesExported(logger.CollectErrorEntriesExported(err))

	assert.Equal(t, "Error: failed to compile\n"+
		"       source: src/main.cpp\n\n"+
		"  Caused by:\n"+
		"    → compiler exited with status 1\n"+
		"      exit_code: 1", got)
}

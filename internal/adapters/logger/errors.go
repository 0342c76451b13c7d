package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager is implemented by zerr errors, which report their own message
// without the cause chain.
type messager interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message string
	// Metadata is nil for standard errors and non-nil for zerr errors.
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr errors contribute their own
// message and metadata and the walk continues with their cause. A standard
// error contributes its full text and ends the walk. A zerr error without a
// message only carries metadata, which is folded into the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: merge(nil, pending)})
			break
		}

		if m.Message() == "" && errors.Unwrap(current) != nil {
			pending = merge(pending, m.Metadata())
			current = errors.Unwrap(current)
			continue
		}

		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: merge(m.Metadata(), pending)})
		pending = nil
		current = errors.Unwrap(current)
	}

	return entries
}

// merge returns dst with the entries of src added. dst is allocated when src
// has entries.
func merge(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// formatErrorEntries renders entries as
//
//	Error: <message>
//	       key: value
//
//	  Caused by:
//	    → <cause>
//	      key: value
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		lead, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lead, indent = "    → ", "      "
		}

		lines = append(lines, lead+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, k := range sortedKeys(entry.Metadata) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

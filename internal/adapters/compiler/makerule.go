package compiler

import (
	"strings"

	"go.trai.ch/zerr"
)

// errNoRule is returned when the dependency output holds no make rule.
var errNoRule = zerr.New("no make rule in dependency output")

// parseMakeRule extracts the prerequisites of every rule in a make fragment as
// produced by -MM. Line continuations are joined and escaped spaces kept.
func parseMakeRule(data string) ([]string, error) {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.ReplaceAll(data, "\\\n", " ")

	var prereqs []string
	found := false

	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sep := ruleSeparator(line)
		if sep < 0 {
			return nil, zerr.With(errNoRule, "line", line)
		}
		found = true
		prereqs = append(prereqs, splitWords(line[sep+1:])...)
	}

	if !found {
		return nil, errNoRule
	}
	return prereqs, nil
}

// ruleSeparator returns the index of the colon ending the target list, skipping
// escaped characters and drive letters such as "C:\".
func ruleSeparator(line string) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case ':':
			if i == 1 && i+1 < len(line) && (line[2] == '\\' || line[2] == '/') {
				continue
			}
			return i
		}
	}
	return -1
}

// splitWords splits on unescaped whitespace and unescapes "\ " and "$$".
func splitWords(s string) []string {
	var (
		words []string
		cur   strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '#'):
			cur.WriteByte(s[i+1])
			i++
		case c == '$' && i+1 < len(s) && s[i+1] == '$':
			cur.WriteByte('$')
			i++
		case c == ' ' || c == '\t':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return words
}

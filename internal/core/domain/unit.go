package domain

import "time"

// Verdict is the staleness decision for a translation unit.
type Verdict int

const (
	// VerdictUnknown means the unit has not been evaluated yet.
	VerdictUnknown Verdict = iota
	// VerdictStale means the unit must be recompiled.
	VerdictStale
	// VerdictFresh means the object artifact is up to date.
	VerdictFresh
)

func (v Verdict) String() string {
	switch v {
	case VerdictStale:
		return "stale"
	case VerdictFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// TranslationUnit is one source file compiled into one object file.
// Source is its identity within a plan.
type TranslationUnit struct {
	Source       string
	Object       string
	ModTime      time.Time
	Dependencies []string
	Verdict      Verdict
	Reason       string
	// Entry marks units reached directly from the entry pattern.
	Entry bool
}

// IsStale reports whether the unit was evaluated as stale.
func (u *TranslationUnit) IsStale() bool {
	return u.Verdict == VerdictStale
}

// HeaderDependency is a header discovered for one or more translation units.
type HeaderDependency struct {
	Path       string
	ModTime    time.Time
	DeclaredBy []string
}

// IsNewer reports whether a is strictly newer than b.
// Equal timestamps are never newer, so an artifact written in the same tick as its
// input counts as fresh.
func IsNewer(a, b time.Time) bool {
	return a.After(b)
}

// Package engine wraps the underlying regular-expression primitives behind a
// uniform exec-at-offset contract. Two engines are provided: a backtracking
// one (dlclark/regexp2) for the Python-, Java- and C#-like dialect families,
// and a linear-time one (coregx/coregex) for the Go- and Rust-like families.
// The façade layer above never talks to a primitive directly, so a future
// engine can be substituted by supplying another Compiler.
package engine

// Match is one match of a pattern against an input. Offsets are rune
// offsets into the input; End is Start plus the length of the full match.
type Match struct {
	// Text is the full matched substring.
	Text  string
	Start int
	End   int
	// Groups holds the declared capture groups in pattern order, group 0
	// excluded. A group that did not participate in this match has
	// Present false and offsets -1.
	Groups []Group
	// Names maps a group name to its index in Groups. Nil when the
	// pattern declares no named groups.
	Names map[string]int
}

// Group is a single capture group within a Match.
type Group struct {
	Text    string
	Start   int
	End     int
	Present bool
}

// Engine is the underlying matching capability consumed by the façade.
// Implementations hold no cursor state: every call is independent, so one
// Engine is safe to share across concurrent callers.
type Engine interface {
	// Match reports whether the pattern matches anywhere in input.
	Match(input string) bool
	// ExecAt returns the leftmost match starting at or after the rune
	// offset pos, or nil when there is none. A pos past the end of input
	// always yields nil.
	ExecAt(input string, pos int) *Match
	// Source returns the pattern text the engine was compiled from.
	Source() string
	// GroupNames returns the declared group names indexed by group
	// number in the SubexpNames convention: index 0 is "", unnamed
	// groups are "". Nil when introspection is unavailable.
	GroupNames() []string
}

// Compiler compiles a canonical pattern together with canonical flag
// characters into an Engine. The error, if any, is the primitive's own
// diagnostic, unmodified.
type Compiler func(pattern, flags string) (Engine, error)

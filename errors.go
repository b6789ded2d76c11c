package urh

import "fmt"

// PatternError reports a surface pattern whose canonical form the
// underlying engine rejected as syntactically invalid. It is raised at
// compile time only; a pattern that compiled never fails at match time.
// Message carries the engine's diagnostic verbatim.
type PatternError struct {
	Pattern string // the surface pattern as passed to Compile
	Message string // the engine diagnostic, unmodified
	err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Message)
}

// Unwrap returns the underlying engine error.
func (e *PatternError) Unwrap() error { return e.err }

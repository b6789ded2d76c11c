package urh

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/tyrog07/universal-regex-handler/engine"
	"github.com/tyrog07/universal-regex-handler/syntax"
)

// Regexp is a compiled dialect pattern: the original surface pattern, the
// canonical engine-ready pattern, the resolved flag set and the compiled
// engine handle. A Regexp is immutable once constructed and safe for
// concurrent use; no cursor state is retained between calls.
type Regexp struct {
	dialect   *Dialect
	pattern   string // surface pattern, as passed to Compile
	canonical string // post-framing, post-directive, engine-ready
	flags     syntax.Flags
	eng       engine.Engine
	names     []string // SubexpNames convention; engine-native, text-scan fallback
}

// String returns the surface pattern used to compile the Regexp.
func (re *Regexp) String() string { return re.pattern }

// Pattern returns the surface pattern used to compile the Regexp.
func (re *Regexp) Pattern() string { return re.pattern }

// Canonical returns the canonical pattern handed to the underlying engine,
// after framing, inline-directive stripping and group-syntax normalization.
func (re *Regexp) Canonical() string { return re.canonical }

// Flags returns the resolved flag characters, in first-enablement order.
// Advisory flags (u, y) appear here even though they do not affect matching.
func (re *Regexp) Flags() string { return re.flags.String() }

// Dialect returns the dialect descriptor the Regexp was compiled for.
func (re *Regexp) Dialect() *Dialect { return re.dialect }

// GroupNames returns the declared capture-group names indexed by group
// number, index 0 unused and "" for unnamed groups.
func (re *Regexp) GroupNames() []string {
	out := make([]string, len(re.names))
	copy(out, re.names)
	return out
}

// WithFlags returns a new Regexp sharing this pattern's canonical text with
// the given flag characters added and then removed. The receiver is never
// modified. Newly adding x strips verbose whitespace and comments from the
// canonical pattern; removing x cannot restore text that was stripped at
// compile time. Recompilation failure is unexpected for a pattern that
// already compiled and is returned wrapped rather than as a *PatternError.
func (re *Regexp) WithFlags(add, remove string) (*Regexp, error) {
	fs := re.flags
	for i := 0; i < len(add); i++ {
		fs = fs.Add(add[i])
	}
	for i := 0; i < len(remove); i++ {
		fs = fs.Remove(remove[i])
	}
	canonical := re.canonical
	if re.dialect.Verbose && fs.Has(syntax.FlagVerbose) && !re.flags.Has(syntax.FlagVerbose) {
		canonical = syntax.StripVerbose(canonical)
	}
	eng, err := re.dialect.compile(canonical, fs.String())
	if err != nil {
		return nil, errors.Wrapf(err, "recompile %q with flags %q", canonical, fs)
	}
	return &Regexp{
		dialect:   re.dialect,
		pattern:   re.pattern,
		canonical: canonical,
		flags:     fs,
		eng:       eng,
		names:     re.names,
	}, nil
}

// TestFull reports whether the pattern matches the entirety of input. The
// canonical pattern is anchored at both ends for this call only; the stored
// pattern is untouched.
func (re *Regexp) TestFull(input string) bool {
	eng, err := re.dialect.compile(`\A(?:`+re.canonical+`)\z`, re.flags.String())
	if err != nil {
		// anchoring a pattern that compiled cannot fail
		return false
	}
	m := eng.ExecAt(input, 0)
	return m != nil && m.Start == 0 && m.End == utf8.RuneCountInString(input)
}

/*
Package urh is a single matching/search/replace surface that emulates the
observable regex semantics of several language dialects: a Python-like
backtracking family, a Go-like linear-time family, a Java-like family built
around inline flag scoping, a Rust-like capture/iterator-oriented family and
a C#-like family with verbatim pattern strings.

The hard part is not the match API but the normalization in front of it:
dialect surface syntax (raw-string framing, inline flag directives, named
capture forms, verbose mode) is parsed into one canonical pattern plus one
canonical flag set, which is then compiled on an underlying engine:
dlclark/regexp2 for the backtracking dialects, coregx/coregex for the
linear-time ones.

Flags are single characters: i (case-insensitive), g (global/iterate),
m (multiline anchors), s (dot matches newline), u (unicode), x (verbose),
y (sticky). Matching always runs in full-Unicode-codepoint mode; u is
recorded for introspection only, and so is y. The g flag is likewise never
required: iteration operations force a global cursor themselves without
touching the compiled pattern's flags.
*/
package urh

import (
	"strconv"

	"github.com/op/go-logging"

	"github.com/tyrog07/universal-regex-handler/engine"
	"github.com/tyrog07/universal-regex-handler/syntax"
)

var log = logging.MustGetLogger("urh")

// ZeroSplit selects what a split limit of exactly zero means for a dialect.
type ZeroSplit int

const (
	// ZeroSplitUnlimited treats a zero limit as "no cap" (Python-like).
	ZeroSplitUnlimited ZeroSplit = iota
	// ZeroSplitEmpty treats a zero limit as "produce no pieces" (Go-like).
	ZeroSplitEmpty
	// ZeroSplitWholeInput treats a zero limit as "no splitting performed;
	// the input is the only piece" (Java-like).
	ZeroSplitWholeInput
)

// ReplStyle selects the backreference syntax recognized inside literal
// replacement text.
type ReplStyle int

const (
	// ReplDollar recognizes $1, $name, ${name} and $$.
	ReplDollar ReplStyle = iota
	// ReplBackslash recognizes \1, \g<name>, \g<1> and \\.
	ReplBackslash
)

// Dialect describes one emulated language's regex surface syntax and
// semantic conventions. The five built-in dialects share a single
// normalization pipeline and differ only in descriptor data plus the engine
// family they compile on.
type Dialect struct {
	// Name identifies the dialect in diagnostics.
	Name string
	// Framing holds the raw/verbatim string markers the preprocessor
	// recognizes for this dialect.
	Framing syntax.Framing
	// InlineFlags is the set of flag characters recognized inside
	// (?...) directives.
	InlineFlags string
	// GroupStyle is the named-capture syntax the dialect's engine
	// expects; surface patterns are normalized into it.
	GroupStyle syntax.GroupStyle
	// Backrefs is false for the non-backtracking family. Compiling a
	// pattern that contains backreference syntax then logs an advisory
	// warning; it never blocks compilation.
	Backrefs bool
	// Verbose reports whether the dialect honors the x flag.
	Verbose bool
	// ZeroSplit is the dialect's sentinel for a split limit of zero.
	ZeroSplit ZeroSplit
	// Repl is the replacement-template backreference style.
	Repl ReplStyle

	compile engine.Compiler
}

// The built-in dialects. Each is a value of the shared pipeline, not an
// independent implementation.
var (
	Python = &Dialect{
		Name:        "python",
		Framing:     syntax.Framing{RawPrefix: 'r', RawQuotes: `"'`},
		InlineFlags: "imsux",
		GroupStyle:  syntax.GroupStyleAngle,
		Backrefs:    true,
		Verbose:     true,
		ZeroSplit:   ZeroSplitUnlimited,
		Repl:        ReplBackslash,
		compile:     engine.NewBacktrack,
	}

	Golang = &Dialect{
		Name:        "go",
		InlineFlags: "ims",
		GroupStyle:  syntax.GroupStyleP,
		ZeroSplit:   ZeroSplitEmpty,
		Repl:        ReplDollar,
		compile:     engine.NewLinear,
	}

	Java = &Dialect{
		Name:        "java",
		InlineFlags: "imsux",
		GroupStyle:  syntax.GroupStyleAngle,
		Backrefs:    true,
		Verbose:     true,
		ZeroSplit:   ZeroSplitWholeInput,
		Repl:        ReplDollar,
		compile:     engine.NewBacktrack,
	}

	Rust = &Dialect{
		Name:        "rust",
		Framing:     syntax.Framing{RawPrefix: 'r', RawQuotes: `"`},
		InlineFlags: "imsux",
		GroupStyle:  syntax.GroupStyleP,
		Verbose:     true,
		ZeroSplit:   ZeroSplitEmpty,
		Repl:        ReplDollar,
		compile:     engine.NewLinear,
	}

	CSharp = &Dialect{
		Name:        "csharp",
		Framing:     syntax.Framing{Verbatim: '@', RawQuotes: `"`},
		InlineFlags: "imsx",
		GroupStyle:  syntax.GroupStyleAngle,
		Backrefs:    true,
		Verbose:     true,
		ZeroSplit:   ZeroSplitEmpty,
		Repl:        ReplDollar,
		compile:     engine.NewBacktrack,
	}
)

// Compile parses a dialect surface pattern and returns, if successful, a
// Regexp ready for matching. flags is a string of single-character flags
// and may be empty; unrecognized characters are recorded but ignored.
// The only error is a *PatternError, raised when the underlying engine
// rejects the canonical pattern.
func Compile(pattern, flags string, d *Dialect) (*Regexp, error) {
	if d == nil {
		d = Python
	}
	canonical, initial := syntax.Preprocess(pattern, d.Framing)
	canonical, inline := syntax.ResolveInlineFlags(canonical, d.InlineFlags)
	fs := syntax.ParseFlags(flags).Merge(initial).Merge(inline)

	if d.Verbose && fs.Has(syntax.FlagVerbose) {
		canonical = syntax.StripVerbose(canonical)
	}
	if !d.Backrefs && syntax.HasBackreference(canonical) {
		log.Warningf("pattern %q uses backreferences; the %s dialect executes them with engine semantics, not dialect semantics", pattern, d.Name)
	}
	canonical = syntax.NormalizeGroups(canonical, d.GroupStyle)

	eng, err := d.compile(canonical, fs.String())
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Message: err.Error(), err: err}
	}

	names := eng.GroupNames()
	if !hasNamed(names) {
		if scanned := syntax.ScanGroupNames(canonical); hasNamed(scanned) {
			names = scanned
		}
	}

	return &Regexp{
		dialect:   d,
		pattern:   pattern,
		canonical: canonical,
		flags:     fs,
		eng:       eng,
		names:     names,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
// It simplifies safe initialization of global variables holding compiled
// patterns.
func MustCompile(pattern, flags string, d *Dialect) *Regexp {
	re, err := Compile(pattern, flags, d)
	if err != nil {
		panic(`urh: Compile(` + quote(pattern) + `): ` + err.Error())
	}
	return re
}

// CompilePython compiles pattern with Python-dialect semantics.
func CompilePython(pattern, flags string) (*Regexp, error) { return Compile(pattern, flags, Python) }

// CompileGolang compiles pattern with Go/RE2-dialect semantics.
func CompileGolang(pattern, flags string) (*Regexp, error) { return Compile(pattern, flags, Golang) }

// CompileJava compiles pattern with Java-dialect semantics.
func CompileJava(pattern, flags string) (*Regexp, error) { return Compile(pattern, flags, Java) }

// CompileRust compiles pattern with Rust-dialect semantics.
func CompileRust(pattern, flags string) (*Regexp, error) { return Compile(pattern, flags, Rust) }

// CompileCSharp compiles pattern with C#-dialect semantics.
func CompileCSharp(pattern, flags string) (*Regexp, error) { return Compile(pattern, flags, CSharp) }

// Escape prefixes every regex metacharacter in input with a backslash so
// the result matches input literally.
func Escape(input string) string {
	return syntax.Escape(input)
}

// Unescape removes exactly one backslash before each metacharacter; it is
// the exact inverse of Escape.
func Unescape(input string) string {
	return syntax.Unescape(input)
}

func hasNamed(names []string) bool {
	for _, n := range names {
		if n != "" {
			return true
		}
	}
	return false
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

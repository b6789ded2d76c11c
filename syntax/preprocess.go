package syntax

import "strings"

// Framing describes the string-literal framing a dialect recognizes around a
// surface pattern. The zero value recognizes no framing at all.
type Framing struct {
	// RawPrefix introduces a raw form, e.g. 'r' for r"..." and r'...'.
	// Zero means the dialect has no raw form.
	RawPrefix byte
	// RawQuotes lists the accepted framing marker characters for the raw
	// form, typically `"'`.
	RawQuotes string
	// Verbatim introduces a verbatim form, e.g. '@' for @"...". Inside a
	// verbatim pattern a backslash pair \X encodes the literal character X.
	// Zero means the dialect has no verbatim form.
	Verbatim byte
}

// Preprocess strips dialect framing from a raw surface pattern and returns
// the canonical pattern plus any initial flags the framing carried. It never
// fails: a pattern whose framing is unterminated or unrecognized is passed
// through unchanged, and a syntactically invalid canonical pattern is only
// detected when the engine compiles it.
//
// None of the built-in framing forms carry flags today; the flag result is
// reserved for framing forms with a trailing flag block.
func Preprocess(pattern string, f Framing) (string, Flags) {
	if f.Verbatim != 0 && len(pattern) > 0 && pattern[0] == f.Verbatim {
		if body, ok := unquote(pattern[1:], f.RawQuotes); ok {
			return collapseEscapes(body), ""
		}
		return pattern, ""
	}
	if f.RawPrefix != 0 && len(pattern) > 1 && pattern[0] == f.RawPrefix {
		if body, ok := unquote(pattern[1:], f.RawQuotes); ok {
			// raw form: the interior is taken as-is, no escape
			// reinterpretation of any kind
			return body, ""
		}
	}
	return pattern, ""
}

// unquote strips a matching leading/trailing quote pair drawn from quotes.
// ok is false when s is not wrapped in one marker character from the set.
func unquote(s, quotes string) (string, bool) {
	if quotes == "" {
		quotes = `"`
	}
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if strings.IndexByte(quotes, q) < 0 || s[len(s)-1] != q {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// collapseEscapes folds every \X pair back to the literal character X, the
// inverse of how a verbatim string encodes a backslash-adjacent character.
func collapseEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// StripVerbose removes the whitespace and comments an extended/verbose-mode
// pattern carries for readability: every unescaped whitespace character
// outside a character class is dropped, and an unescaped # starts a comment
// running to end of line. This must happen before an engine ever sees the
// pattern, since no engine is handed the verbose flag.
func StripVerbose(pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteByte(c)
			i++
			b.WriteByte(pattern[i])
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == '#':
			for i+1 < len(pattern) && pattern[i+1] != '\n' {
				i++
			}
		case isSpace(c):
			// dropped
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

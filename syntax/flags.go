// Package syntax implements the dialect surface-syntax layer: pattern
// framing, inline flag directives, metacharacter escaping and capture-group
// syntax. Everything here is pure string-to-string work; patterns produced by
// this package are what the underlying engines actually compile.
package syntax

import "strings"

// Canonical flag characters shared by every dialect. A dialect recognizes a
// subset of these; unrecognized characters are carried for introspection but
// never reach an engine.
const (
	FlagIgnoreCase = 'i'
	FlagGlobal     = 'g'
	FlagMultiline  = 'm'
	FlagDotAll     = 's'
	FlagUnicode    = 'u' // advisory: matching is always full-Unicode
	FlagVerbose    = 'x'
	FlagSticky     = 'y' // advisory
)

// Flags is an ordered, duplicate-free set of single-character flags. The
// zero value is the empty set. Flags values are immutable; Add and Remove
// return a new value.
type Flags string

// ParseFlags builds a Flags value from a user-supplied flag string,
// collapsing duplicates while keeping first-occurrence order.
func ParseFlags(s string) Flags {
	var f Flags
	for i := 0; i < len(s); i++ {
		f = f.Add(s[i])
	}
	return f
}

// Has reports whether c is in the set.
func (f Flags) Has(c byte) bool {
	return strings.IndexByte(string(f), c) >= 0
}

// Add returns f with c appended, unless already present.
func (f Flags) Add(c byte) Flags {
	if f.Has(c) {
		return f
	}
	return f + Flags(c)
}

// Remove returns f without c.
func (f Flags) Remove(c byte) Flags {
	i := strings.IndexByte(string(f), c)
	if i < 0 {
		return f
	}
	return f[:i] + f[i+1:]
}

// Merge returns f with every flag of other added, keeping f's order first.
func (f Flags) Merge(other Flags) Flags {
	for i := 0; i < len(other); i++ {
		f = f.Add(other[i])
	}
	return f
}

func (f Flags) String() string { return string(f) }

// ResolveInlineFlags scans pattern for embedded flag directives of the form
// (?flags) or (?flags-flags), strips every directive from the pattern text
// (no-op and empty directives included) and resolves the final flag set.
//
// Directives are processed strictly left to right: a character before the
// dash enables the flag, a character after it disables the flag, and a later
// directive overrides an earlier one for the same flag. Only characters in
// recognized contribute to the result; anything else inside a directive is
// ignored. Result order is the order of first enablement.
//
// Groups that carry content, such as (?:...), (?=...), (?<name>...) and
// (?i:...), are not directives and are left untouched, as is anything
// escaped or inside a character class.
func ResolveInlineFlags(pattern, recognized string) (string, Flags) {
	var b strings.Builder
	b.Grow(len(pattern))

	var order []byte
	state := make(map[byte]bool)
	inClass := false

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			b.WriteString(pattern[i : i+2])
			i += 2
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
			i++
		case c == '[':
			inClass = true
			b.WriteByte(c)
			i++
		case c == '(':
			n, on, off, ok := parseDirective(pattern[i:])
			if !ok {
				b.WriteByte(c)
				i++
				break
			}
			for _, fc := range on {
				if strings.IndexByte(recognized, fc) < 0 {
					continue
				}
				if !contains(order, fc) {
					order = append(order, fc)
				}
				state[fc] = true
			}
			for _, fc := range off {
				if strings.IndexByte(recognized, fc) < 0 {
					continue
				}
				state[fc] = false
			}
			i += n
		default:
			b.WriteByte(c)
			i++
		}
	}

	var f Flags
	for _, c := range order {
		if state[c] {
			f = f.Add(c)
		}
	}
	return b.String(), f
}

// parseDirective matches a pure flag directive at the start of s. It returns
// the directive's byte length and the characters before and after the dash.
// ok is false for anything that is not a closed, content-free directive.
func parseDirective(s string) (n int, on, off []byte, ok bool) {
	if len(s) < 3 || s[0] != '(' || s[1] != '?' {
		return 0, nil, nil, false
	}
	dash := false
	for i := 2; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ')':
			return i + 1, on, off, true
		case c == '-' && !dash:
			dash = true
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			if dash {
				off = append(off, c)
			} else {
				on = append(on, c)
			}
		default:
			return 0, nil, nil, false
		}
	}
	return 0, nil, nil, false
}

func contains(s []byte, c byte) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}

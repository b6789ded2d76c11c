package syntax

import "strings"

// GroupStyle is the named-capture syntax an underlying engine understands.
type GroupStyle int

const (
	// GroupStyleP is the (?P<name>...) declaration form with (?P=name)
	// backreferences, used by the linear-time engine family.
	GroupStyleP GroupStyle = iota
	// GroupStyleAngle is the (?<name>...) declaration form with \k<name>
	// backreferences, used by the backtracking engine family.
	GroupStyleAngle
)

// NormalizeGroups rewrites named-group declarations and named backreferences
// into the style the target engine understands, whichever surface form the
// dialect pattern used. Unnamed groups, lookarounds and character classes
// are untouched.
func NormalizeGroups(pattern string, style GroupStyle) string {
	var b strings.Builder
	b.Grow(len(pattern))
	inClass := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			if pattern[i+1] == 'k' && style == GroupStyleP {
				if name, n := angleName(pattern[i+2:]); n > 0 {
					b.WriteString("(?P=" + name + ")")
					i += 2 + n
					continue
				}
			}
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
		case strings.HasPrefix(pattern[i:], "(?P<"):
			if name, n := closedName(pattern[i+4:], '>'); n > 0 {
				if style == GroupStyleAngle {
					b.WriteString("(?<" + name + ">")
				} else {
					b.WriteString("(?P<" + name + ">")
				}
				i += 4 + n
				continue
			}
			b.WriteByte(c)
			i++
		case strings.HasPrefix(pattern[i:], "(?P="):
			if name, n := closedName(pattern[i+4:], ')'); n > 0 {
				if style == GroupStyleAngle {
					b.WriteString(`\k<` + name + `>`)
				} else {
					b.WriteString("(?P=" + name + ")")
				}
				i += 4 + n
				continue
			}
			b.WriteByte(c)
			i++
		case strings.HasPrefix(pattern[i:], "(?<") && !strings.HasPrefix(pattern[i:], "(?<=") && !strings.HasPrefix(pattern[i:], "(?<!"):
			if name, n := closedName(pattern[i+3:], '>'); n > 0 {
				if style == GroupStyleP {
					b.WriteString("(?P<" + name + ">")
				} else {
					b.WriteString("(?<" + name + ">")
				}
				i += 3 + n
				continue
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// ScanGroupNames derives the declared capture groups from pattern text. The
// result follows the SubexpNames convention: index 0 is always "", one entry
// per capture group in declaration order, "" for an unnamed group. This is
// the fallback for engines without native group introspection; native
// introspection is authoritative when available.
func ScanGroupNames(pattern string) []string {
	names := []string{""}
	inClass := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			i += 2
		case inClass:
			if c == ']' {
				inClass = false
			}
			i++
		case c == '[':
			inClass = true
			i++
		case c == '(':
			rest := pattern[i+1:]
			switch {
			case strings.HasPrefix(rest, "?P<"):
				if name, n := closedName(rest[3:], '>'); n > 0 {
					names = append(names, name)
					i += 4 + n
					continue
				}
				i++
			case strings.HasPrefix(rest, "?<") && !strings.HasPrefix(rest, "?<=") && !strings.HasPrefix(rest, "?<!"):
				if name, n := closedName(rest[2:], '>'); n > 0 {
					names = append(names, name)
					i += 3 + n
					continue
				}
				i++
			case strings.HasPrefix(rest, "?"):
				// non-capturing, lookaround or directive
				i++
			default:
				names = append(names, "")
				i++
			}
		default:
			i++
		}
	}
	return names
}

// HasBackreference reports whether pattern contains backreference syntax:
// an unescaped \1..\9 or \k<name>. Dialects in the non-backtracking family
// surface this as an advisory diagnostic since their reference semantics
// forbid backreferences.
func HasBackreference(pattern string) bool {
	inClass := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			n := pattern[i+1]
			if !inClass && n >= '1' && n <= '9' {
				return true
			}
			if !inClass && n == 'k' {
				if _, ln := angleName(pattern[i+2:]); ln > 0 {
					return true
				}
			}
			i += 2
		case c == '[':
			inClass = true
			i++
		case c == ']':
			inClass = false
			i++
		default:
			i++
		}
	}
	return false
}

// closedName reads a group name terminated by term. n is 0 when no
// well-formed name is present.
func closedName(s string, term byte) (name string, n int) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == term {
			if i == 0 {
				return "", 0
			}
			return s[:i], i + 1
		}
		if !isNameByte(c) {
			return "", 0
		}
	}
	return "", 0
}

// angleName reads an <name> block, returning the name and consumed length.
func angleName(s string) (string, int) {
	if len(s) == 0 || s[0] != '<' {
		return "", 0
	}
	name, n := closedName(s[1:], '>')
	if n == 0 {
		return "", 0
	}
	return name, n + 1
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

package urh

import "strings"

// Three very similar operations appear below: replace with a literal
// template, replace with an evaluator callback, and the count-reporting
// variant. They share one scan-and-copy loop.

// Replace returns input with matches of the pattern replaced by the
// expansion of repl. Backreferences inside repl follow the dialect's
// replacement style: $1/${name} for the dollar family, \1/\g<name> for the
// backslash family.
//
// A count of zero or less replaces every match. A positive count caps the
// number of replacements; matches beyond the cap are copied through
// verbatim. An empty pattern inserts the replacement at every rune boundary,
// both ends included.
func (re *Regexp) Replace(input, repl string, count int) string {
	out, _ := re.ReplaceN(input, repl, count)
	return out
}

// ReplaceN is Replace additionally reporting how many replacements occurred.
func (re *Regexp) ReplaceN(input, repl string, count int) (string, int) {
	return re.replace(input, count, func(b *strings.Builder, m *Match) {
		expand(b, repl, m, re.dialect.Repl)
	})
}

// ReplaceFunc is Replace with an evaluator: fn receives each match in scan
// order and returns the literal replacement text for that one match. No
// backreference expansion is applied to the returned text.
func (re *Regexp) ReplaceFunc(input string, fn func(*Match) string, count int) string {
	out, _ := re.replace(input, count, func(b *strings.Builder, m *Match) {
		b.WriteString(fn(m))
	})
	return out
}

// ReplaceFuncN is ReplaceFunc additionally reporting the replacement count.
func (re *Regexp) ReplaceFuncN(input string, fn func(*Match) string, count int) (string, int) {
	return re.replace(input, count, func(b *strings.Builder, m *Match) {
		b.WriteString(fn(m))
	})
}

// ReplaceOne replaces exactly the first match in scan order, leaving every
// later match untouched.
func (re *Regexp) ReplaceOne(input, repl string) string {
	return re.Replace(input, repl, 1)
}

// ReplaceOneFunc is ReplaceOne with an evaluator; fn is called once, for
// the first match only.
func (re *Regexp) ReplaceOneFunc(input string, fn func(*Match) string) string {
	return re.ReplaceFunc(input, fn, 1)
}

// replace is the shared loop: copy the text between matches, emit each
// replacement, stop at the cap and copy the remainder through.
func (re *Regexp) replace(input string, count int, emit func(*strings.Builder, *Match)) (string, int) {
	if count <= 0 {
		count = -1
	}
	runes := []rune(input)
	var b strings.Builder
	prior, done := 0, 0

	re.scan(input, func(m *Match) bool {
		b.WriteString(string(runes[prior:m.Start]))
		emit(&b, m)
		prior = m.End
		done++
		return count < 0 || done < count
	})

	if done == 0 {
		return input, 0
	}
	b.WriteString(string(runes[prior:]))
	return b.String(), done
}

// expand appends template to b with backreferences substituted from m.
// An out-of-range or non-participating group expands to the empty string.
func expand(b *strings.Builder, template string, m *Match, style ReplStyle) {
	switch style {
	case ReplBackslash:
		expandBackslash(b, template, m)
	default:
		expandDollar(b, template, m)
	}
}

// expandDollar handles $1, $name, ${name} and $$.
func expandDollar(b *strings.Builder, template string, m *Match) {
	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			i++
			continue
		}
		next := template[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			name, n := nameRun(template[i+2:], '}')
			if n == 0 {
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteString(groupByRef(m, name))
			i += 2 + n
		case isRefByte(next):
			j := i + 1
			for j < len(template) && isRefByte(template[j]) {
				j++
			}
			b.WriteString(groupByRef(m, template[i+1:j]))
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
}

// expandBackslash handles \1, \g<name>, \g<1> and \\.
func expandBackslash(b *strings.Builder, template string, m *Match) {
	for i := 0; i < len(template); {
		c := template[i]
		if c != '\\' || i+1 >= len(template) {
			b.WriteByte(c)
			i++
			continue
		}
		next := template[i+1]
		switch {
		case next == '\\':
			b.WriteByte('\\')
			i += 2
		case next >= '0' && next <= '9':
			j := i + 1
			for j < len(template) && j < i+3 && template[j] >= '0' && template[j] <= '9' {
				j++
			}
			b.WriteString(groupByRef(m, template[i+1:j]))
			i = j
		case next == 'g' && i+2 < len(template) && template[i+2] == '<':
			name, n := nameRun(template[i+3:], '>')
			if n == 0 {
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteString(groupByRef(m, name))
			i += 3 + n
		default:
			b.WriteString(template[i : i+2])
			i += 2
		}
	}
}

// groupByRef resolves a replacement reference, numeric or named, against m.
func groupByRef(m *Match, ref string) string {
	if num, ok := atoi(ref); ok {
		if num == 0 {
			return m.Text
		}
		if gi := num - 1; gi < len(m.Groups) && m.Groups[gi].Present {
			return m.Groups[gi].Text
		}
		return ""
	}
	if m.Names != nil {
		if gi, ok := m.Names[ref]; ok && m.Groups[gi].Present {
			return m.Groups[gi].Text
		}
	}
	return ""
}

// nameRun reads a reference terminated by term; n is 0 when absent.
func nameRun(s string, term byte) (name string, n int) {
	for i := 0; i < len(s); i++ {
		if s[i] == term {
			if i == 0 {
				return "", 0
			}
			return s[:i], i + 1
		}
		if !isRefByte(s[i]) {
			return "", 0
		}
	}
	return "", 0
}

func isRefByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

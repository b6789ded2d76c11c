package urh

import (
	"unicode/utf8"

	"github.com/tyrog07/universal-regex-handler/engine"
)

// Match is one match result: the full matched text, the rune-offset span
// and the declared capture groups. See engine.Match.
type Match = engine.Match

// Group is a single capture group within a Match. See engine.Group.
type Group = engine.Group

// Test reports whether the pattern matches anywhere in input.
func (re *Regexp) Test(input string) bool {
	return re.eng.Match(input)
}

// Find returns the leftmost match in input, or nil if there is none.
// Scanning always starts at offset 0; Find keeps no state between calls.
func (re *Regexp) Find(input string) *Match {
	return re.eng.ExecAt(input, 0)
}

// FindAll returns the matched substrings of every match in left-to-right
// scan order. The slice is empty when there is no match.
func (re *Regexp) FindAll(input string) []string {
	var out []string
	re.scan(input, func(m *Match) bool {
		out = append(out, m.Text)
		return true
	})
	return out
}

// FindAllDetailed is FindAll retaining offsets and captures.
func (re *Regexp) FindAllDetailed(input string) []*Match {
	var out []*Match
	re.scan(input, func(m *Match) bool {
		out = append(out, m)
		return true
	})
	return out
}

// FindStartEnd returns the rune-offset span of the leftmost match.
func (re *Regexp) FindStartEnd(input string) (start, end int, ok bool) {
	m := re.Find(input)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// FindAllStartEnd returns the rune-offset spans of every match in scan
// order.
func (re *Regexp) FindAllStartEnd(input string) [][2]int {
	var out [][2]int
	re.scan(input, func(m *Match) bool {
		out = append(out, [2]int{m.Start, m.End})
		return true
	})
	return out
}

// Captures returns the declared capture groups of the leftmost match, in
// pattern order. ok is false when there is no match. A group that did not
// participate has Present false.
func (re *Regexp) Captures(input string) ([]Group, bool) {
	m := re.Find(input)
	if m == nil {
		return nil, false
	}
	return m.Groups, true
}

// NamedCaptures returns the named capture groups of the leftmost match.
// ok is false when the pattern declares no named groups or there is no
// match. Every declared name is present in the result; a name whose group
// did not participate maps to a Group with Present false.
func (re *Regexp) NamedCaptures(input string) (map[string]Group, bool) {
	if !hasNamed(re.names) {
		return nil, false
	}
	m := re.Find(input)
	if m == nil {
		return nil, false
	}
	out := make(map[string]Group)
	for num, name := range re.names {
		if num == 0 || name == "" {
			continue
		}
		if gi := num - 1; gi < len(m.Groups) {
			out[name] = m.Groups[gi]
		} else {
			out[name] = Group{Start: -1, End: -1}
		}
	}
	return out, true
}

// scan walks input left to right, calling fn for every match until fn
// returns false or the input is exhausted. A zero-length match advances the
// cursor by exactly one rune, so the walk always terminates; an empty
// pattern over an input of N runes yields exactly N+1 matches, one per
// boundary.
func (re *Regexp) scan(input string, fn func(*Match) bool) {
	limit := utf8.RuneCountInString(input)
	for pos := 0; pos <= limit; {
		m := re.eng.ExecAt(input, pos)
		if m == nil || !fn(m) {
			return
		}
		if m.End == m.Start {
			pos = m.End + 1
		} else {
			pos = m.End
		}
	}
}

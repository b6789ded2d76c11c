package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// linear adapts coregx/coregex, a linear-time engine with the stdlib regexp
// API. The engine has no compile-time flag parameter and no exec-at-offset
// entry point: flags are delivered as a (?ims) prefix on the pattern, and
// ExecAt walks the engine's non-overlapping match list over the full input,
// so anchors and word boundaries are judged against the real input, never a
// slice. The engine reports byte offsets, which the adapter converts to rune
// offsets.
type linear struct {
	re     *coregex.Regex
	source string
}

// NewLinear compiles pattern on the linear-time engine. Recognized flag
// characters are i, m and s.
func NewLinear(pattern, flags string) (Engine, error) {
	full := pattern
	var prefix string
	for _, c := range []byte{'i', 'm', 's'} {
		if strings.IndexByte(flags, c) >= 0 {
			prefix += string(c)
		}
	}
	if prefix != "" {
		full = "(?" + prefix + ")" + pattern
	}
	re, err := coregex.Compile(full)
	if err != nil {
		return nil, err
	}
	return &linear{re: re, source: pattern}, nil
}

func (e *linear) Match(input string) bool {
	return e.re.MatchString(input)
}

// ExecAt returns the engine's leftmost match at or after the rune offset
// pos. For pos zero this is a single search; for later offsets it selects
// from the engine's own non-overlapping traversal, which keeps ^, \A and \b
// evaluated with full-input context and inherits the engine's rule of
// skipping an empty match flush against the previous one.
func (e *linear) ExecAt(input string, pos int) *Match {
	if pos <= 0 {
		return e.build(input, e.re.FindStringSubmatchIndex(input))
	}
	if pos > utf8.RuneCountInString(input) {
		return nil
	}
	for _, idx := range e.re.FindAllStringSubmatchIndex(input, -1) {
		if utf8.RuneCountInString(input[:idx[0]]) >= pos {
			return e.build(input, idx)
		}
	}
	return nil
}

func (e *linear) build(input string, idx []int) *Match {
	if idx == nil {
		return nil
	}
	conv := func(b int) int {
		return utf8.RuneCountInString(input[:b])
	}
	m := &Match{
		Text:  input[idx[0]:idx[1]],
		Start: conv(idx[0]),
		End:   conv(idx[1]),
	}
	names := e.re.SubexpNames()
	groups := len(idx)/2 - 1
	for gi := 1; gi <= groups; gi++ {
		s, t := idx[2*gi], idx[2*gi+1]
		grp := Group{Start: -1, End: -1}
		if s >= 0 {
			grp = Group{
				Text:    input[s:t],
				Start:   conv(s),
				End:     conv(t),
				Present: true,
			}
		}
		m.Groups = append(m.Groups, grp)
		if gi < len(names) && names[gi] != "" {
			if m.Names == nil {
				m.Names = make(map[string]int)
			}
			m.Names[names[gi]] = gi - 1
		}
	}
	return m
}

func (e *linear) Source() string { return e.source }

func (e *linear) GroupNames() []string { return e.re.SubexpNames() }

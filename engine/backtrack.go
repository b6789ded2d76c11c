package engine

import (
	"github.com/dlclark/regexp2"

	"github.com/tyrog07/universal-regex-handler/syntax"
)

// backtrack adapts dlclark/regexp2, a .NET-compatible backtracking engine.
// It natively works in rune offsets and supports exec-at-offset, so most of
// the adapter is a thin translation layer. The exception is group order:
// the engine numbers unnamed groups before named ones (.NET convention),
// while the contract here is declaration order, so the adapter carries a
// permutation from declaration position to engine group number.
type backtrack struct {
	re *regexp2.Regexp
	// order maps declaration position (0-based, group 0 excluded) to the
	// engine's group number. Nil when the pattern's declared groups could
	// not be reconciled with the engine's, in which case engine order is
	// used as-is.
	order []int
	// names is the declaration-order name table in the SubexpNames
	// convention. Only valid when order is non-nil.
	names []string
}

// NewBacktrack compiles pattern on the backtracking engine. Recognized flag
// characters are i, m and s; everything else in flags has no engine-level
// meaning and is ignored here.
func NewBacktrack(pattern, flags string) (Engine, error) {
	var opts regexp2.RegexOptions
	for i := 0; i < len(flags); i++ {
		switch flags[i] {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		}
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	e := &backtrack{re: re}
	e.order, e.names = declarationOrder(pattern, re)
	return e, nil
}

// declarationOrder builds the declaration-position-to-engine-number
// permutation. Unnamed groups take engine numbers 1..u in declaration order,
// named groups take u+1.. in declaration order, u being the unnamed total.
// A group-count mismatch with the engine (duplicate names, exotic group
// forms) disables the mapping rather than risking a wrong one.
func declarationOrder(pattern string, re *regexp2.Regexp) ([]int, []string) {
	decl := syntax.ScanGroupNames(pattern)
	if len(decl) != len(re.GetGroupNumbers()) {
		return nil, nil
	}
	unnamed := 0
	for _, n := range decl[1:] {
		if n == "" {
			unnamed++
		}
	}
	order := make([]int, len(decl)-1)
	u, named := 0, 0
	for i, n := range decl[1:] {
		if n == "" {
			u++
			order[i] = u
		} else {
			named++
			order[i] = unnamed + named
		}
	}
	return order, decl
}

func (e *backtrack) Match(input string) bool {
	ok, err := e.re.MatchString(input)
	return err == nil && ok
}

func (e *backtrack) ExecAt(input string, pos int) *Match {
	if pos < 0 {
		pos = 0
	}
	m, err := e.re.FindStringMatchStartingAt(input, pos)
	if err != nil || m == nil {
		return nil
	}
	return e.convert(m)
}

func (e *backtrack) Source() string { return e.re.String() }

func (e *backtrack) GroupNames() []string {
	if e.order != nil {
		out := make([]string, len(e.names))
		copy(out, e.names)
		return out
	}
	nums := e.re.GetGroupNumbers()
	out := make([]string, len(nums))
	for i, num := range nums {
		name := e.re.GroupNameFromNumber(num)
		if isNumeric(name) {
			// unnamed groups answer with their own number
			name = ""
		}
		out[i] = name
	}
	return out
}

func (e *backtrack) convert(m *regexp2.Match) *Match {
	out := &Match{
		Text:  m.String(),
		Start: m.Index,
		End:   m.Index + m.Length,
	}
	if e.order != nil {
		for di, num := range e.order {
			out.Groups = append(out.Groups, asGroup(m.GroupByNumber(num)))
			if name := e.names[di+1]; name != "" {
				if out.Names == nil {
					out.Names = make(map[string]int)
				}
				out.Names[name] = di
			}
		}
		return out
	}
	gs := m.Groups()
	for i := 1; i < len(gs); i++ {
		g := gs[i]
		out.Groups = append(out.Groups, asGroup(&g))
		if g.Name != "" && !isNumeric(g.Name) {
			if out.Names == nil {
				out.Names = make(map[string]int)
			}
			out.Names[g.Name] = i - 1
		}
	}
	return out
}

func asGroup(g *regexp2.Group) Group {
	if g == nil || len(g.Captures) == 0 {
		return Group{Start: -1, End: -1}
	}
	return Group{
		Text:    g.String(),
		Start:   g.Index,
		End:     g.Index + g.Length,
		Present: true,
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package urh

// Split slices input around every match of the pattern and returns the
// pieces in left-to-right order.
//
// A negative limit splits on every match. A positive limit performs at most
// limit splits, producing up to limit+1 pieces with the unsplit remainder
// last. A limit of exactly zero is a dialect sentinel: Python-like dialects
// treat it as unlimited, Go-like dialects produce no pieces, and Java-like
// dialects perform no splitting and return the input as the only piece.
// The sentinel is explicit descriptor data, never inferred from the zero.
//
// Zero-length matches split between characters; one that lands on the
// previous cut contributes nothing, so an empty pattern slices input into
// its individual characters rather than interleaving empty pieces.
//
// If the pattern carries capturing groups, each group's text is included in
// the result after the piece it follows, empty when the group did not
// participate.
func (re *Regexp) Split(input string, limit int) []string {
	if limit == 0 {
		switch re.dialect.ZeroSplit {
		case ZeroSplitEmpty:
			return nil
		case ZeroSplitWholeInput:
			return []string{input}
		}
		limit = -1
	}
	if limit < 0 {
		limit = -1
	}

	runes := []rune(input)
	var out []string
	prior := 0
	remaining := limit
	lastStart := -1

	re.scan(input, func(m *Match) bool {
		lastStart = m.Start
		if m.Start == m.End && m.End == prior {
			// zero-length match flush against the previous cut
			return true
		}
		out = append(out, string(runes[prior:m.Start]))
		for _, g := range m.Groups {
			out = append(out, g.Text)
		}
		prior = m.End
		if remaining > 0 {
			remaining--
		}
		return remaining != 0
	})

	if lastStart != len(runes) {
		out = append(out, string(runes[prior:]))
	}
	if out == nil {
		return []string{input}
	}
	return out
}

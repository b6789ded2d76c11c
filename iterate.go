package urh

import "unicode/utf8"

// MatchIterator is a lazy, stateful cursor over the matches of one input.
// The zero-length-match guard bounds it by the input length, so it is
// always finite. It is not restartable: construct a new iterator to re-scan. The
// parent Regexp's flags and pattern are never touched; the iterator forces
// global traversal on its own.
type MatchIterator struct {
	re    *Regexp
	input string
	limit int // rune length of input
	pos   int
	done  bool
}

// Iter returns a lazy iterator over every match in input, in left-to-right
// scan order. Consuming code may stop early without scanning the remainder.
func (re *Regexp) Iter(input string) *MatchIterator {
	return &MatchIterator{
		re:    re,
		input: input,
		limit: utf8.RuneCountInString(input),
	}
}

// Next returns the next match, or nil when the scan is exhausted. Once nil
// is returned the iterator stays exhausted.
func (it *MatchIterator) Next() *Match {
	if it.done || it.pos > it.limit {
		it.done = true
		return nil
	}
	m := it.re.eng.ExecAt(it.input, it.pos)
	if m == nil {
		it.done = true
		return nil
	}
	if m.End == m.Start {
		it.pos = m.End + 1
	} else {
		it.pos = m.End
	}
	return m
}

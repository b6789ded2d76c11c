package syntax

import "strings"

// Metachars is the set of characters Escape prefixes with a backslash and
// Unescape strips one backslash from.
const Metachars = `-/\^$*+?.()|[]{}`

// Escape returns pattern-safe text: every metacharacter in input is prefixed
// with a backslash so the result matches input literally in any dialect.
func Escape(input string) string {
	var b strings.Builder
	b.Grow(len(input) + 4)
	for i := 0; i < len(input); i++ {
		if strings.IndexByte(Metachars, input[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(input[i])
	}
	return b.String()
}

// Unescape removes exactly one backslash before each metacharacter. It is
// the exact inverse of Escape for any input built from plain text and
// metacharacters.
func Unescape(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] == '\\' && i+1 < len(input) && strings.IndexByte(Metachars, input[i+1]) >= 0 {
			i++
		}
		b.WriteByte(input[i])
	}
	return b.String()
}

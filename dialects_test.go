package urh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	urh "github.com/tyrog07/universal-regex-handler"
)

func TestDialects_FindAll(t *testing.T) {
	tests := map[string]struct {
		dialect *urh.Dialect
		expr    string
		flags   string
		data    string
		want    []string
	}{
		"python-raw-named": {
			dialect: urh.Python,
			expr:    `r"(?P<word>[a-z]+)"`,
			data:    "one TWO three",
			want:    []string{"one", "three"},
		},
		"python-inline-ignorecase": {
			dialect: urh.Python,
			expr:    "(?i)abc",
			data:    "ABC abc",
			want:    []string{"ABC", "abc"},
		},
		"python-verbose": {
			dialect: urh.Python,
			expr:    "\\d{3}  # area\n \\d{4}  # line",
			flags:   "x",
			data:    "5551234",
			want:    []string{"5551234"},
		},
		"go-linear-digits": {
			dialect: urh.Golang,
			expr:    `\d+`,
			data:    "a1b22c",
			want:    []string{"1", "22"},
		},
		"go-inline-flag-extraction": {
			dialect: urh.Golang,
			expr:    "(?i)go",
			data:    "GO go Go",
			want:    []string{"GO", "go", "Go"},
		},
		"java-scoped-directives": {
			dialect: urh.Java,
			expr:    "(?i)(?-i)abc",
			data:    "ABC abc",
			want:    []string{"abc"},
		},
		"rust-raw": {
			dialect: urh.Rust,
			expr:    `r"\w+"`,
			data:    "ab cd",
			want:    []string{"ab", "cd"},
		},
		"csharp-verbatim": {
			dialect: urh.CSharp,
			expr:    `@"\\d+"`,
			data:    "x12y3",
			want:    []string{"12", "3"},
		},
		"csharp-flags-argument": {
			dialect: urh.CSharp,
			expr:    "a.c",
			flags:   "s",
			data:    "a\nc",
			want:    []string{"a\nc"},
		},
		"no-match-is-empty": {
			dialect: urh.Python,
			expr:    "zzz",
			data:    "abc",
			want:    nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			re, err := urh.Compile(tc.expr, tc.flags, tc.dialect)
			require.NoError(t, err)
			require.Equal(t, tc.want, re.FindAll(tc.data))
		})
	}
}

func TestDialects_AnchorsUnderIteration(t *testing.T) {
	// start anchors and word boundaries are judged against the whole input
	// at every scan position, on both engine families
	for _, d := range []*urh.Dialect{urh.Python, urh.Golang, urh.Java, urh.Rust, urh.CSharp} {
		re, err := urh.Compile("^a", "", d)
		require.NoError(t, err, d.Name)
		require.Equal(t, []string{"a"}, re.FindAll("aaa"), d.Name)
		require.Equal(t, "Xaa", re.Replace("aaa", "X", 0), d.Name)

		it := re.Iter("aaa")
		require.NotNil(t, it.Next(), d.Name)
		require.Nil(t, it.Next(), d.Name)

		re, err = urh.Compile(`\bab`, "", d)
		require.NoError(t, err, d.Name)
		require.Equal(t, []string{"ab"}, re.FindAll("abab"), d.Name)
	}
}

func TestDialects_SharedPipelineSemantics(t *testing.T) {
	// the same canonical pattern behaves identically across engine families
	for _, d := range []*urh.Dialect{urh.Python, urh.Golang, urh.Java, urh.Rust, urh.CSharp} {
		re, err := urh.Compile(`(?P<a>\d+)\.(?P<b>\d+)`, "", d)
		require.NoError(t, err, d.Name)

		caps, ok := re.NamedCaptures("v1.42")
		require.True(t, ok, d.Name)
		require.Equal(t, "1", caps["a"].Text, d.Name)
		require.Equal(t, "42", caps["b"].Text, d.Name)

		// captured group text is part of split output
		require.Equal(t, []string{"x", "1", "42", "y"}, re.Split("x1.42y", -1), d.Name)
	}
}

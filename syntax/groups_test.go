package syntax

import (
	"slices"
	"testing"
)

func TestScanGroupNames_PStyle(t *testing.T) {
	got := ScanGroupNames(`(?P<year>\d{4})-(?P<month>\d{2})`)
	if want := []string{"", "year", "month"}; !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestScanGroupNames_MixedAndUnnamed(t *testing.T) {
	got := ScanGroupNames(`(a)(?<n>b)(?:c)(?=d)(?<=e)(f)`)
	if want := []string{"", "", "n", ""}; !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestScanGroupNames_SkipsEscapedAndClasses(t *testing.T) {
	got := ScanGroupNames(`\((?P<x>a)[(b)]`)
	if want := []string{"", "x"}; !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestNormalizeGroups_PythonToAngle(t *testing.T) {
	got := NormalizeGroups(`(?P<n>a+)b(?P=n)`, GroupStyleAngle)
	if want := `(?<n>a+)b\k<n>`; want != got {
		t.Errorf("wanted %q got %q", want, got)
	}
}

func TestNormalizeGroups_AngleToPython(t *testing.T) {
	got := NormalizeGroups(`(?<n>a+)b\k<n>`, GroupStyleP)
	if want := `(?P<n>a+)b(?P=n)`; want != got {
		t.Errorf("wanted %q got %q", want, got)
	}
}

func TestNormalizeGroups_LookbehindUntouched(t *testing.T) {
	in := `(?<=a)(?<!b)c`
	for _, style := range []GroupStyle{GroupStyleP, GroupStyleAngle} {
		if got := NormalizeGroups(in, style); got != in {
			t.Errorf("style %v: wanted %q got %q", style, in, got)
		}
	}
}

func TestNormalizeGroups_Idempotent(t *testing.T) {
	in := `(?P<n>a)(?P=n)`
	if got := NormalizeGroups(in, GroupStyleP); got != in {
		t.Errorf("wanted %q got %q", in, got)
	}
}

func TestHasBackreference(t *testing.T) {
	cases := []struct {
		pattern string
		want    bool
	}{
		{`(a)\1`, true},
		{`(?<n>a)\k<n>`, true},
		{`a\\1`, false},
		{`\d+`, false},
		{`[\1]`, false},
		{`no refs at all`, false},
	}
	for _, c := range cases {
		if got := HasBackreference(c.pattern); got != c.want {
			t.Errorf("HasBackreference(%q): wanted %v got %v", c.pattern, c.want, got)
		}
	}
}

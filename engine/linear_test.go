package engine

import (
	"slices"
	"testing"
)

func TestLinear_ExecAtBasic(t *testing.T) {
	e, err := NewLinear(`(?P<y>\d+)-(?P<m>\d+)`, "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	m := e.ExecAt("on 2024-06 x", 0)
	if m == nil {
		t.Fatal("expected a match")
	}
	if want, got := "2024-06", m.Text; want != got {
		t.Errorf("wanted %q got %q", want, got)
	}
	if want, got := 3, m.Start; want != got {
		t.Errorf("start: wanted %v got %v", want, got)
	}
	if want, got := 10, m.End; want != got {
		t.Errorf("end: wanted %v got %v", want, got)
	}
	if want, got := "2024", m.Groups[m.Names["y"]].Text; want != got {
		t.Errorf("y: wanted %q got %q", want, got)
	}
	if want, got := "06", m.Groups[m.Names["m"]].Text; want != got {
		t.Errorf("m: wanted %q got %q", want, got)
	}
}

func TestLinear_ExecAtOffset(t *testing.T) {
	e, err := NewLinear("a", "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	m := e.ExecAt("aXa", 1)
	if m == nil {
		t.Fatal("expected a match")
	}
	if want, got := 2, m.Start; want != got {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestLinear_ExecAtPastEnd(t *testing.T) {
	e, err := NewLinear("a", "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	if m := e.ExecAt("ab", 10); m != nil {
		t.Errorf("wanted nil, got %+v", m)
	}
}

func TestLinear_RuneOffsets(t *testing.T) {
	e, err := NewLinear("b", "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	m := e.ExecAt("日本b", 0)
	if m == nil {
		t.Fatal("expected a match")
	}
	if want, got := 2, m.Start; want != got {
		t.Errorf("start: wanted %v got %v", want, got)
	}
	if want, got := 3, m.End; want != got {
		t.Errorf("end: wanted %v got %v", want, got)
	}
}

func TestLinear_AnchorKeepsInputContext(t *testing.T) {
	e, err := NewLinear("^a", "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	m := e.ExecAt("aaa", 0)
	if m == nil || m.Start != 0 || m.End != 1 {
		t.Fatalf("wanted span 0-1, got %+v", m)
	}
	// the anchor must not re-match at a later cursor position
	if m := e.ExecAt("aaa", 1); m != nil {
		t.Errorf("wanted nil, got span %v-%v", m.Start, m.End)
	}
}

func TestLinear_WordBoundaryKeepsInputContext(t *testing.T) {
	e, err := NewLinear(`\bab`, "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	m := e.ExecAt("abab", 0)
	if m == nil || m.Start != 0 || m.End != 2 {
		t.Fatalf("wanted span 0-2, got %+v", m)
	}
	// no boundary between the two "ab" runs
	if m := e.ExecAt("abab", 2); m != nil {
		t.Errorf("wanted nil, got span %v-%v", m.Start, m.End)
	}
}

func TestLinear_Flags(t *testing.T) {
	e, err := NewLinear("abc", "i")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	if !e.Match("xABCx") {
		t.Error("case-insensitive match expected")
	}
	if want, got := "abc", e.Source(); want != got {
		t.Errorf("source should not carry the flag prefix: wanted %q got %q", want, got)
	}
}

func TestLinear_GroupNames(t *testing.T) {
	e, err := NewLinear(`(?P<y>\d+)-(\d+)`, "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	if want, got := []string{"", "y", ""}, e.GroupNames(); !slices.Equal(want, got) {
		t.Errorf("wanted %v got %v", want, got)
	}
}

func TestLinear_NonParticipatingGroup(t *testing.T) {
	e, err := NewLinear("(a)|(b)", "")
	if err != nil {
		t.Fatalf("unexpected compile err: %v", err)
	}
	m := e.ExecAt("b", 0)
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.Groups[0].Present {
		t.Error("group 1 should not have participated")
	}
	if !m.Groups[1].Present {
		t.Error("group 2 should have participated")
	}
}

func TestLinear_CompileError(t *testing.T) {
	if _, err := NewLinear("(", ""); err == nil {
		t.Error("expected a compile error")
	}
}

package urh

import "testing"

func TestIter_WalksMatchesInOrder(t *testing.T) {
	re := MustCompile(`\d+`, "", Rust)
	it := re.Iter("a1b22c333")

	var texts []string
	var starts []int
	for m := it.Next(); m != nil; m = it.Next() {
		texts = append(texts, m.Text)
		starts = append(starts, m.Start)
	}
	if want := []string{"1", "22", "333"}; len(texts) != 3 || texts[0] != want[0] || texts[1] != want[1] || texts[2] != want[2] {
		t.Errorf("wanted %v got %v", want, texts)
	}
	if starts[0] != 1 || starts[1] != 3 || starts[2] != 6 {
		t.Errorf("unexpected starts: %v", starts)
	}
}

func TestIter_ZeroLengthTerminatesWithBoundaryMatches(t *testing.T) {
	re := MustCompile("", "", Python)
	input := "abcd"
	it := re.Iter(input)

	count := 0
	for m := it.Next(); m != nil; m = it.Next() {
		if m.Start != m.End {
			t.Fatalf("expected zero-length matches, got span %v-%v", m.Start, m.End)
		}
		if want := count; m.Start != want {
			t.Fatalf("boundary %v: wanted start %v got %v", count, want, m.Start)
		}
		count++
		if count > len(input)+1 {
			t.Fatal("iterator failed to terminate")
		}
	}
	if want := len(input) + 1; count != want {
		t.Errorf("wanted %v boundary matches, got %v", want, count)
	}
}

func TestIter_EarlyStop(t *testing.T) {
	re := MustCompile("a", "", Python)
	it := re.Iter("aaaa")
	m := it.Next()
	if m == nil || m.Start != 0 {
		t.Fatalf("unexpected first match: %+v", m)
	}
	// abandoning the iterator here must not affect the parent pattern
	if want, got := 4, len(re.FindAll("aaaa")); want != got {
		t.Errorf("wanted %v matches, got %v", want, got)
	}
}

func TestIter_ExhaustedStaysExhausted(t *testing.T) {
	re := MustCompile("a", "", Python)
	it := re.Iter("a")
	if it.Next() == nil {
		t.Fatal("expected one match")
	}
	for i := 0; i < 3; i++ {
		if it.Next() != nil {
			t.Fatal("exhausted iterator must keep returning nil")
		}
	}
}

func TestIter_FreshIteratorRescans(t *testing.T) {
	re := MustCompile("a", "", Python)
	input := "aba"
	first := re.Iter(input)
	for first.Next() != nil {
	}
	second := re.Iter(input)
	m := second.Next()
	if m == nil || m.Start != 0 {
		t.Errorf("a fresh iterator must start from the beginning, got %+v", m)
	}
}

func TestIter_DoesNotMutateFlags(t *testing.T) {
	re := MustCompile("a", "", Python)
	it := re.Iter("aaa")
	for it.Next() != nil {
	}
	if want, got := "", re.Flags(); want != got {
		t.Errorf("iteration must not force flags onto the pattern: got %q", got)
	}
}

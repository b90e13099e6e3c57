package chartparse

import "testing"

func TestSpanExtend(t *testing.T) {
	s := MakeSpan(2, 4)
	if x := s.Extend(MakeSpan(4, 7)); x != MakeSpan(2, 7) {
		t.Errorf("expected (2…7), have %v", x)
	}
	if x := s.Extend(MakeSpan(0, 1)); x != MakeSpan(0, 4) {
		t.Errorf("expected (0…4), have %v", x)
	}
	if !s.Extend(MakeSpan(3, 4)).Contains(s) || s.Len() != 2 {
		t.Errorf("expected %v to be unchanged by a contained span", s)
	}
}

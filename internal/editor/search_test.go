package editor

import "testing"

func TestSearchMatchesNarrowToQuery(t *testing.T) {
	h := NewHistory(10)
	h.Add("touch foo")
	h.Add("git status")
	h.Add("touch bar")

	s := newSearch(h)
	s.typeRune(h, 'g')
	s.typeRune(h, 'i')
	s.typeRune(h, 't')

	idx := s.current()
	if idx < 0 {
		t.Fatal("current() = -1, want a match")
	}
	v, _ := h.At(idx)
	if v != "git status" {
		t.Errorf("current match = %q, want %q", v, "git status")
	}
}

func TestSearchNextCyclesThroughMatches(t *testing.T) {
	h := NewHistory(10)
	h.Add("touch foo")
	h.Add("touch bar")

	s := newSearch(h)
	s.typeRune(h, 't')
	first := s.current()
	s.next()
	second := s.current()

	if first == second {
		t.Error("next() did not advance to a different match")
	}
	s.next()
	if s.current() != first {
		t.Error("next() did not wrap back to the first match")
	}
}

func TestSearchBackspaceWidensMatches(t *testing.T) {
	h := NewHistory(10)
	h.Add("touch foo")
	h.Add("git status")

	s := newSearch(h)
	s.typeRune(h, 'g')
	s.typeRune(h, 'x')
	if len(s.hits) != 0 {
		t.Fatalf("hits = %v, want no matches for 'gx'", s.hits)
	}
	s.backspace(h)
	if len(s.hits) == 0 {
		t.Error("backspace() did not widen the match set back to the matches for 'g'")
	}
}

package editor

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// historySource adapts a history slice to fuzzy.Source (spec.md §4.E
// "reverse-incremental search"), the same wrapper shape the teacher
// uses for its process list.
type historySource []string

func (h historySource) String(i int) string { return h[i] }
func (h historySource) Len() int             { return len(h) }

// fuzzySource runs fuzzy.FindFrom and returns the matched entry
// indices, most recently added first, so Ctrl-R starts at the newest
// match and each further press moves to an older one. fuzzy decides
// which entries match; its scores do not affect the order.
func fuzzySource(src historySource, query string) []int {
	matches := fuzzy.FindFrom(query, src)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// searchState drives Ctrl-R's reverse-incremental search: a query
// typed so far and a cursor into the ranked match list, so repeated
// Ctrl-R presses cycle to the next older match.
type searchState struct {
	query string
	hits  []int
	pos   int
}

func newSearch(h *History) *searchState {
	return &searchState{hits: h.matchIndices("")}
}

func (s *searchState) typeRune(h *History, r rune) {
	s.query += string(r)
	s.hits = h.matchIndices(s.query)
	s.pos = 0
}

func (s *searchState) backspace(h *History) {
	if len(s.query) == 0 {
		return
	}
	runes := []rune(s.query)
	s.query = string(runes[:len(runes)-1])
	s.hits = h.matchIndices(s.query)
	s.pos = 0
}

// next advances to the next (older) match, wrapping to the newest
// once the oldest match is passed.
func (s *searchState) next() {
	if len(s.hits) == 0 {
		return
	}
	s.pos = (s.pos + 1) % len(s.hits)
}

// current returns the history index the search is presently
// positioned on, or -1 if nothing matches.
func (s *searchState) current() int {
	if len(s.hits) == 0 {
		return -1
	}
	return s.hits[s.pos]
}

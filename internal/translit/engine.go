package translit

import "unicode"

// rule is one entry of a per-language, per-direction lookup table
// (spec.md §4.A step 2): a source grapheme (one or more runes, always
// stored lowercase) and a guard that picks the emitted string from the
// immediate previous source rune (already consumed) and/or the
// immediate next rune (not consumed by this rule — pure lookahead).
type rule struct {
	pattern []rune
	emit    func(prev rune, next rune, hasNext bool) string
}

func lit(pattern string, target string) rule {
	p := []rune(pattern)
	return rule{pattern: p, emit: func(rune, rune, bool) string { return target }}
}

// table is an ordered rule list for one direction (Cyrillic->Latin or
// Latin->Cyrillic) of one language. Rules are tried in order, so
// multi-rune digraphs must be listed before the single-rune rules they
// share a prefix with (maximal munch, spec.md §4.A step 3).
type table []rule

// run is the single left-to-right pass the algorithm describes
// (spec.md §4.A steps 1-5), shared by every language and every
// direction: only the table differs.
func run(text string, t table) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes)+len(runes)/2)

	var prev rune
	for i := 0; i < len(runes); {
		c := runes[i]
		matched := false

		for _, r := range t {
			n := len(r.pattern)
			if i+n > len(runes) {
				continue
			}
			if !matchFold(runes[i:i+n], r.pattern) {
				continue
			}

			var next rune
			hasNext := i+n < len(runes)
			if hasNext {
				next = runes[i+n]
			}

			target := r.emit(prev, next, hasNext)
			out = append(out, applyCase(runes[i:i+n], target)...)

			prev = runes[i+n-1]
			i += n
			matched = true
			break
		}

		if !matched {
			// Unknown character (punctuation, digits, whitespace, or a
			// grapheme outside this language's table): pass through
			// unchanged. spec.md §4.A: "Errors: none — the operation is
			// total."
			out = append(out, c)
			prev = c
			i++
		}
	}

	return string(out)
}

// matchFold compares a source slice against a lowercase rule pattern,
// case-insensitively.
func matchFold(src []rune, pattern []rune) bool {
	for i, p := range pattern {
		if unicode.ToLower(src[i]) != p {
			return false
		}
	}
	return true
}

// applyCase reapplies the matched source's case to the (lowercase)
// emitted target: uppercase the first rune of the emission when the
// first matched source rune was uppercase, and uppercase the whole
// emission when the match itself was all-uppercase and more than one
// rune — matching spec.md §4.A step 5 ("uppercase the first letter and
// lowercase the remainder when the emission is a digraph").
func applyCase(src []rune, target string) []rune {
	if target == "" {
		return nil
	}
	if !unicode.IsUpper(src[0]) {
		return []rune(target)
	}

	allUpper := len(src) > 1
	for _, r := range src {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			allUpper = false
			break
		}
	}

	out := []rune(target)
	if allUpper {
		for i, r := range out {
			out[i] = unicode.ToUpper(r)
		}
		return out
	}
	out[0] = unicode.ToUpper(out[0])
	for i := 1; i < len(out); i++ {
		out[i] = unicode.ToLower(out[i])
	}
	return out
}

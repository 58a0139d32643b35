package runtime

import "strings"

// resolveAlias replaces line's first whitespace-delimited token with
// its configured replacement, if any (spec.md §4.F: "prefix-word
// replacement from configured alias map", applied to the already-
// translated Latin line — see DESIGN.md Open Question 8).
func resolveAlias(aliases map[string]string, line string) string {
	if len(aliases) == 0 {
		return line
	}

	trimmed := strings.TrimLeft(line, " \t")
	leading := line[:len(line)-len(trimmed)]

	end := strings.IndexAny(trimmed, " \t")
	var head, rest string
	if end < 0 {
		head, rest = trimmed, ""
	} else {
		head, rest = trimmed[:end], trimmed[end:]
	}

	if replacement, ok := aliases[head]; ok {
		head = replacement
	}

	return leading + head + rest
}

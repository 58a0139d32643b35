// Package ioproc implements Pyc's two input-translation modes layered
// on top of internal/translit (spec.md §4.B): raw terminal text, which
// must skip over ANSI CSI sequences untouched, and shell expressions,
// which must leave double-quoted regions untouched.
package ioproc

import "github.com/nick/pyc/internal/translit"

// Processor wraps a single language's Translator with the two
// higher-level scanning modes the runtime and editor need.
type Processor struct {
	tr translit.Translator
}

// New returns a Processor bound to the given language.
func New(lang translit.Language) *Processor {
	return &Processor{tr: translit.For(lang)}
}

// TextToLatin translates terminal output into Latin, copying any ANSI
// CSI escape sequence through verbatim so shell coloring survives.
func (p *Processor) TextToLatin(text string) string {
	return p.textThroughCSI(text, p.tr.ToLatin)
}

// TextToSource is TextToLatin's inverse: translate non-CSI bytes back
// into the user's alphabet.
func (p *Processor) TextToSource(text string) string {
	return p.textThroughCSI(text, p.tr.ToSource)
}

// textThroughCSI walks text rune by rune, recognizing ANSI CSI
// sequences (ESC `[` through a terminator in the 0x40-0x7E range,
// spec.md §4.B) and passing them through unchanged; every other
// maximal non-CSI run is handed to translate as one unit so the
// translator's context rules (spec.md §4.A) see real neighbors.
func (p *Processor) textThroughCSI(text string, translate func(string) string) string {
	runes := []rune(text)
	var out []rune
	var plain []rune

	flush := func() {
		if len(plain) > 0 {
			out = append(out, []rune(translate(string(plain)))...)
			plain = plain[:0]
		}
	}

	for i := 0; i < len(runes); {
		if runes[i] == 0x1B && i+1 < len(runes) && runes[i+1] == '[' {
			flush()
			j := i + 2
			for j < len(runes) && !isCSITerminator(runes[j]) {
				j++
			}
			if j < len(runes) {
				j++ // include the terminator itself
			}
			out = append(out, runes[i:j]...)
			i = j
			continue
		}
		plain = append(plain, runes[i])
		i++
	}
	flush()

	return string(out)
}

func isCSITerminator(r rune) bool {
	return r >= 0x40 && r <= 0x7E
}

// ExpressionToLatin scans text for double-quote boundaries and
// translates only the unquoted regions; quoted regions (file names,
// literal strings) pass through unchanged. An unescaped `"` toggles
// quoting state; a trailing unbalanced quote is tolerated as if closed
// at end-of-input.
func (p *Processor) ExpressionToLatin(text string) string {
	return p.expressionThroughQuotes(text, p.tr.ToLatin)
}

// ExpressionToSource is the inverse of ExpressionToLatin: the direct
// analog applying toSource to each unquoted region.
func (p *Processor) ExpressionToSource(text string) string {
	return p.expressionThroughQuotes(text, p.tr.ToSource)
}

func (p *Processor) expressionThroughQuotes(text string, translate func(string) string) string {
	runes := []rune(text)
	var out []rune
	var seg []rune
	quoted := false

	flush := func() {
		if len(seg) == 0 {
			return
		}
		if quoted {
			out = append(out, seg...)
		} else {
			out = append(out, []rune(translate(string(seg)))...)
		}
		seg = seg[:0]
	}

	for i := 0; i < len(runes); i++ {
		if runes[i] == '"' && !escaped(runes, i) {
			flush()
			out = append(out, '"')
			quoted = !quoted
			continue
		}
		seg = append(seg, runes[i])
	}
	flush()

	return string(out)
}

// escaped reports whether the rune at i is preceded by an odd number
// of backslashes, i.e. whether it is itself escaped.
func escaped(runes []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && runes[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// Package translit implements Pyc's per-language transliteration engine
// (spec.md §4.A): a deterministic, total, letter-by-letter mapping
// between a Cyrillic alphabet and Latin, and back.
package translit

import "fmt"

// Language is the enumerated tag selecting a Translator. It carries the
// short, user-facing label the prompt renderer's LANG key expands to.
type Language int

const (
	Russian Language = iota
	Belarusian
	Bulgarian
	Ukrainian
	Serbian
)

// Label returns the short label the prompt's LANG key renders, e.g. "рус".
func (l Language) Label() string {
	switch l {
	case Russian:
		return "рус"
	case Belarusian:
		return "бел"
	case Bulgarian:
		return "бг"
	case Ukrainian:
		return "укр"
	case Serbian:
		return "срп"
	default:
		return "?"
	}
}

func (l Language) String() string {
	switch l {
	case Russian:
		return "russian"
	case Belarusian:
		return "belarusian"
	case Bulgarian:
		return "bulgarian"
	case Ukrainian:
		return "ukrainian"
	case Serbian:
		return "serbian"
	default:
		return "unknown"
	}
}

// aliases maps every recognized `language:` config value (spec.md §6) to
// its Language tag.
var aliases = map[string]Language{
	"ru":  Russian,
	"рус": Russian,
	"by":  Belarusian,
	"бел": Belarusian,
	"bg":  Bulgarian,
	"бг":  Bulgarian,
	"блг": Bulgarian,
	"uk":  Ukrainian,
	"укр": Ukrainian,
	"rs":  Serbian,
	"срп": Serbian,
}

// ParseLanguage resolves a config `language:` value to a Language tag.
func ParseLanguage(s string) (Language, error) {
	if lang, ok := aliases[s]; ok {
		return lang, nil
	}
	return 0, fmt.Errorf("unknown language %q", s)
}

// Translator offers two pure, total operations over an alphabet pair.
// Both are deterministic and stateless: repeated calls with the same
// input always produce the same output, and neither operation ever
// fails (spec.md §3, §4.A: "Errors: none — the operation is total").
type Translator interface {
	// ToLatin transliterates text written in the translator's source
	// (Cyrillic) alphabet into Latin.
	ToLatin(text string) string
	// ToSource transliterates Latin text back into the translator's
	// source alphabet. Documented as best-effort outside the round-trip
	// subset (spec.md §3 invariants).
	ToSource(text string) string
}

// For resolves the Translator for a given Language tag.
func For(lang Language) Translator {
	switch lang {
	case Russian:
		return russianTranslator
	case Belarusian:
		return belarusianTranslator
	case Bulgarian:
		return bulgarianTranslator
	case Ukrainian:
		return ukrainianTranslator
	case Serbian:
		return serbianTranslator
	default:
		return russianTranslator
	}
}

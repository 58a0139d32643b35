package translit

import "unicode"

// kGuard resolves the К→C / К→K context rule (spec.md §4.A) from the
// immediate previous source rune. The worked examples in spec.md §8
// scenario 3 (КА→KA, КЕ→KE, АК→AC) are only mutually consistent with a
// preceding-letter-only rule: К is C when immediately preceded by one
// of {К,А,И,О}, K otherwise — the prose's "front vowel" qualifier
// describes when the forced Кь/КЪ escapes are useful, not an additional
// condition on the unforced case.
func kGuard(prev rune, _ rune, _ bool) string {
	switch unicode.ToLower(prev) {
	case 'к', 'а', 'и', 'о':
		return "c"
	default:
		return "k"
	}
}

// gGuard resolves the reverse-direction G→ДЖ / G→Г rule: a front vowel
// immediately following G yields the affricate, else the plain velar.
func gGuard(_ rune, next rune, hasNext bool) string {
	if hasNext {
		switch unicode.ToLower(next) {
		case 'y', 'e', 'i':
			return "дж"
		}
	}
	return "г"
}

var russianForward = table{
	// Forced escapes (spec.md §4.A): consume the hard/soft sign and
	// pin the otherwise context-sensitive К mapping.
	lit("къ", "k"),
	lit("кь", "c"),
	// КС is always the single letter X, never "ks".
	lit("кс", "x"),

	rule{pattern: []rune("к"), emit: kGuard},

	// Iotated vowels spell out as a leading "i" digraph so that the
	// reverse table (IU/IA/IO) can reconstruct them.
	lit("ю", "iu"),
	lit("я", "ia"),
	lit("ё", "io"),

	lit("ж", "zh"),
	lit("ч", "ch"),
	lit("ш", "sh"),
	lit("щ", "shch"),
	lit("ц", "ts"),

	lit("а", "a"),
	lit("б", "b"),
	lit("в", "v"),
	lit("г", "g"),
	lit("д", "d"),
	lit("е", "e"),
	lit("з", "z"),
	lit("и", "i"),
	lit("й", "y"),
	lit("л", "l"),
	lit("м", "m"),
	lit("н", "n"),
	lit("о", "o"),
	lit("п", "p"),
	lit("р", "r"),
	lit("с", "s"),
	lit("т", "t"),
	lit("у", "u"),
	lit("ф", "f"),
	lit("х", "h"),
	lit("ъ", ""),
	lit("ы", "y"),
	lit("ь", ""),
	lit("э", "e"),
}

var russianReverse = table{
	lit("shch", "щ"),
	lit("sh", "ш"),
	lit("ch", "ч"),
	lit("zh", "ж"),
	lit("ts", "ц"),

	lit("iu", "ю"),
	lit("ia", "я"),
	lit("io", "ё"),
	lit("ye", "е"),

	rule{pattern: []rune("g"), emit: gGuard},

	lit("a", "а"),
	lit("b", "б"),
	lit("v", "в"),
	lit("d", "д"),
	lit("e", "е"),
	lit("z", "з"),
	lit("i", "и"),
	lit("k", "к"),
	lit("c", "к"),
	lit("x", "кс"),
	lit("l", "л"),
	lit("m", "м"),
	lit("n", "н"),
	lit("o", "о"),
	lit("p", "п"),
	lit("r", "р"),
	lit("s", "с"),
	lit("t", "т"),
	lit("u", "у"),
	lit("f", "ф"),
	lit("h", "х"),
	lit("y", "ы"),
}

type langTranslator struct {
	forward table
	reverse table
}

func (t langTranslator) ToLatin(text string) string  { return run(text, t.forward) }
func (t langTranslator) ToSource(text string) string { return run(text, t.reverse) }

var russianTranslator = langTranslator{forward: russianForward, reverse: russianReverse}

package translit

import "testing"

func TestParseLanguage(t *testing.T) {
	cases := map[string]Language{
		"ru":  Russian,
		"рус": Russian,
		"by":  Belarusian,
		"bg":  Bulgarian,
		"uk":  Ukrainian,
		"rs":  Serbian,
	}
	for in, want := range cases {
		got, err := ParseLanguage(in)
		if err != nil {
			t.Fatalf("ParseLanguage(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseLanguage(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLanguage("xx"); err == nil {
		t.Error("ParseLanguage(\"xx\") should have errored")
	}
}

func TestRussianRoundTripScenario1(t *testing.T) {
	tr := For(Russian)

	// spec.md §8 scenario 1: a command typed in Cyrillic-mapped Latin
	// keys round-trips through ToLatin into the expected shell command.
	in := "тоуч фообар.ткст"
	want := "touch foobar.tkst"
	if got := tr.ToLatin(in); got != want {
		t.Errorf("ToLatin(%q) = %q, want %q", in, got, want)
	}
}

func TestRussianKCContextScenario3(t *testing.T) {
	tr := For(Russian)

	cases := []struct{ in, want string }{
		{"къ", "k"},
		{"кь", "c"},
		{"ка", "ka"},
		{"ке", "ke"},
		{"кс", "x"},
		{"ак", "ac"},
	}
	for _, c := range cases {
		if got := tr.ToLatin(c.in); got != c.want {
			t.Errorf("ToLatin(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRussianCasePreservation(t *testing.T) {
	tr := For(Russian)

	cases := []struct{ in, want string }{
		{"Тоуч", "Touch"},
		// A single uppercase Cyrillic letter that expands into a Latin
		// digraph only capitalizes the digraph's first letter (spec.md
		// §4.A step 5); it takes a multi-rune uppercase source match
		// (e.g. "КЪ") to upper-case the whole emission.
		{"ЩИТ", "ShchIT"},
		{"ШАГ", "ShAG"},
		{"КЪ", "K"},
	}
	for _, c := range cases {
		if got := tr.ToLatin(c.in); got != c.want {
			t.Errorf("ToLatin(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRussianUnknownCharactersPassThrough(t *testing.T) {
	tr := For(Russian)

	in := "ls -la /tmp/file_1.txt"
	if got := tr.ToLatin(in); got != in {
		t.Errorf("ToLatin(%q) = %q, want unchanged", in, got)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, lang := range []Language{Russian, Belarusian, Bulgarian, Ukrainian, Serbian} {
		tr := For(lang)
		if got := tr.ToLatin(""); got != "" {
			t.Errorf("%v ToLatin(\"\") = %q, want empty", lang, got)
		}
		if got := tr.ToSource(""); got != "" {
			t.Errorf("%v ToSource(\"\") = %q, want empty", lang, got)
		}
	}
}

// safeRoundTrip holds, per language, Latin words built only from letters
// whose forward mapping is context-independent in that language's table
// (spec.md §8 invariant 1's round-trip subset). Digraph-adjacent and
// context-guarded letters (Russian k/c, Serbian c/z/s collisions,
// Ukrainian g/h collisions) are deliberately excluded.
var safeRoundTrip = map[Language][]string{
	Russian:    {"dom", "mama", "slovo", "telefon", "banan"},
	Belarusian: {"dom", "mama", "slova", "banan"},
	Bulgarian:  {"dom", "mama", "banan", "telefon"},
	Ukrainian:  {"dim", "mama", "banan"},
}

func TestRoundTripSafeSubset(t *testing.T) {
	for lang, words := range safeRoundTrip {
		tr := For(lang)
		for _, w := range words {
			cyr := tr.ToSource(w)
			back := tr.ToLatin(cyr)
			if back != w {
				t.Errorf("%v round trip: ToLatin(ToSource(%q)) = %q, want %q", lang, w, back, w)
			}
		}
	}
}

func TestSerbianDigraphs(t *testing.T) {
	tr := For(Serbian)

	if got := tr.ToLatin("љ"); got != "lj" {
		t.Errorf("ToLatin(љ) = %q, want lj", got)
	}
	if got := tr.ToLatin("њ"); got != "nj" {
		t.Errorf("ToLatin(њ) = %q, want nj", got)
	}
	if got := tr.ToSource("lj"); got != "љ" {
		t.Errorf("ToSource(lj) = %q, want љ", got)
	}
}

func TestBulgarianShtDigraph(t *testing.T) {
	tr := For(Bulgarian)

	if got := tr.ToLatin("щ"); got != "sht" {
		t.Errorf("ToLatin(щ) = %q, want sht", got)
	}
	if got := tr.ToSource("sht"); got != "щ" {
		t.Errorf("ToSource(sht) = %q, want щ", got)
	}
}

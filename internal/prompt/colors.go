package prompt

import "github.com/nick/pyc/internal/translit"

// colorKeys maps the prompt template's ${K...} color tokens to the
// lipgloss color codes the teacher's own colorToLipgloss uses for its
// status markers (the standard 16-color ANSI palette indices).
var colorKeys = map[string]string{
	"KYEL": "3",
	"KRED": "1",
	"KBLU": "4",
	"KMAG": "5",
	"KGRN": "2",
	"KWHT": "7",
	"KBLK": "0",
	"KGRY": "8",
}

// flagColors gives, per language, the color sequence its LANG key
// cycles through one rune at a time (spec.md §4.D: "each character
// painted with one of the country flag's colors").
var flagColors = map[translit.Language][]string{
	translit.Russian:    {"7", "4", "1"}, // white, blue, red
	translit.Belarusian: {"1", "2"},      // red, green
	translit.Bulgarian:  {"7", "2", "1"}, // white, green, red
	translit.Ukrainian:  {"4", "3"},      // blue, yellow
	translit.Serbian:    {"1", "4", "7"}, // red, blue, white
}

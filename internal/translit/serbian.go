package translit

// Serbian Cyrillic table. Lj/Nj/Dž are true digraphs on the Latin side
// of the alphabet (Љ/Њ/Џ are single letters in Cyrillic), so they are
// listed as fixed two-rune emissions rather than context-guarded like
// the Russian К/C pair.
var serbianForward = table{
	lit("љ", "lj"),
	lit("њ", "nj"),
	lit("џ", "dz"),

	lit("а", "a"),
	lit("б", "b"),
	lit("в", "v"),
	lit("г", "g"),
	lit("д", "d"),
	lit("ђ", "dj"),
	lit("е", "e"),
	lit("ж", "z"),
	lit("з", "z"),
	lit("и", "i"),
	lit("ј", "j"),
	lit("к", "k"),
	lit("л", "l"),
	lit("м", "m"),
	lit("н", "n"),
	lit("о", "o"),
	lit("п", "p"),
	lit("р", "r"),
	lit("с", "s"),
	lit("т", "t"),
	lit("ћ", "c"),
	lit("у", "u"),
	lit("ф", "f"),
	lit("х", "h"),
	lit("ц", "c"),
	lit("ч", "c"),
	lit("ш", "s"),
}

var serbianReverse = table{
	lit("lj", "љ"),
	lit("nj", "њ"),
	lit("dz", "џ"),
	lit("dj", "ђ"),

	lit("a", "а"),
	lit("b", "б"),
	lit("v", "в"),
	lit("g", "г"),
	lit("d", "д"),
	lit("e", "е"),
	lit("z", "з"),
	lit("i", "и"),
	lit("j", "ј"),
	lit("k", "к"),
	lit("l", "л"),
	lit("m", "м"),
	lit("n", "н"),
	lit("o", "о"),
	lit("p", "п"),
	lit("r", "р"),
	lit("s", "с"),
	lit("t", "т"),
	lit("c", "ц"),
	lit("u", "у"),
	lit("f", "ф"),
	lit("h", "х"),
}

var serbianTranslator = langTranslator{forward: serbianForward, reverse: serbianReverse}

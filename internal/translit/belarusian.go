package translit

// Belarusian ships a smaller, mostly 1:1 table: the base Cyrillic
// cognates it shares with Russian, plus the letters unique to the
// Belarusian alphabet ( і, ў, the apostrophe). Per spec.md's Non-goal,
// linguistic correctness beyond the documented round-trip subset is not
// guaranteed for the non-reference languages.
var belarusianForward = table{
	lit("дж", "dz"),
	lit("дз", "dz"),

	lit("а", "a"),
	lit("б", "b"),
	lit("в", "v"),
	lit("г", "h"),
	lit("д", "d"),
	lit("е", "e"),
	lit("ж", "zh"),
	lit("з", "z"),
	lit("і", "i"),
	lit("й", "y"),
	lit("к", "k"),
	lit("л", "l"),
	lit("м", "m"),
	lit("н", "n"),
	lit("о", "o"),
	lit("п", "p"),
	lit("р", "r"),
	lit("с", "s"),
	lit("т", "t"),
	lit("у", "u"),
	lit("ў", "w"),
	lit("ф", "f"),
	lit("х", "h"),
	lit("ц", "ts"),
	lit("ч", "ch"),
	lit("ш", "sh"),
	lit("ы", "y"),
	lit("ь", ""),
	lit("э", "e"),
	lit("ю", "iu"),
	lit("я", "ia"),
	lit("'", ""),
}

var belarusianReverse = table{
	lit("shch", "шч"),
	lit("sh", "ш"),
	lit("ch", "ч"),
	lit("zh", "ж"),
	lit("ts", "ц"),
	lit("iu", "ю"),
	lit("ia", "я"),

	lit("a", "а"),
	lit("b", "б"),
	lit("v", "в"),
	lit("h", "г"),
	lit("d", "д"),
	lit("e", "е"),
	lit("z", "з"),
	lit("i", "і"),
	lit("k", "к"),
	lit("l", "л"),
	lit("m", "м"),
	lit("n", "н"),
	lit("o", "о"),
	lit("p", "п"),
	lit("r", "р"),
	lit("s", "с"),
	lit("t", "т"),
	lit("u", "у"),
	lit("w", "ў"),
	lit("f", "ф"),
	lit("y", "ы"),
}

var belarusianTranslator = langTranslator{forward: belarusianForward, reverse: belarusianReverse}

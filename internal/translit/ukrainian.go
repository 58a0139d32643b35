package translit

// Ukrainian table: shares most of the Russian cognates but keeps its
// own і/ї/є/ґ letters distinct from и/й/е/г.
var ukrainianForward = table{
	lit("щ", "shch"),
	lit("ю", "iu"),
	lit("я", "ia"),
	lit("є", "ie"),
	lit("ї", "i"),

	lit("а", "a"),
	lit("б", "b"),
	lit("в", "v"),
	lit("г", "h"),
	lit("ґ", "g"),
	lit("д", "d"),
	lit("е", "e"),
	lit("ж", "zh"),
	lit("з", "z"),
	lit("и", "y"),
	lit("і", "i"),
	lit("й", "i"),
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
	lit("ф", "f"),
	lit("х", "kh"),
	lit("ц", "ts"),
	lit("ч", "ch"),
	lit("ш", "sh"),
	lit("ь", ""),
	lit("'", ""),
}

var ukrainianReverse = table{
	lit("shch", "щ"),
	lit("sh", "ш"),
	lit("ch", "ч"),
	lit("zh", "ж"),
	lit("ts", "ц"),
	lit("kh", "х"),
	lit("iu", "ю"),
	lit("ia", "я"),
	lit("ie", "є"),

	lit("a", "а"),
	lit("b", "б"),
	lit("v", "в"),
	lit("h", "г"),
	lit("g", "ґ"),
	lit("d", "д"),
	lit("e", "е"),
	lit("z", "з"),
	lit("y", "и"),
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
	lit("f", "ф"),
}

var ukrainianTranslator = langTranslator{forward: ukrainianForward, reverse: ukrainianReverse}

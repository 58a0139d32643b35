package translit

// Bulgarian table, modeled on the official streamlined romanization
// system (Ch/Sh/Zh/Ts/Sht digraphs, Ъ as the vowel "a" rather than a
// silent hard sign).
var bulgarianForward = table{
	lit("щ", "sht"),
	lit("ю", "iu"),
	lit("я", "ia"),

	lit("а", "a"),
	lit("б", "b"),
	lit("в", "v"),
	lit("г", "g"),
	lit("д", "d"),
	lit("е", "e"),
	lit("ж", "zh"),
	lit("з", "z"),
	lit("и", "i"),
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
	lit("ф", "f"),
	lit("х", "h"),
	lit("ц", "ts"),
	lit("ч", "ch"),
	lit("ш", "sh"),
	lit("ъ", "a"),
	lit("ь", "y"),
}

var bulgarianReverse = table{
	lit("sht", "щ"),
	lit("sh", "ш"),
	lit("ch", "ч"),
	lit("zh", "ж"),
	lit("ts", "ц"),
	lit("iu", "ю"),
	lit("ia", "я"),

	lit("a", "а"),
	lit("b", "б"),
	lit("v", "в"),
	lit("g", "г"),
	lit("d", "д"),
	lit("e", "е"),
	lit("z", "з"),
	lit("i", "и"),
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
	lit("h", "х"),
	lit("y", "й"),
}

var bulgarianTranslator = langTranslator{forward: bulgarianForward, reverse: bulgarianReverse}

package translit

// table lists canonical tokens in the order they are applied. The order is part of
// the output contract: when a variant overlaps a later entry's variant the earlier
// entry wins.
var table = []Entry{
	{Canonical: "0", Variants: []string{"°", "₀", "۰"}},
	{Canonical: "1", Variants: []string{"¹", "₁", "۱"}},
	{Canonical: "2", Variants: []string{"²", "₂", "۲"}},
	{Canonical: "3", Variants: []string{"³", "₃", "۳"}},
	{Canonical: "4", Variants: []string{"⁴", "₄", "۴", "٤"}},
	{Canonical: "5", Variants: []string{"⁵", "₅", "۵", "٥"}},
	{Canonical: "6", Variants: []string{"⁶", "₆", "۶", "٦"}},
	{Canonical: "7", Variants: []string{"⁷", "₇", "۷"}},
	{Canonical: "8", Variants: []string{"⁸", "₈", "۸"}},
	{Canonical: "9", Variants: []string{"⁹", "₉", "۹"}},
	{Canonical: "a", Variants: []string{"à", "á", "ả", "ã", "ạ", "ă", "ắ", "ằ", "ẳ", "ẵ", "ặ", "â", "ấ", "ầ", "ẩ", "ẫ", "ậ", "ā", "ą", "å", "α", "ά", "ἀ", "ἁ", "ἂ", "ἃ", "ἄ", "ἅ", "ἆ", "ἇ", "ᾀ", "ᾁ", "ᾂ", "ᾃ", "ᾄ", "ᾅ", "ᾆ", "ᾇ", "ὰ", "ᾰ", "ᾱ", "ᾲ", "ᾳ", "ᾴ", "ᾶ", "ᾷ", "а", "أ", "အ", "ာ", "ါ", "ǻ", "ǎ", "ª", "ა", "अ", "ا"}},
	{Canonical: "b", Variants: []string{"б", "β", "Ъ", "Ь", "ب", "ဗ", "ბ"}},
	{Canonical: "c", Variants: []string{"ç", "ć", "č", "ĉ", "ċ"}},
	{Canonical: "d", Variants: []string{"ď", "ð", "đ", "ƌ", "ȡ", "ɖ", "ɗ", "ᵭ", "ᶁ", "ᶑ", "д", "δ", "د", "ض", "ဍ", "ဒ", "დ"}},
	{Canonical: "e", Variants: []string{"é", "è", "ẻ", "ẽ", "ẹ", "ê", "ế", "ề", "ể", "ễ", "ệ", "ë", "ē", "ę", "ě", "ĕ", "ė", "ε", "έ", "ἐ", "ἑ", "ἒ", "ἓ", "ἔ", "ἕ", "ὲ", "е", "ё", "э", "є", "ə", "ဧ", "ေ", "ဲ", "ე", "ए", "إ", "ئ"}},
	{Canonical: "f", Variants: []string{"ф", "φ", "ف", "ƒ", "ფ"}},
	{Canonical: "g", Variants: []string{"ĝ", "ğ", "ġ", "ģ", "г", "ґ", "γ", "ဂ", "გ", "گ"}},
	{Canonical: "h", Variants: []string{"ĥ", "ħ", "η", "ή", "ح", "ه", "ဟ", "ှ", "ჰ"}},
	{Canonical: "i", Variants: []string{"í", "ì", "ỉ", "ĩ", "ị", "î", "ï", "ī", "ĭ", "į", "ı", "ι", "ί", "ϊ", "ΐ", "ἰ", "ἱ", "ἲ", "ἳ", "ἴ", "ἵ", "ἶ", "ἷ", "ὶ", "ῐ", "ῑ", "ῒ", "ῖ", "ῗ", "і", "ї", "и", "ဣ", "ိ", "ီ", "ည်", "ǐ", "ი", "इ"}},
	{Canonical: "j", Variants: []string{"ĵ", "ј", "Ј", "ჯ", "ج"}},
	{Canonical: "k", Variants: []string{"ķ", "ĸ", "к", "κ", "Ķ", "ق", "ك", "က", "კ", "ქ", "ک"}},
	{Canonical: "l", Variants: []string{"ł", "ľ", "ĺ", "ļ", "ŀ", "л", "λ", "ل", "လ", "ლ"}},
	{Canonical: "m", Variants: []string{"м", "μ", "م", "မ", "მ"}},
	{Canonical: "n", Variants: []string{"ñ", "ń", "ň", "ņ", "ŉ", "ŋ", "ν", "н", "ن", "န", "ნ"}},
	{Canonical: "o", Variants: []string{"ó", "ò", "ỏ", "õ", "ọ", "ô", "ố", "ồ", "ổ", "ỗ", "ộ", "ơ", "ớ", "ờ", "ở", "ỡ", "ợ", "ø", "ō", "ő", "ŏ", "ο", "ὀ", "ὁ", "ὂ", "ὃ", "ὄ", "ὅ", "ὸ", "ό", "о", "و", "θ", "ǒ", "ǿ", "º", "ო", "ओ"}},
	{Canonical: "p", Variants: []string{"п", "π", "ပ", "პ", "پ"}},
	{Canonical: "q", Variants: []string{"ყ"}},
	{Canonical: "r", Variants: []string{"ŕ", "ř", "ŗ", "р", "ρ", "ر", "რ"}},
	{Canonical: "s", Variants: []string{"ś", "š", "ş", "с", "σ", "ș", "ς", "س", "ص", "စ", "ſ", "ს"}},
	{Canonical: "t", Variants: []string{"ť", "ţ", "т", "τ", "ț", "ت", "ط", "ဋ", "တ", "ŧ", "თ", "ტ"}},
	{Canonical: "u", Variants: []string{"ú", "ù", "ủ", "ũ", "ụ", "ư", "ứ", "ừ", "ử", "ữ", "ự", "û", "ū", "ů", "ű", "ŭ", "ų", "µ", "у", "ဉ", "ု", "ူ", "ǔ", "ǖ", "ǘ", "ǚ", "ǜ", "უ", "उ"}},
	{Canonical: "v", Variants: []string{"в", "ვ", "ϐ"}},
	{Canonical: "w", Variants: []string{"ŵ", "ω", "ώ", "ဝ", "ွ"}},
	{Canonical: "x", Variants: []string{"χ", "ξ"}},
	{Canonical: "y", Variants: []string{"ý", "ỳ", "ỷ", "ỹ", "ỵ", "ÿ", "ŷ", "й", "ы", "υ", "ϋ", "ύ", "ΰ", "ي", "ယ"}},
	{Canonical: "z", Variants: []string{"ź", "ž", "ż", "з", "ζ", "ز", "ဇ", "ზ"}},
	{Canonical: "aa", Variants: []string{"ع", "आ", "آ"}},
	{Canonical: "ae", Variants: []string{"ä", "æ", "ǽ"}},
	{Canonical: "ai", Variants: []string{"ऐ"}},
	{Canonical: "at", Variants: []string{"@"}},
	{Canonical: "ch", Variants: []string{"ч", "ჩ", "ჭ", "چ"}},
	{Canonical: "dj", Variants: []string{"ђ"}},
	{Canonical: "dz", Variants: []string{"џ", "ძ"}},
	{Canonical: "ei", Variants: []string{"ऍ"}},
	{Canonical: "gh", Variants: []string{"غ", "ღ"}},
	{Canonical: "ii", Variants: []string{"ई"}},
	{Canonical: "ij", Variants: []string{"ĳ"}},
	{Canonical: "kh", Variants: []string{"х", "خ", "ხ"}},
	{Canonical: "lj", Variants: []string{"љ"}},
	{Canonical: "nj", Variants: []string{"њ"}},
	{Canonical: "oe", Variants: []string{"ö", "œ", "ؤ"}},
	{Canonical: "oi", Variants: []string{"ऑ"}},
	{Canonical: "oii", Variants: []string{"ऒ"}},
	{Canonical: "ps", Variants: []string{"ψ"}},
	{Canonical: "sh", Variants: []string{"ш", "შ", "ش"}},
	{Canonical: "shch", Variants: []string{"щ"}},
	{Canonical: "ss", Variants: []string{"ß"}},
	{Canonical: "sx", Variants: []string{"ŝ"}},
	{Canonical: "th", Variants: []string{"þ", "ϑ", "ث", "ذ", "ظ"}},
	{Canonical: "ts", Variants: []string{"ц", "ც", "წ"}},
	{Canonical: "ue", Variants: []string{"ü"}},
	{Canonical: "uu", Variants: []string{"ऊ"}},
	{Canonical: "ya", Variants: []string{"я"}},
	{Canonical: "yu", Variants: []string{"ю"}},
	{Canonical: "zh", Variants: []string{"ж", "ჟ", "ژ"}},
	{Canonical: "(c)", Variants: []string{"©"}},
	{Canonical: "A", Variants: []string{"Á", "À", "Ả", "Ã", "Ạ", "Ă", "Ắ", "Ằ", "Ẳ", "Ẵ", "Ặ", "Â", "Ấ", "Ầ", "Ẩ", "Ẫ", "Ậ", "Å", "Ā", "Ą", "Α", "Ά", "Ἀ", "Ἁ", "Ἂ", "Ἃ", "Ἄ", "Ἅ", "Ἆ", "Ἇ", "ᾈ", "ᾉ", "ᾊ", "ᾋ", "ᾌ", "ᾍ", "ᾎ", "ᾏ", "Ᾰ", "Ᾱ", "Ὰ", "ᾼ", "А", "Ǻ", "Ǎ"}},
	{Canonical: "B", Variants: []string{"Б", "Β", "ब"}},
	{Canonical: "C", Variants: []string{"Ç", "Ć", "Č", "Ĉ", "Ċ"}},
	{Canonical: "D", Variants: []string{"Ď", "Ð", "Đ", "Ɖ", "Ɗ", "Ƌ", "ᴅ", "ᴆ", "Д", "Δ"}},
	{Canonical: "E", Variants: []string{"É", "È", "Ẻ", "Ẽ", "Ẹ", "Ê", "Ế", "Ề", "Ể", "Ễ", "Ệ", "Ë", "Ē", "Ę", "Ě", "Ĕ", "Ė", "Ε", "Έ", "Ἐ", "Ἑ", "Ἒ", "Ἓ", "Ἔ", "Ἕ", "Ὲ", "Е", "Ё", "Э", "Є", "Ə"}},
	{Canonical: "F", Variants: []string{"Ф", "Φ"}},
	{Canonical: "G", Variants: []string{"Ğ", "Ġ", "Ģ", "Г", "Ґ", "Γ"}},
	{Canonical: "H", Variants: []string{"Η", "Ή", "Ħ"}},
	{Canonical: "I", Variants: []string{"Í", "Ì", "Ỉ", "Ĩ", "Ị", "Î", "Ï", "Ī", "Ĭ", "Į", "İ", "Ι", "Ί", "Ϊ", "Ἰ", "Ἱ", "Ἳ", "Ἴ", "Ἵ", "Ἶ", "Ἷ", "Ῐ", "Ῑ", "Ὶ", "И", "І", "Ї", "Ǐ", "ϒ"}},
	{Canonical: "K", Variants: []string{"К", "Κ"}},
	{Canonical: "L", Variants: []string{"Ĺ", "Ł", "Л", "Λ", "Ļ", "Ľ", "Ŀ", "ल"}},
	{Canonical: "M", Variants: []string{"М", "Μ"}},
	{Canonical: "N", Variants: []string{"Ń", "Ñ", "Ň", "Ņ", "Ŋ", "Н", "Ν"}},
	{Canonical: "O", Variants: []string{"Ó", "Ò", "Ỏ", "Õ", "Ọ", "Ô", "Ố", "Ồ", "Ổ", "Ỗ", "Ộ", "Ơ", "Ớ", "Ờ", "Ở", "Ỡ", "Ợ", "Ø", "Ō", "Ő", "Ŏ", "Ο", "Ό", "Ὀ", "Ὁ", "Ὂ", "Ὃ", "Ὄ", "Ὅ", "Ὸ", "О", "Θ", "Ө", "Ǒ", "Ǿ"}},
	{Canonical: "P", Variants: []string{"П", "Π"}},
	{Canonical: "R", Variants: []string{"Ř", "Ŕ", "Р", "Ρ", "Ŗ"}},
	{Canonical: "S", Variants: []string{"Ş", "Ŝ", "Ș", "Š", "Ś", "С", "Σ"}},
	{Canonical: "T", Variants: []string{"Ť", "Ţ", "Ŧ", "Ț", "Т", "Τ"}},
	{Canonical: "U", Variants: []string{"Ú", "Ù", "Ủ", "Ũ", "Ụ", "Ư", "Ứ", "Ừ", "Ử", "Ữ", "Ự", "Û", "Ū", "Ů", "Ű", "Ŭ", "Ų", "У", "Ǔ", "Ǖ", "Ǘ", "Ǚ", "Ǜ"}},
	{Canonical: "V", Variants: []string{"В"}},
	{Canonical: "W", Variants: []string{"Ω", "Ώ", "Ŵ"}},
	{Canonical: "X", Variants: []string{"Χ", "Ξ"}},
	{Canonical: "Y", Variants: []string{"Ý", "Ỳ", "Ỷ", "Ỹ", "Ỵ", "Ÿ", "Ῠ", "Ῡ", "Ὺ", "Ύ", "Ы", "Й", "Υ", "Ϋ", "Ŷ"}},
	{Canonical: "Z", Variants: []string{"Ź", "Ž", "Ż", "З", "Ζ"}},
	{Canonical: "AE", Variants: []string{"Ä", "Æ", "Ǽ"}},
	{Canonical: "CH", Variants: []string{"Ч"}},
	{Canonical: "DJ", Variants: []string{"Ђ"}},
	{Canonical: "DZ", Variants: []string{"Џ"}},
	{Canonical: "GX", Variants: []string{"Ĝ"}},
	{Canonical: "HX", Variants: []string{"Ĥ"}},
	{Canonical: "IJ", Variants: []string{"Ĳ"}},
	{Canonical: "JX", Variants: []string{"Ĵ"}},
	{Canonical: "KH", Variants: []string{"Х"}},
	{Canonical: "LJ", Variants: []string{"Љ"}},
	{Canonical: "NJ", Variants: []string{"Њ"}},
	{Canonical: "OE", Variants: []string{"Ö", "Œ"}},
	{Canonical: "PS", Variants: []string{"Ψ"}},
	{Canonical: "SH", Variants: []string{"Ш"}},
	{Canonical: "SHCH", Variants: []string{"Щ"}},
	{Canonical: "SS", Variants: []string{"ẞ"}},
	{Canonical: "TH", Variants: []string{"Þ"}},
	{Canonical: "TS", Variants: []string{"Ц"}},
	{Canonical: "UE", Variants: []string{"Ü"}},
	{Canonical: "YA", Variants: []string{"Я"}},
	{Canonical: "YU", Variants: []string{"Ю"}},
	{Canonical: "ZH", Variants: []string{"Ж"}},
	{Canonical: " ", Variants: []string{"\u00a0", "\u2000", "\u2001", "\u2002", "\u2003", "\u2004", "\u2005", "\u2006", "\u2007", "\u2008", "\u2009", "\u200a", "\u202f", "\u205f", "\u3000"}},
}

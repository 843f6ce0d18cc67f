// Package glyphnames maps PostScript/PDF glyph names to Unicode code
// points, the way the Adobe Glyph List does. Only the shape this
// module needs is specified upstream (see DESIGN.md); the table itself
// is reference data, not design, and is authored directly here.
package glyphnames

import "strconv"

// ToRune resolves a glyph name (as found in a PDF /Differences array
// or in a simple-encoding table) to the Unicode code point it
// represents. It first checks the static table, then falls back to
// the two algorithmic naming conventions the PDF/PostScript world
// uses for glyphs that have no standard name: "uniXXXX" /
// "uXXXX[X[X]]" (hex code point, 4 to 6 digits after the "u") and a bare "gXX"/"cidXX" style name
// resolves to false (glyph-index names carry no Unicode meaning).
func ToRune(name string) (rune, bool) {
	if r, ok := table[name]; ok {
		return r, true
	}
	if len(name) > len("small") && name[len(name)-len("small"):] == "small" {
		base := name[:len(name)-len("small")]
		if r, ok := table[base]; ok {
			return r, true
		}
	}
	if len(name) >= 7 && name[:3] == "uni" {
		if v, err := strconv.ParseUint(name[3:7], 16, 32); err == nil {
			return rune(v), true
		}
	}
	if len(name) >= 5 && name[0] == 'u' {
		hex := name[1:]
		if len(hex) == 4 || len(hex) == 5 || len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return rune(v), true
			}
		}
	}
	return 0, false
}

// table covers the glyph names used by the PDF standard named
// encodings (StandardEncoding, WinAnsiEncoding, MacRomanEncoding,
// MacExpertEncoding, Symbol) plus the common Latin/typographic names a
// /Differences array is likely to use.
var table = map[string]rune{
	"space": ' ', "exclam": '!', "quotedbl": '"', "numbersign": '#',
	"dollar": '$', "percent": '%', "ampersand": '&', "quotesingle": '\'',
	"quoteright": '’', "parenleft": '(', "parenright": ')',
	"asterisk": '*', "plus": '+', "comma": ',', "hyphen": '-',
	"period": '.', "slash": '/',
	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',
	"colon": ':', "semicolon": ';', "less": '<', "equal": '=', "greater": '>',
	"question": '?', "at": '@',
	"A": 'A', "B": 'B', "C": 'C', "D": 'D', "E": 'E', "F": 'F', "G": 'G',
	"H": 'H', "I": 'I', "J": 'J', "K": 'K', "L": 'L', "M": 'M', "N": 'N',
	"O": 'O', "P": 'P', "Q": 'Q', "R": 'R', "S": 'S', "T": 'T', "U": 'U',
	"V": 'V', "W": 'W', "X": 'X', "Y": 'Y', "Z": 'Z',
	"bracketleft": '[', "backslash": '\\', "bracketright": ']',
	"asciicircum": '^', "underscore": '_', "grave": '`', "quoteleft": '‘',
	"a": 'a', "b": 'b', "c": 'c', "d": 'd', "e": 'e', "f": 'f', "g": 'g',
	"h": 'h', "i": 'i', "j": 'j', "k": 'k', "l": 'l', "m": 'm', "n": 'n',
	"o": 'o', "p": 'p', "q": 'q', "r": 'r', "s": 's', "t": 't', "u": 'u',
	"v": 'v', "w": 'w', "x": 'x', "y": 'y', "z": 'z',
	"braceleft": '{', "bar": '|', "braceright": '}', "asciitilde": '~',

	"exclamdown": '¡', "cent": '¢', "sterling": '£',
	"currency": '¤', "yen": '¥', "brokenbar": '¦',
	"section": '§', "dieresis": '¨', "copyright": '©',
	"ordfeminine": 'ª', "guillemotleft": '«', "logicalnot": '¬',
	"registered": '®', "macron": '¯', "degree": '°',
	"plusminus": '±', "acute": '´', "mu": 'µ',
	"paragraph": '¶', "periodcentered": '·', "cedilla": '¸',
	"ordmasculine": 'º', "guillemotright": '»',
	"onequarter": '¼', "onehalf": '½', "threequarters": '¾',
	"questiondown": '¿',
	"Agrave": 'À', "Aacute": 'Á', "Acircumflex": 'Â',
	"Atilde": 'Ã', "Adieresis": 'Ä', "Aring": 'Å',
	"AE": 'Æ', "Ccedilla": 'Ç', "Egrave": 'È',
	"Eacute": 'É', "Ecircumflex": 'Ê', "Edieresis": 'Ë',
	"Igrave": 'Ì', "Iacute": 'Í', "Icircumflex": 'Î',
	"Idieresis": 'Ï', "Eth": 'Ð', "Ntilde": 'Ñ',
	"Ograve": 'Ò', "Oacute": 'Ó', "Ocircumflex": 'Ô',
	"Otilde": 'Õ', "Odieresis": 'Ö', "multiply": '×',
	"Oslash": 'Ø', "Ugrave": 'Ù', "Uacute": 'Ú',
	"Ucircumflex": 'Û', "Udieresis": 'Ü', "Yacute": 'Ý',
	"Thorn": 'Þ', "germandbls": 'ß',
	"agrave": 'à', "aacute": 'á', "acircumflex": 'â',
	"atilde": 'ã', "adieresis": 'ä', "aring": 'å',
	"ae": 'æ', "ccedilla": 'ç', "egrave": 'è',
	"eacute": 'é', "ecircumflex": 'ê', "edieresis": 'ë',
	"igrave": 'ì', "iacute": 'í', "icircumflex": 'î',
	"idieresis": 'ï', "eth": 'ð', "ntilde": 'ñ',
	"ograve": 'ò', "oacute": 'ó', "ocircumflex": 'ô',
	"otilde": 'õ', "odieresis": 'ö', "divide": '÷',
	"oslash": 'ø', "ugrave": 'ù', "uacute": 'ú',
	"ucircumflex": 'û', "udieresis": 'ü', "yacute": 'ý',
	"thorn": 'þ', "ydieresis": 'ÿ',

	"bullet": '•', "endash": '–', "emdash": '—',
	"quotedblleft": '“', "quotedblright": '”',
	"quotesinglbase": '‚', "quotedblbase": '„',
	"dagger": '†', "daggerdbl": '‡', "ellipsis": '…',
	"perthousand": '‰', "trademark": '™', "fi": 'ﬁ',
	"fl": 'ﬂ', "florin": 'ƒ', "circumflex": 'ˆ',
	"tilde": '˜', "Scaron": 'Š', "scaron": 'š',
	"Zcaron": 'Ž', "zcaron": 'ž', "Ydieresis": 'Ÿ',
	"OE": 'Œ', "oe": 'œ', "dotlessi": 'ı',
	"minus": '−', "Euro": '€',

	".notdef": '�',

	"fraction": '⁄', "guilsinglleft": '‹', "guilsinglright": '›',
	"breve": '˘', "dotaccent": '˙', "ring": '˚', "hungarumlaut": '˝',
	"ogonek": '˛', "caron": 'ˇ', "Lslash": 'Ł', "lslash": 'ł',
}

// ReverseTable returns a fresh rune->name map built from the curated
// glyph-name table, for callers (internal/encodings) that need to go
// from a decoded code point back to a PDF glyph name.
func ReverseTable() map[rune]string {
	out := make(map[rune]string, len(table))
	for name, r := range table {
		if _, exists := out[r]; !exists {
			out[r] = name
		}
	}
	return out
}

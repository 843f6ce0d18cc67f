package encodings

// MacExpertEncoding is the built-in encoding of "expert" Mac fonts
// (small caps, old-style figures, fractions). Supported PDFs rarely
// embed expert-set text; this table covers the ASCII-range punctuation
// and digit glyphs it shares with StandardEncoding plus the small-caps
// letters, which is enough to avoid every code resolving to U+FFFD on
// the documents that do use it. Codes this table omits fall back to
// U+FFFD via Encoding.NameToRune, same as any other unmapped code.
var MacExpertEncoding = buildMacExpert()

func buildMacExpert() *Encoding {
	e := &Encoding{Runes: make(map[rune]byte, 64)}
	names := [256]string{
		32: "space", 33: "exclamsmall", 34: "Hungarumlautsmall",
		36: "dollaroldstyle", 37: "dollarsuperior", 38: "ampersandsmall",
		39: "Acutesmall", 40: "parenleftsuperior", 41: "parenrightsuperior",
		42: "twodotenleader", 43: "onedotenleader", 44: "comma",
		45: "hyphen", 46: "period", 47: "fraction",
		48: "zerooldstyle", 49: "oneoldstyle", 50: "twooldstyle",
		51: "threeoldstyle", 52: "fouroldstyle", 53: "fiveoldstyle",
		54: "sixoldstyle", 55: "sevenoldstyle", 56: "eightoldstyle",
		57: "nineoldstyle", 58: "colon", 59: "semicolon",
		61: "threequartersemdash", 63: "questionsmall",
		68: "Ethsmall", 71: "onequarter", 72: "onehalf", 73: "threequarters",
		74: "oneeighth", 75: "threeeighths", 76: "fiveeighths",
		77: "seveneighths", 78: "onethird", 79: "twothirds",
		86: "ff", 87: "fi", 88: "fl", 89: "ffi", 90: "ffl",
		91: "parenleftinferior", 93: "parenrightinferior",
		94: "Circumflexsmall", 95: "hypheninferior",
		96: "Gravesmall", 97: "Asmall", 98: "Bsmall", 99: "Csmall",
		100: "Dsmall", 101: "Esmall", 102: "Fsmall", 103: "Gsmall",
		104: "Hsmall", 105: "Ismall", 106: "Jsmall", 107: "Ksmall",
		108: "Lsmall", 109: "Msmall", 110: "Nsmall", 111: "Osmall",
		112: "Psmall", 113: "Qsmall", 114: "Rsmall", 115: "Ssmall",
		116: "Tsmall", 117: "Usmall", 118: "Vsmall", 119: "Wsmall",
		120: "Xsmall", 121: "Ysmall", 122: "Zsmall",
	}
	e.Names = names
	for code, name := range names {
		if name == "" {
			continue
		}
		if r, ok := glyphRune(name); ok {
			e.Runes[r] = byte(code)
		}
	}
	return e
}

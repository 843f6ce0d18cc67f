package encodings

// SymbolEncoding is the built-in encoding of the standard Symbol font
// (Greek letters and common math glyphs). Covers the codes a PDF
// consumer is actually likely to hit — the full Adobe Symbol table
// also assigns codes to dozens of rarely-used mathematical ornaments,
// which this table omits (unmapped codes resolve to U+FFFD via
// Encoding.NameToRune).
var SymbolEncoding = buildSymbol()

func buildSymbol() *Encoding {
	e := &Encoding{Runes: make(map[rune]byte, 64)}
	direct := map[byte]rune{
		0x20: ' ', 0x21: '!', 0x22: '∀', 0x23: '#', 0x24: '∃', 0x25: '%',
		0x26: '&', 0x27: '∋', 0x28: '(', 0x29: ')', 0x2a: '∗', 0x2b: '+',
		0x2c: ',', 0x2d: '−', 0x2e: '.', 0x2f: '/',
		0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3', 0x34: '4', 0x35: '5',
		0x36: '6', 0x37: '7', 0x38: '8', 0x39: '9',
		0x3a: ':', 0x3b: ';', 0x3c: '<', 0x3d: '=', 0x3e: '>', 0x3f: '?',
		0x40: '≅',
		0x41: 'Α', 0x42: 'Β', 0x43: 'Χ', 0x44: 'Δ', 0x45: 'Ε', 0x46: 'Φ',
		0x47: 'Γ', 0x48: 'Η', 0x49: 'Ι', 0x4a: 'ϑ', 0x4b: 'Κ', 0x4c: 'Λ',
		0x4d: 'Μ', 0x4e: 'Ν', 0x4f: 'Ο', 0x50: 'Π', 0x51: 'Θ', 0x52: 'Ρ',
		0x53: 'Σ', 0x54: 'Τ', 0x55: 'Υ', 0x56: 'ς', 0x57: 'Ω', 0x58: 'Ξ',
		0x59: 'Ψ', 0x5a: 'Ζ',
		0x61: 'α', 0x62: 'β', 0x63: 'χ', 0x64: 'δ', 0x65: 'ε', 0x66: 'φ',
		0x67: 'γ', 0x68: 'η', 0x69: 'ι', 0x6a: 'ϕ', 0x6b: 'κ', 0x6c: 'λ',
		0x6d: 'μ', 0x6e: 'ν', 0x6f: 'ο', 0x70: 'π', 0x71: 'θ', 0x72: 'ρ',
		0x73: 'σ', 0x74: 'τ', 0x75: 'υ', 0x76: 'ϖ', 0x77: 'ω', 0x78: 'ξ',
		0x79: 'ψ', 0x7a: 'ζ',
		0xa3: '≤', 0xb0: '°', 0xb1: '±', 0xb2: '″', 0xb3: '≥', 0xb5: '∝',
		0xb6: '∂', 0xb7: '•', 0xb8: '÷', 0xb9: '≠', 0xba: '≡', 0xbb: '≈',
		0xbc: '…', 0xc5: '∑', 0xd6: '√', 0xd7: '⋅', 0xe5: '∏', 0xec: '∫',
	}
	for code, r := range direct {
		e.Names[code] = nameForSymbolRune(code, r)
		e.Runes[r] = code
	}
	return e
}

// nameForSymbolRune resolves a Symbol-font rune to a PostScript glyph
// name, falling back to an algorithmic name if the rune isn't in the
// curated glyphnames table (many Symbol glyphs have Greek-specific
// PostScript names the general Adobe Glyph List table doesn't carry).
func nameForSymbolRune(code byte, r rune) string {
	if name, ok := glyphReverse[r]; ok {
		return name
	}
	return symbolFallbackNames[code]
}

var symbolFallbackNames = map[byte]string{
	0x41: "Alpha", 0x42: "Beta", 0x43: "Chi", 0x44: "Delta", 0x45: "Epsilon",
	0x46: "Phi", 0x47: "Gamma", 0x48: "Eta", 0x49: "Iota", 0x4a: "theta1",
	0x4b: "Kappa", 0x4c: "Lambda", 0x4d: "Mu", 0x4e: "Nu", 0x4f: "Omicron",
	0x50: "Pi", 0x51: "Theta", 0x52: "Rho", 0x53: "Sigma", 0x54: "Tau",
	0x55: "Upsilon", 0x56: "sigma1", 0x57: "Omega", 0x58: "Xi", 0x59: "Psi",
	0x5a: "Zeta",
	0x61: "alpha", 0x62: "beta", 0x63: "chi", 0x64: "delta", 0x65: "epsilon",
	0x66: "phi", 0x67: "gamma", 0x68: "eta", 0x69: "iota", 0x6a: "phi1",
	0x6b: "kappa", 0x6c: "lambda", 0x6d: "mu", 0x6e: "nu", 0x6f: "omicron",
	0x70: "pi", 0x71: "theta", 0x72: "rho", 0x73: "sigma", 0x74: "tau",
	0x75: "upsilon", 0x76: "omega1", 0x77: "omega", 0x78: "xi", 0x79: "psi",
	0x7a: "zeta",
}

// Package encodings holds the PDF standard named encodings: fixed
// 256-slot tables mapping a character code to a glyph name, plus the
// reverse rune->code lookup a font's ToUnicode fallback needs.
//
// Shape grounded on fonts/simpleencodings/encodings.go's
// Encoding{Names [256]string; Runes map[rune]byte}.
package encodings

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/gopdftext/pdftext/internal/glyphnames"
)

// Encoding is a fixed mapping between the 256 codes a single-byte PDF
// string can use and glyph names / Unicode runes.
type Encoding struct {
	Names [256]string
	Runes map[rune]byte
}

// NameToRune resolves code's glyph name to a rune, falling back to
// U+FFFD when the name is unknown (matching
// original_source/minimal_pdf_parser/font_parser.py's
// `_apply_differences`, which does the same on an unmapped name).
func (e *Encoding) NameToRune(code byte) rune {
	name := e.Names[code]
	if name == "" {
		return '�'
	}
	if r, ok := glyphnames.ToRune(name); ok {
		return r
	}
	return '�'
}

// RuneToByte is the reverse lookup, used when embedding or matching
// encodings; ok is false if the rune has no code point in this table.
func (e *Encoding) RuneToByte(r rune) (byte, bool) {
	b, ok := e.Runes[r]
	return b, ok
}

func fromCharmap(cm *charmap.Charmap) *Encoding {
	e := &Encoding{Runes: make(map[rune]byte, 224)}
	for code := 0; code < 256; code++ {
		r := cm.DecodeByte(byte(code))
		if r == 0 && code != 0 {
			continue
		}
		name := reverseGlyphName(r)
		e.Names[code] = name
		e.Runes[r] = byte(code)
	}
	return e
}

// reverseGlyphName is a best-effort rune->name lookup built once at
// init from the glyphnames table; falls back to the algorithmic
// "uniXXXX" form glyphnames.ToRune also understands, so the mapping
// round-trips even for runes absent from the curated table.
func reverseGlyphName(r rune) string {
	if name, ok := glyphReverse[r]; ok {
		return name
	}
	return fmt.Sprintf("uni%04X", r)
}

// glyphRune is the forward name->rune lookup, exposed for the other
// static tables in this package (StandardEncoding and
// MacExpertEncoding build their Runes map with it alongside Names;
// ZapfDingbatsEncoding uses it to find names NameToRune can resolve).
func glyphRune(name string) (rune, bool) {
	return glyphnames.ToRune(name)
}

var glyphReverse map[rune]string

func init() {
	glyphReverse = glyphnames.ReverseTable()

	WinAnsiEncoding = fromCharmap(charmap.Windows1252)
	MacRomanEncoding = fromCharmap(charmap.Macintosh)
}

// WinAnsiEncoding and MacRomanEncoding are derived at init time from
// golang.org/x/text/encoding/charmap's Windows-1252 and Macintosh
// tables, which match the PDF spec's WinAnsiEncoding/MacRomanEncoding
// for codes 32-255 (the printable range this module cares about).
var (
	WinAnsiEncoding  *Encoding
	MacRomanEncoding *Encoding
)

// ApplyDifferences overlays a /Differences array (code, name, name,
// name, code, name, ... run-length form already expanded to a plain
// code->name map by the caller) onto a copy of base, returning a new
// Encoding that leaves base untouched.
func ApplyDifferences(base *Encoding, diffs map[byte]string) *Encoding {
	out := &Encoding{Runes: make(map[rune]byte, len(base.Runes))}
	out.Names = base.Names
	for r, b := range base.Runes {
		out.Runes[r] = b
	}
	for code, name := range diffs {
		out.Names[code] = name
		if r, ok := glyphnames.ToRune(name); ok {
			out.Runes[r] = code
		}
	}
	return out
}

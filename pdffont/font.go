// Package pdffont resolves a PDF font dictionary into the information
// the content interpreter needs to turn character codes into text:
// per-code glyph widths and the rune(s) each code decodes to.
package pdffont

import (
	"errors"
	"fmt"

	"github.com/gopdftext/pdftext/internal/encodings"
	"github.com/gopdftext/pdftext/internal/stdmetrics"
	"github.com/gopdftext/pdftext/pdfobj"
)

// ErrUnsupportedSubtype is returned for font subtypes this module
// deliberately does not parse (Type3, CIDFontType0/2 glyph data, and
// any other subtype than Type1, MMType1, TrueType or Type0). pdfdoc
// leaves such a font out of the page's font map, so no Text is
// emitted for strings shown in it; the rest of the document is still
// extracted.
var ErrUnsupportedSubtype = errors.New("pdffont: unsupported font subtype")

// Resolver lets this package follow indirect references and read
// decoded stream bytes without depending on the pdfdoc package
// (pdfdoc depends on pdffont, not the other way around).
type Resolver interface {
	Resolve(o pdfobj.Object) pdfobj.Object
	StreamBytes(s pdfobj.Stream) ([]byte, error)
}

// Font is a parsed font resource, bound once per /Tf operator and
// consulted for every ShowText operator until the next Tf.
type Font interface {
	// WidthOf returns the glyph width, in 1/1000 text-space units, for
	// the given character code.
	WidthOf(code uint32) float64
	// Decode returns the rune(s) a character code represents; the
	// caller assembles code big-endian from the CodeLength bytes it
	// took from the string.
	Decode(code uint32) []rune
	// CodeLength returns how many bytes of a content-stream string the
	// next character code starting with firstByte consumes: 1 for a
	// simple font, the Type0 CMap's codespace length for a composite
	// one (SPEC_FULL open question 1).
	CodeLength(firstByte byte) int
}

// SpaceWidth returns f's width for the ASCII space code, used by the
// content interpreter's space-insertion/new-text heuristics —
// grounded on font_parser.py's Font.get_space_width.
func SpaceWidth(f Font) float64 { return f.WidthOf(0x20) }

// Descriptor carries the subset of /FontDescriptor this module needs:
// MissingWidth for codes outside the font's declared width range.
type Descriptor struct {
	MissingWidth float64
}

// SimpleFont backs Type1 and TrueType fonts: one byte per character
// code, a contiguous [FirstChar, LastChar] width table, and a 256-slot
// encoding.
type SimpleFont struct {
	FirstChar    int
	Widths       []float64
	Descriptor   Descriptor
	Encoding     *encodings.Encoding
	ToUnicodeMap map[uint32][]rune // optional override from an embedded ToUnicode CMap
}

func (f *SimpleFont) CodeLength(byte) int { return 1 }

func (f *SimpleFont) WidthOf(code uint32) float64 {
	idx := int(code) - f.FirstChar
	if idx >= 0 && idx < len(f.Widths) {
		return f.Widths[idx]
	}
	return f.Descriptor.MissingWidth
}

func (f *SimpleFont) Decode(code uint32) []rune {
	if f.ToUnicodeMap != nil {
		if r, ok := f.ToUnicodeMap[code]; ok {
			return r
		}
	}
	if f.Encoding == nil {
		return []rune{'�'}
	}
	return []rune{f.Encoding.NameToRune(byte(code))}
}

// Type0Font backs a composite font: a multi-byte CMap maps codes to
// CIDs, a descendant-font width table maps CIDs to widths, and an
// optional ToUnicode CMap maps codes directly to runes.
type Type0Font struct {
	Encoding     *CMap
	ToUnicode    *CMap
	Widths       map[uint32]float64 // keyed by CID
	DefaultWidth float64
}

func (f *Type0Font) CodeLength(firstByte byte) int {
	if f.Encoding != nil {
		return f.Encoding.CodeLength(firstByte)
	}
	return 2 // Identity-H/V default
}

func (f *Type0Font) cid(code uint32) uint32 {
	if f.Encoding != nil && f.Encoding.ToCID != nil {
		if cid, ok := f.Encoding.ToCID[code]; ok {
			return cid
		}
	}
	return code // Identity encoding: CID == code
}

func (f *Type0Font) WidthOf(code uint32) float64 {
	cid := f.cid(code)
	if w, ok := f.Widths[cid]; ok {
		return w
	}
	return f.DefaultWidth
}

func (f *Type0Font) Decode(code uint32) []rune {
	if f.ToUnicode != nil {
		if r, ok := f.ToUnicode.ToUnicode[code]; ok {
			return r
		}
	}
	return []rune{'�'}
}

// dictName reads a required /Name-valued key as plain text.
func dictName(d pdfobj.Dict, key string) (string, bool) {
	n, ok := d[key].(pdfobj.Name)
	return n.Raw, ok
}

// Parse dispatches on /Subtype and builds the Font this module knows
// how to extract text through. Grounded on fonts/encoding.go's
// resolveSimpleEncoding priority chain and
// original_source/minimal_pdf_parser/font_parser.py's FontParser,
// which independently arrive at the same priority order.
func Parse(dict pdfobj.Dict, r Resolver) (Font, error) {
	subtype, _ := dictName(dict, "Subtype")
	switch subtype {
	case "Type1", "TrueType", "MMType1":
		return parseSimpleFont(dict, r, subtype)
	case "Type0":
		return parseType0Font(dict, r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSubtype, subtype)
	}
}

func parseSimpleFont(dict pdfobj.Dict, r Resolver, subtype string) (Font, error) {
	first := 0
	if v, ok := pdfobj.AsFloat(r.Resolve(dict["FirstChar"])); ok {
		first = int(v)
	}
	var widths []float64
	if arr, ok := r.Resolve(dict["Widths"]).(pdfobj.Array); ok {
		widths = make([]float64, len(arr))
		for i, o := range arr {
			widths[i], _ = pdfobj.AsFloat(r.Resolve(o))
		}
	}
	if widths == nil {
		// No /Widths array: this is very likely one of the 14 standard
		// fonts, relying on the viewer's built-in metrics — fall back to
		// those instead of treating every code as zero-width.
		if base, ok := dictName(dict, "BaseFont"); ok {
			if m, ok := stdmetrics.Lookup(base); ok {
				first = m.FirstChar
				widths = m.Widths
			}
		}
	}
	desc := Descriptor{}
	if dd, ok := r.Resolve(dict["FontDescriptor"]).(pdfobj.Dict); ok {
		if v, ok := pdfobj.AsFloat(r.Resolve(dd["MissingWidth"])); ok {
			desc.MissingWidth = v
		}
	}
	enc := resolveSimpleEncoding(dict, r, subtype)

	var toUni map[uint32][]rune
	if s, ok := r.Resolve(dict["ToUnicode"]).(pdfobj.Stream); ok {
		if data, err := r.StreamBytes(s); err == nil {
			if cm, err := ParseCMap(data); err == nil {
				toUni = cm.ToUnicode
			}
		}
	}

	return &SimpleFont{
		FirstChar:    first,
		Widths:       widths,
		Descriptor:   desc,
		Encoding:     enc,
		ToUnicodeMap: toUni,
	}, nil
}

// resolveSimpleEncoding implements the base-encoding priority chain:
// an explicit /Encoding name, a /BaseEncoding inside an encoding
// dictionary, else TrueType defaults to WinAnsi and Type1 defaults to
// StandardEncoding — then applies /Differences on top.
func resolveSimpleEncoding(dict pdfobj.Dict, r Resolver, subtype string) *encodings.Encoding {
	base := encodings.StandardEncoding
	if subtype == "TrueType" {
		base = encodings.WinAnsiEncoding
	}

	var diffs map[byte]string
	switch enc := r.Resolve(dict["Encoding"]).(type) {
	case pdfobj.Name:
		base = namedEncoding(enc.Raw, base)
	case pdfobj.Dict:
		if name, ok := dictName(enc, "BaseEncoding"); ok {
			base = namedEncoding(name, base)
		}
		if arr, ok := r.Resolve(enc["Differences"]).(pdfobj.Array); ok {
			diffs = parseDifferences(arr, r)
		}
	}
	if diffs != nil {
		return encodings.ApplyDifferences(base, diffs)
	}
	return base
}

func namedEncoding(name string, fallback *encodings.Encoding) *encodings.Encoding {
	switch name {
	case "WinAnsiEncoding":
		return encodings.WinAnsiEncoding
	case "MacRomanEncoding":
		return encodings.MacRomanEncoding
	case "MacExpertEncoding":
		return encodings.MacExpertEncoding
	case "StandardEncoding":
		return encodings.StandardEncoding
	default:
		return fallback
	}
}

// parseDifferences expands the PDF /Differences run-length array
// (a code, followed by names applying to consecutive codes from
// there, until the next integer resets the code) into a flat map.
func parseDifferences(arr pdfobj.Array, r Resolver) map[byte]string {
	out := map[byte]string{}
	code := 0
	for _, o := range arr {
		switch v := r.Resolve(o).(type) {
		case pdfobj.Integer:
			code = int(v)
		case pdfobj.Real:
			code = int(v)
		case pdfobj.Name:
			out[byte(code)] = v.Raw
			code++
		}
	}
	return out
}

func parseType0Font(dict pdfobj.Dict, r Resolver) (Font, error) {
	f := &Type0Font{Widths: map[uint32]float64{}}

	switch enc := r.Resolve(dict["Encoding"]).(type) {
	case pdfobj.Name:
		f.Encoding = identityCMap(enc.Raw)
	case pdfobj.Stream:
		if data, err := r.StreamBytes(enc); err == nil {
			if cm, err := ParseCMap(data); err == nil {
				f.Encoding = cm
			}
		}
	}

	if arr, ok := r.Resolve(dict["DescendantFonts"]).(pdfobj.Array); ok && len(arr) > 0 {
		if desc, ok := r.Resolve(arr[0]).(pdfobj.Dict); ok {
			if v, ok := pdfobj.AsFloat(r.Resolve(desc["DW"])); ok {
				f.DefaultWidth = v
			} else {
				f.DefaultWidth = 1000
			}
			parseW(r.Resolve(desc["W"]), r, f.Widths)
		}
	}

	if s, ok := r.Resolve(dict["ToUnicode"]).(pdfobj.Stream); ok {
		if data, err := r.StreamBytes(s); err == nil {
			if cm, err := ParseCMap(data); err == nil {
				f.ToUnicode = cm
			}
		}
	}
	return f, nil
}

// parseW parses a CIDFont /W array: entries are either
// "c [w1 w2 ...]" (individual widths for consecutive CIDs starting at
// c) or "cFirst cLast w" (one width for a whole range).
func parseW(o pdfobj.Object, r Resolver, out map[uint32]float64) {
	arr, ok := o.(pdfobj.Array)
	if !ok {
		return
	}
	i := 0
	for i < len(arr) {
		first, ok := pdfobj.AsFloat(r.Resolve(arr[i]))
		if !ok {
			i++
			continue
		}
		i++
		if i >= len(arr) {
			break
		}
		if inner, ok := r.Resolve(arr[i]).(pdfobj.Array); ok {
			for k, w := range inner {
				if wv, ok := pdfobj.AsFloat(r.Resolve(w)); ok {
					out[uint32(first)+uint32(k)] = wv
				}
			}
			i++
			continue
		}
		last, ok := pdfobj.AsFloat(r.Resolve(arr[i]))
		if !ok {
			i++
			continue
		}
		i++
		if i >= len(arr) {
			break
		}
		w, _ := pdfobj.AsFloat(r.Resolve(arr[i]))
		for cid := uint32(first); cid <= uint32(last); cid++ {
			out[cid] = w
		}
		i++
	}
}

func identityCMap(name string) *CMap {
	// Identity-H/V map every 2-byte code directly to the same CID.
	return &CMap{
		Codespaces: []Codespace{{NumBytes: 2, Low: 0x0000, High: 0xFFFF}},
		ToUnicode:  map[uint32][]rune{},
	}
}

package pdffont

import (
	"github.com/gopdftext/pdftext/pdfobj"
	"github.com/gopdftext/pdftext/pdftoken"
)

// Codespace is one entry of a CMap's codespacerange: every code in
// [Low, High] (compared as big-endian integers of NumBytes bytes)
// belongs to this byte-length class.
type Codespace struct {
	NumBytes int
	Low, High uint32
}

// CMap is the parsed form of an embedded CMap stream: either a
// ToUnicode CMap (Unicode set) or a composite font's Encoding CMap
// (CID set) — both share bfchar/bfrange/cidchar/cidrange grammar, so
// one parser produces both.
//
// Grounded on fonts/cmaps/parser.go's parseBfchar/parseBfrange and
// fonts/cmaps/to_unicode.go's ToUnicodePair/ToUnicodeArray shapes,
// flattened here into plain maps since this module has no writer side
// that needs the compact run-length representation.
type CMap struct {
	Codespaces []Codespace
	ToUnicode  map[uint32][]rune // code -> destination runes (bfchar/bfrange)
	ToCID      map[uint32]uint32 // code -> CID (cidchar/cidrange), nil for a pure ToUnicode CMap
}

// CodeLength returns the byte length of code under this CMap's
// codespace ranges. When no range matches, the first range's byte
// length is used; with no codespacerange at all (which real-world
// PDFs do produce) it is 1 — see SPEC_FULL open question 1.
func (c *CMap) CodeLength(firstByte byte) int {
	for _, cs := range c.Codespaces {
		lowFirst := byte(cs.Low >> (8 * (cs.NumBytes - 1)))
		highFirst := byte(cs.High >> (8 * (cs.NumBytes - 1)))
		if firstByte >= lowFirst && firstByte <= highFirst {
			return cs.NumBytes
		}
	}
	if len(c.Codespaces) > 0 {
		return c.Codespaces[0].NumBytes
	}
	return 1
}

// ParseCMap parses the textual body of an embedded CMap stream
// (ToUnicode or a composite font's own Encoding CMap).
func ParseCMap(data []byte) (*CMap, error) {
	p := pdfobj.New(pdftoken.New(data))
	p.ContentStreamMode = true
	cm := &CMap{ToUnicode: map[uint32][]rune{}}

	var pending []pdfobj.Object
	for {
		obj, err := p.ParseObject()
		if err != nil {
			break
		}
		cmd, isCmd := obj.(pdfobj.Command)
		if !isCmd {
			pending = append(pending, obj)
			continue
		}
		switch string(cmd) {
		case "endcodespacerange":
			for i := 0; i+1 < len(pending); i += 2 {
				lo, ok1 := pdfobj.Bytes(pending[i])
				hi, ok2 := pdfobj.Bytes(pending[i+1])
				if !ok1 || !ok2 {
					continue
				}
				cm.Codespaces = append(cm.Codespaces, Codespace{
					NumBytes: len(lo),
					Low:      bytesToUint32(lo),
					High:     bytesToUint32(hi),
				})
			}
			pending = nil
		case "endbfchar":
			for i := 0; i+1 < len(pending); i += 2 {
				code, ok1 := pdfobj.Bytes(pending[i])
				dst := pending[i+1]
				if !ok1 {
					continue
				}
				cm.ToUnicode[bytesToUint32(code)] = destRunes(dst)
			}
			pending = nil
		case "endbfrange":
			for i := 0; i+2 < len(pending); i += 3 {
				lo, ok1 := pdfobj.Bytes(pending[i])
				hi, ok2 := pdfobj.Bytes(pending[i+1])
				if !ok1 || !ok2 {
					continue
				}
				from, to := bytesToUint32(lo), bytesToUint32(hi)
				switch dst := pending[i+2].(type) {
				case pdfobj.Array:
					for k, code := 0, from; code <= to && k < len(dst); k, code = k+1, code+1 {
						cm.ToUnicode[code] = destRunes(dst[k])
					}
				default:
					base := destRunes(dst)
					if len(base) == 0 {
						continue
					}
					last := base[len(base)-1]
					for code := from; code < to; code++ {
						r := append([]rune(nil), base...)
						r[len(r)-1] = last + rune(code-from)
						cm.ToUnicode[code] = r
					}
				}
			}
			pending = nil
		case "endcidchar":
			if cm.ToCID == nil {
				cm.ToCID = map[uint32]uint32{}
			}
			for i := 0; i+1 < len(pending); i += 2 {
				code, ok1 := pdfobj.Bytes(pending[i])
				cid, ok2 := pdfobj.AsFloat(pending[i+1])
				if !ok1 || !ok2 {
					continue
				}
				cm.ToCID[bytesToUint32(code)] = uint32(cid)
			}
			pending = nil
		case "endcidrange":
			if cm.ToCID == nil {
				cm.ToCID = map[uint32]uint32{}
			}
			for i := 0; i+2 < len(pending); i += 3 {
				lo, ok1 := pdfobj.Bytes(pending[i])
				hi, ok2 := pdfobj.Bytes(pending[i+1])
				cid, ok3 := pdfobj.AsFloat(pending[i+2])
				if !ok1 || !ok2 || !ok3 {
					continue
				}
				from, to := bytesToUint32(lo), bytesToUint32(hi)
				for code := from; code <= to; code++ {
					cm.ToCID[code] = uint32(cid) + (code - from)
				}
			}
			pending = nil
		case "begincodespacerange", "beginbfchar", "beginbfrange",
			"begincidchar", "begincidrange", "begincmap", "endcmap",
			"def", "dict", "dup", "begin", "end", "findresource",
			"defineresource", "pop", "usecmap":
			pending = nil
		default:
			// unrecognised operator: drop any accumulated operands,
			// matching pdf_operator.py's TokenQueue.clear-on-mismatch
			// policy for malformed content.
			pending = nil
		}
	}
	return cm, nil
}

func bytesToUint32(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}

func destRunes(o pdfobj.Object) []rune {
	b, ok := pdfobj.Bytes(o)
	if !ok {
		return nil
	}
	return utf16beToRunes(b)
}

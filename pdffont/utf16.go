package pdffont

import (
	"golang.org/x/text/encoding/unicode"
)

// utf16beDecoder decodes the big-endian UTF-16 destination strings a
// bfchar/bfrange CMap entry embeds, matching reader/read.go and
// fonts/cmaps/utils.go's use of golang.org/x/text/encoding/unicode for
// the same conversion.
var utf16beDecoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()

func utf16beToRunes(b []byte) []rune {
	if len(b) == 0 {
		return nil
	}
	// A one-byte destination, too short for a UTF-16 code unit
	// (malformed input), decodes as a single rune rather than erroring.
	if len(b) == 1 {
		return []rune{rune(b[0])}
	}
	s, err := utf16beDecoder.String(string(b))
	if err != nil || s == "" {
		// best-effort fallback: treat as a sequence of UTF-16BE code
		// units with no surrogate pairing
		out := make([]rune, 0, len(b)/2)
		for i := 0; i+1 < len(b); i += 2 {
			out = append(out, rune(uint16(b[i])<<8|uint16(b[i+1])))
		}
		return out
	}
	return []rune(s)
}

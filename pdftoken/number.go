package pdftoken

import "strconv"

// parseInt parses the textual form of an Integer or Float token as an
// integer, truncating any fractional part. PDF numbers are never
// written with PostScript radix notation (base#digits) in practice,
// but producers occasionally emit a leading '+' which strconv.Atoi
// accepts directly.
func parseInt(b []byte) (int, error) {
	s := string(b)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), nil
	}
	return strconv.Atoi(s)
}

func parseFloat(b []byte) (float64, error) {
	return strconv.ParseFloat(string(b), 64)
}

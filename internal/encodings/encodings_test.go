package encodings

import "testing"

func TestStandardEncodingASCII(t *testing.T) {
	if got := StandardEncoding.NameToRune('A'); got != 'A' {
		t.Errorf("code 'A' => %q", got)
	}
	if got := StandardEncoding.NameToRune(' '); got != ' ' {
		t.Errorf("code ' ' => %q", got)
	}
}

func TestWinAnsiMatchesLatin1Range(t *testing.T) {
	if got := WinAnsiEncoding.NameToRune('e'); got != 'e' {
		t.Errorf("code 'e' => %q", got)
	}
	b, ok := WinAnsiEncoding.RuneToByte('A')
	if !ok || b != 'A' {
		t.Errorf("RuneToByte('A') = %d, %v", b, ok)
	}
}

func TestApplyDifferences(t *testing.T) {
	diffs := map[byte]string{65: "bullet"}
	e := ApplyDifferences(StandardEncoding, diffs)
	if got := e.NameToRune(65); got != '•' {
		t.Errorf("overridden code 65 => %q, want bullet", got)
	}
	if got := e.NameToRune(66); got != StandardEncoding.NameToRune(66) {
		t.Errorf("untouched code 66 changed: %q vs %q", got, StandardEncoding.NameToRune(66))
	}
}

func TestZapfDingbats(t *testing.T) {
	if got := ZapfDingbatsEncoding.NameToRune(0xac); got != 9312 {
		t.Errorf("code 0xac => %q, want U+2460", got)
	}
}

package pdfcontent

import (
	"testing"

	"github.com/gopdftext/pdftext/internal/encodings"
	"github.com/gopdftext/pdftext/pdffont"
)

func courier(widths ...float64) pdffont.Font {
	return &pdffont.SimpleFont{
		FirstChar: 32,
		Widths:    widths,
		Encoding:  encodings.StandardEncoding,
	}
}

func TestShowTextAdvancesAndEmits(t *testing.T) {
	// "AB" at 12pt, widths 600/600 (Courier-ish), no spacing tweaks.
	w := make([]float64, 95)
	for i := range w {
		w[i] = 600
	}
	fonts := map[string]pdffont.Font{"F1": courier(w...)}
	ip := New(fonts)

	content := []byte("BT /F1 12 Tf 100 700 Td (AB) Tj ET")
	els, err := ip.Run(content)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(els) != 1 {
		t.Fatalf("got %d elements, want 1: %#v", len(els), els)
	}
	text, ok := els[0].(Text)
	if !ok {
		t.Fatalf("element is %T, want Text", els[0])
	}
	if text.S != "AB" {
		t.Errorf("S = %q, want AB", text.S)
	}
	if text.X != 100 || text.Y != 700 {
		t.Errorf("X,Y = %v,%v, want 100,700", text.X, text.Y)
	}
	wantWidth := (600.0/1000*12)*2
	if diff := text.Width - wantWidth; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Width = %v, want %v", text.Width, wantWidth)
	}
}

func TestNewLineEmitsBreakMarker(t *testing.T) {
	w := make([]float64, 95)
	for i := range w {
		w[i] = 500
	}
	fonts := map[string]pdffont.Font{"F1": courier(w...)}
	ip := New(fonts)

	content := []byte("BT /F1 10 Tf 100 700 Td (one) Tj 0 -20 Td (two) Tj ET")
	els, err := ip.Run(content)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(els) != 3 {
		t.Fatalf("got %d elements, want 3 (text, break, text): %#v", len(els), els)
	}
	if _, ok := els[0].(Text); !ok {
		t.Errorf("element 0 = %T, want Text", els[0])
	}
	if _, ok := els[1].(NewText); !ok {
		t.Errorf("element 1 = %T, want NewText", els[1])
	}
	if _, ok := els[2].(Text); !ok {
		t.Errorf("element 2 = %T, want Text", els[2])
	}
}

func TestTJArrayAdjustment(t *testing.T) {
	w := make([]float64, 95)
	for i := range w {
		w[i] = 500
	}
	fonts := map[string]pdffont.Font{"F1": courier(w...)}
	ip := New(fonts)

	content := []byte("BT /F1 10 Tf 0 0 Td [(A)-250(B)] TJ ET")
	els, err := ip.Run(content)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2 (one Text per string): %#v", len(els), els)
	}
	a, b := els[0].(Text), els[1].(Text)
	if a.S != "A" || b.S != "B" {
		t.Errorf("S = %q, %q, want A, B", a.S, b.S)
	}
	// B starts after A's advance (500/1000*10 = 5) plus the -250
	// adjustment (250/1000*10 = 2.5): x = 5 + 2.5 = 7.5
	want := 7.5
	if diff := b.X - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("B.X = %v, want %v", b.X, want)
	}
}

package pdftext

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gopdftext/pdftext/pdfcontent"
)

// buildTwoPagePDF assembles a two-page classic-xref PDF, each page
// showing one line of text with the same embedded Type1 font.
func buildTwoPagePDF(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	offsets := map[int]int64{}

	writeObj := func(num int, body string) {
		offsets[num] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	writeStreamObj := func(num int, dictExtra, content string) {
		offsets[num] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d%s >>\nstream\n%s\nendstream\nendobj\n", num, len(content), dictExtra, content)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 7 0 R >> >> /MediaBox [0 0 612 792] /Contents 5 0 R >>")
	writeObj(4, "<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 7 0 R >> >> /MediaBox [0 0 612 792] /Contents 6 0 R >>")
	writeStreamObj(5, "", "BT /F1 12 Tf 72 700 Td (Page one) Tj ET")
	writeStreamObj(6, "", "BT /F1 12 Tf 72 700 Td (Page two) Tj ET")
	writeObj(7, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /FirstChar 32 /LastChar 122 /Widths ["+widthsList(32, 122, 500)+"] >>")

	xrefOffset := int64(buf.Len())
	maxObj := 8
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObj)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < maxObj; i++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[i], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", maxObj, xrefOffset)

	return buf.Bytes()
}

func widthsList(first, last int, w int) string {
	s := ""
	for c := first; c <= last; c++ {
		if c > first {
			s += " "
		}
		s += fmt.Sprintf("%d", w)
	}
	return s
}

func TestExtractTextAcrossPages(t *testing.T) {
	data := buildTwoPagePDF(t)
	doc, err := Open(bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	els, err := doc.ExtractText()
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}

	var pageCount, textCount int
	var texts []string
	for _, el := range els {
		switch v := el.(type) {
		case pdfcontent.NewPage:
			pageCount++
		case pdfcontent.Text:
			textCount++
			texts = append(texts, v.S)
		}
	}
	if pageCount != 2 {
		t.Errorf("pageCount = %d, want 2", pageCount)
	}
	if textCount != 2 {
		t.Fatalf("textCount = %d, want 2: %#v", textCount, texts)
	}
	if texts[0] != "Page one" || texts[1] != "Page two" {
		t.Errorf("texts = %v, want [Page one, Page two]", texts)
	}
}

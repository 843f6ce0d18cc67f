package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// buildMinimalPDF assembles a tiny classic-xref PDF with one page and
// one Tj-emitting content stream, computing every xref offset from the
// buffer as it's written rather than hand-counting bytes.
func buildMinimalPDF(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	offsets := map[int]int64{}

	writeObj := func(num int, body string) {
		offsets[num] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	content := "BT /F1 12 Tf 100 700 Td (Hello) Tj ET"
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 5 0 R >> >> /MediaBox [0 0 612 792] /Contents 4 0 R >>")
	offsets[4] = int64(buf.Len())
	fmt.Fprintf(&buf, "4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content)
	writeObj(5, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /FirstChar 32 /LastChar 32 /Widths [278] >>")

	xrefOffset := int64(buf.Len())
	maxObj := 6
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObj)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < maxObj; i++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[i], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", maxObj, xrefOffset)

	return buf.Bytes()
}

func TestOpenAndWalkPages(t *testing.T) {
	data := buildMinimalPDF(t)
	doc, err := Open(bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	pages, err := doc.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	p := pages[0]
	if !bytes.Contains(p.Contents, []byte("Hello")) {
		t.Errorf("page contents missing text: %q", p.Contents)
	}
	if _, ok := p.Fonts["F1"]; !ok {
		t.Errorf("page fonts missing F1: %v", p.Fonts)
	}
}

// buildNestedPDF builds an asymmetric page tree —
// Pages -> [SubPages -> [SubSubPages -> [LeafX]], LeafY] — to catch a
// breadth-first walk masquerading as depth-first: BFS would surface
// LeafY before LeafX despite LeafX preceding it in document order.
func buildNestedPDF(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	offsets := map[int]int64{}

	writeObj := func(num int, body string) {
		offsets[num] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}
	writeStream := func(num int, content string) {
		offsets[num] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", num, len(content), content)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R 6 0 R] /Count 2 >>")
	writeObj(3, "<< /Type /Pages /Parent 2 0 R /Kids [4 0 R] /Count 1 >>")
	writeObj(4, "<< /Type /Pages /Parent 3 0 R /Kids [5 0 R] /Count 1 >>")
	writeObj(5, "<< /Type /Page /Parent 4 0 R /MediaBox [0 0 612 792] /Contents 7 0 R >>")
	writeObj(6, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 8 0 R >>")
	writeStream(7, "BT (LeafX) Tj ET")
	writeStream(8, "BT (LeafY) Tj ET")

	xrefOffset := int64(buf.Len())
	maxObj := 9
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObj)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < maxObj; i++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[i], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", maxObj, xrefOffset)

	return buf.Bytes()
}

func TestPagesWalksDepthFirstInDocumentOrder(t *testing.T) {
	data := buildNestedPDF(t)
	doc, err := Open(bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	pages, err := doc.Pages()
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if !bytes.Contains(pages[0].Contents, []byte("LeafX")) {
		t.Errorf("first page = %q, want LeafX before LeafY", pages[0].Contents)
	}
	if !bytes.Contains(pages[1].Contents, []byte("LeafY")) {
		t.Errorf("second page = %q, want LeafY after LeafX", pages[1].Contents)
	}
}

// buildEncryptedPDF builds a minimal one-page PDF whose trailer
// declares an /Encrypt dictionary with the given /R, to exercise
// setupEncryption's revision bound check without a real encrypted
// stream.
func buildEncryptedPDF(t *testing.T, revision int) []byte {
	t.Helper()
	var buf bytes.Buffer
	offsets := map[int]int64{}

	writeObj := func(num int, body string) {
		offsets[num] = int64(buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	writeObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R >>")
	offsets[4] = int64(buf.Len())
	buf.WriteString("4 0 obj\n<< /Length 0 >>\nstream\n\nendstream\nendobj\n")
	writeObj(5, fmt.Sprintf("<< /Filter /Standard /R %d /V 2 /Length 40 /O (ownerhash-32-bytes-padded-------) /P -44 >>", revision))

	xrefOffset := int64(buf.Len())
	maxObj := 6
	fmt.Fprintf(&buf, "xref\n0 %d\n", maxObj)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i < maxObj; i++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[i], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Encrypt 5 0 R /ID [(fileid00)] >>\nstartxref\n%d\n%%%%EOF", maxObj, xrefOffset)

	return buf.Bytes()
}

func TestSetupEncryptionRejectsUnsupportedRevision(t *testing.T) {
	data := buildEncryptedPDF(t, 5)
	_, err := Open(bytes.NewReader(data), int64(len(data)), nil)
	if err == nil {
		t.Fatal("expected an error for encryption revision 5")
	}
	var structErr *StructuralError
	if !errors.As(err, &structErr) {
		t.Fatalf("err = %v (%T), want a *StructuralError", err, err)
	}
}

func TestSetupEncryptionAcceptsRC4Revision(t *testing.T) {
	data := buildEncryptedPDF(t, 3)
	_, err := Open(bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
}

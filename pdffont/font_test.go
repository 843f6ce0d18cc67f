package pdffont

import (
	"testing"

	"github.com/gopdftext/pdftext/pdfobj"
)

type fakeResolver struct{ streams map[string][]byte }

func (fakeResolver) Resolve(o pdfobj.Object) pdfobj.Object { return o }

func (f fakeResolver) StreamBytes(s pdfobj.Stream) ([]byte, error) {
	name, _ := s.Dict["Name"].(pdfobj.Name)
	return f.streams[name.Raw], nil
}

func TestParseSimpleFontWidths(t *testing.T) {
	dict := pdfobj.Dict{
		"Subtype":   pdfobj.Name{Raw: "Type1"},
		"FirstChar": pdfobj.Integer(65),
		"LastChar":  pdfobj.Integer(67),
		"Widths":    pdfobj.Array{pdfobj.Integer(600), pdfobj.Integer(0), pdfobj.Integer(700)},
	}
	f, err := Parse(dict, fakeResolver{})
	if err != nil {
		t.Fatal(err)
	}
	if w := f.WidthOf('A'); w != 600 {
		t.Errorf("WidthOf('A') = %v, want 600", w)
	}
	if w := f.WidthOf('C'); w != 700 {
		t.Errorf("WidthOf('C') = %v, want 700", w)
	}
	if r := f.Decode('A'); string(r) != "A" {
		t.Errorf("Decode('A') = %q", string(r))
	}
}

func TestParseDifferencesOverridesBaseEncoding(t *testing.T) {
	dict := pdfobj.Dict{
		"Subtype": pdfobj.Name{Raw: "Type1"},
		"Encoding": pdfobj.Dict{
			"BaseEncoding": pdfobj.Name{Raw: "StandardEncoding"},
			"Differences":  pdfobj.Array{pdfobj.Integer(65), pdfobj.Name{Raw: "bullet"}},
		},
	}
	f, err := Parse(dict, fakeResolver{})
	if err != nil {
		t.Fatal(err)
	}
	if r := f.Decode('A'); string(r) != "•" {
		t.Errorf("Decode('A') = %q, want bullet", string(r))
	}
}

func TestParseSimpleFontFallsBackToStandardMetrics(t *testing.T) {
	dict := pdfobj.Dict{
		"Subtype":  pdfobj.Name{Raw: "Type1"},
		"BaseFont": pdfobj.Name{Raw: "Helvetica"},
	}
	f, err := Parse(dict, fakeResolver{})
	if err != nil {
		t.Fatal(err)
	}
	if w := f.WidthOf(' '); w != 278 {
		t.Errorf("WidthOf(' ') = %v, want 278 (Helvetica space width)", w)
	}
}

func TestParseSimpleFontStripsSubsetTag(t *testing.T) {
	dict := pdfobj.Dict{
		"Subtype":  pdfobj.Name{Raw: "Type1"},
		"BaseFont": pdfobj.Name{Raw: "ABCDEF+Helvetica-Bold"},
	}
	f, err := Parse(dict, fakeResolver{})
	if err != nil {
		t.Fatal(err)
	}
	if w := f.WidthOf(' '); w != 278 {
		t.Errorf("WidthOf(' ') = %v, want 278 (Helvetica-Bold space width)", w)
	}
}

func TestUnsupportedSubtype(t *testing.T) {
	_, err := Parse(pdfobj.Dict{"Subtype": pdfobj.Name{Raw: "Type3"}}, fakeResolver{})
	if err == nil {
		t.Fatal("expected error for Type3")
	}
}

func TestCMapBfrange(t *testing.T) {
	src := []byte("1 begincodespacerange <0000> <FFFF> endcodespacerange\n" +
		"1 beginbfrange <0000> <0002> <0041> endbfrange\n")
	cm, err := ParseCMap(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := cm.ToUnicode[0]; string(got) != "A" {
		t.Errorf("code 0 => %q, want A", string(got))
	}
	if got, ok := cm.ToUnicode[2]; ok {
		t.Errorf("code 2 => %q, want unmapped (range end is exclusive)", string(got))
	}
	if n := cm.CodeLength(0x00); n != 2 {
		t.Errorf("CodeLength = %d, want 2", n)
	}
}

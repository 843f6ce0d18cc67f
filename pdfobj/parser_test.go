package pdfobj

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gopdftext/pdftext/pdftoken"
)

func parseOne(t *testing.T, src string, contentMode bool) Object {
	t.Helper()
	p := New(pdftoken.New([]byte(src)))
	p.ContentStreamMode = contentMode
	obj, err := p.ParseObject()
	if err != nil {
		t.Fatalf("ParseObject(%q): %v", src, err)
	}
	return obj
}

func TestParseScalars(t *testing.T) {
	if got := parseOne(t, "true", false); got != Bool(true) {
		t.Errorf("true => %#v", got)
	}
	if got := parseOne(t, "false", false); got != Bool(false) {
		t.Errorf("false => %#v", got)
	}
	if got := parseOne(t, "null", false); got != (Null{}) {
		t.Errorf("null => %#v", got)
	}
	if got := parseOne(t, "3.14", false); got != Real(3.14) {
		t.Errorf("3.14 => %#v", got)
	}
}

func TestParseIndirectRef(t *testing.T) {
	got := parseOne(t, "12 0 R", false)
	want := Ref{Num: 12, Gen: 0}
	if got != want {
		t.Errorf("got %#v want %#v", got, want)
	}
}

func TestParseArrayAndDict(t *testing.T) {
	got := parseOne(t, "<< /Kids [1 0 R 2 0 R] /Count 2 >>", false)
	want := Dict{
		"Kids":  Array{Ref{1, 0}, Ref{2, 0}},
		"Count": Integer(2),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestContentStreamModeHasNoIndirectRefs(t *testing.T) {
	p := New(pdftoken.New([]byte("1 0 0 1 10 20 cm")))
	p.ContentStreamMode = true
	var objs []Object
	for {
		obj, err := p.ParseObject()
		if err != nil {
			break
		}
		objs = append(objs, obj)
	}
	if len(objs) != 7 {
		t.Fatalf("got %d objects, want 7: %v", len(objs), objs)
	}
	if objs[6] != Command("cm") {
		t.Errorf("last token = %#v, want Command(cm)", objs[6])
	}
}

func TestParseObjectDefinition(t *testing.T) {
	p := New(pdftoken.New([]byte("5 0 obj << /Type /Catalog >>")))
	io, err := p.ParseObjectDefinition()
	if err != nil {
		t.Fatal(err)
	}
	if io.Num != 5 || io.Gen != 0 {
		t.Errorf("got num=%d gen=%d", io.Num, io.Gen)
	}
	d, ok := io.Value.(Dict)
	if !ok || d["Type"] != (Name{Raw: "Catalog"}) {
		t.Errorf("got value %#v", io.Value)
	}
}

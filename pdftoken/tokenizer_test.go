package pdftoken

import "testing"

func TestNextTokenBasic(t *testing.T) {
	tz := New([]byte(`12 0 obj << /Type /Page /Count 3.5 >> [1 2] (Hi\n) <48 69> endobj`))
	var got []Token
	for {
		tok, err := tz.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		if tok.Kind == EOF {
			break
		}
		got = append(got, tok)
	}
	want := []Kind{Integer, Integer, Other, StartDict, Name, Name, Name, Float, EndDict,
		StartArray, Integer, Integer, EndArray, String, StringHex, Other}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("token %d: got kind %v, want %v (value %q)", i, got[i].Kind, k, got[i].Value)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	tz := New([]byte(`1 2 3`))
	p1, _ := tz.PeekToken()
	p2, _ := tz.PeekPeekToken()
	n1, _ := tz.NextToken()
	if p1.Int() != 1 || n1.Int() != 1 {
		t.Fatalf("peek/next mismatch: peek=%d next=%d", p1.Int(), n1.Int())
	}
	if p2.Int() != 2 {
		t.Fatalf("peekpeek got %d want 2", p2.Int())
	}
	n2, _ := tz.NextToken()
	if n2.Int() != 2 {
		t.Fatalf("next got %d want 2", n2.Int())
	}
}

func TestLiteralStringEscapes(t *testing.T) {
	tz := New([]byte(`(a\(b\)c\061)`))
	tok, err := tz.NextToken()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(tok.Value), "a(b)c1"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestIndirectRefLookahead(t *testing.T) {
	tz := New([]byte(`7 0 R`))
	a, _ := tz.NextToken()
	b, _ := tz.NextToken()
	c, _ := tz.NextToken()
	if a.Kind != Integer || b.Kind != Integer || !c.IsOther("R") {
		t.Fatalf("got %v %v %v", a, b, c)
	}
}

package pdfcrypt

import "testing"

func TestObjectKeyLengthTruncation(t *testing.T) {
	h := &Handler{FileKey: make([]byte, 5), KeyLen: 5}
	key := h.ObjectKey(1, 0)
	if len(key) != 10 {
		t.Fatalf("got key len %d, want 10 (KeyLen+5)", len(key))
	}
}

func TestObjectKeyCapsAt16(t *testing.T) {
	h := &Handler{FileKey: make([]byte, 16), KeyLen: 16}
	key := h.ObjectKey(1, 0)
	if len(key) != 16 {
		t.Fatalf("got key len %d, want 16", len(key))
	}
}

func TestDecryptRoundTrips(t *testing.T) {
	h := NewHandler(3, 16, []byte("ownerhash-32-bytes-padded-------"), -44, []byte("fileid00"), true, nil)
	plain := []byte("hello, encrypted world")
	enc, err := h.DecryptObject(3, 0, plain)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := h.DecryptObject(3, 0, enc)
	if err != nil {
		t.Fatal(err)
	}
	if string(dec) != string(plain) {
		t.Fatalf("round trip mismatch: got %q", dec)
	}
}

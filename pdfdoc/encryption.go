package pdfdoc

import (
	"github.com/gopdftext/pdftext/pdfcrypt"
	"github.com/gopdftext/pdftext/pdfobj"
)

// setupEncryption reads /Encrypt (if present) and builds the RC4
// security handler used by StreamBytes (string objects are returned as
// stored; only stream data is decrypted). Only the
// standard RC4 handler (/Filter /Standard, /V 1 or 2) is supported —
// matching security.py, which never implements the AES handlers.
func (d *Document) setupEncryption() error {
	encObj, ok := d.trailer["Encrypt"]
	if !ok {
		return nil
	}
	// /Encrypt is conventionally an indirect reference. d.Resolve is
	// safe to use before d.crypt is built: Resolve never decrypts
	// anything (only StreamBytes does), so the /O string is read as
	// stored.
	enc, ok := d.Resolve(encObj).(pdfobj.Dict)
	if !ok {
		return nil
	}
	filter, _ := dictName(enc, "Filter")
	if filter != "Standard" {
		return structuralErrorf(nil, "unsupported security handler %q", filter)
	}
	revision := 2
	if v, ok := pdfobj.AsFloat(enc["R"]); ok {
		revision = int(v)
	}
	if revision > 3 {
		// revision 4 (AES-128) and revision 5/6 (AES-256) use a key
		// derivation and cipher this handler never implements — matching
		// security.py, which only ever builds the RC4 handler.
		return structuralErrorf(nil, "unsupported encryption revision %d", revision)
	}
	keyLen := 5
	if v, ok := pdfobj.AsFloat(enc["Length"]); ok {
		keyLen = int(v) / 8
	}
	ownerHash, _ := pdfobj.Bytes(enc["O"])
	permissions := int32(-1)
	if v, ok := pdfobj.AsFloat(enc["P"]); ok {
		permissions = int32(v)
	}
	var id0 []byte
	if idArr, ok := d.trailer["ID"].(pdfobj.Array); ok && len(idArr) > 0 {
		id0, _ = pdfobj.Bytes(idArr[0])
	}
	encryptMetadata := true
	if b, ok := enc["EncryptMetadata"].(pdfobj.Bool); ok {
		encryptMetadata = bool(b)
	}
	d.crypt = pdfcrypt.NewHandler(revision, keyLen, ownerHash, permissions, id0, encryptMetadata, []byte(d.opts.Password))
	return nil
}

func dictName(d pdfobj.Dict, key string) (string, bool) {
	n, ok := d[key].(pdfobj.Name)
	return n.Raw, ok
}

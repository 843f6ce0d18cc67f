// Package pdfcrypt implements the PDF standard security handler's RC4
// revisions 2 and 3 (the only ones a minimal reader needs: AES
// handlers are out of scope, matching original_source's security.py
// which only ever implements RC4).
//
// Grounded on model/encryption_rc4.go's generateEncryptionKey /
// generateOwnerEncryptionKey / generateOwnerHash / generateUserHash /
// AuthUserPassword / AuthOwnerPassword (Algorithms 2-7 of PDF 32000-1
// Annex C).
package pdfcrypt

import (
	"crypto/md5"
	"crypto/rc4"
)

// padding is the 32-byte password pad PDF 32000-1 Algorithm 2 step (a)
// prescribes, applied to any password shorter than 32 bytes.
var padding = [32]byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

func padPassword(pw []byte) []byte {
	out := make([]byte, 32)
	n := copy(out, pw)
	copy(out[n:], padding[:])
	return out
}

// Handler is a bound RC4 standard security handler for one document's
// /Encrypt dictionary.
type Handler struct {
	Revision   int
	KeyLen     int // in bytes: 5 for revision 2, up to 16 for revision >=3
	FileKey    []byte
	Permissions int32
	OwnerHash  []byte
	ID0        []byte
	EncryptMetadata bool
}

// NewHandler builds the file encryption key from the document's
// /Encrypt parameters and a caller-supplied user password (Algorithm 2,
// PDF 32000-1 7.6.3.3) — the empty password is by far the common case,
// since most PDFs with a /Standard filter set it only to restrict
// permissions, not to require one to open the file.
func NewHandler(revision, keyLenBytes int, ownerHash []byte, permissions int32, id0 []byte, encryptMetadata bool, userPassword []byte) *Handler {
	h := &Handler{
		Revision:        revision,
		KeyLen:          keyLenBytes,
		OwnerHash:       ownerHash,
		Permissions:     permissions,
		ID0:             id0,
		EncryptMetadata: encryptMetadata,
	}
	h.FileKey = h.generateEncryptionKey(userPassword)
	return h
}

// generateEncryptionKey is Algorithm 2: pad the password, hash it
// together with /O, the low-order bytes of /P, and /ID[0] (plus
// 0xFFFFFFFF if metadata is explicitly left unencrypted on a revision
// >= 4 document), then for revision >= 3 re-hash the first KeyLen
// bytes of the digest 50 times.
func (h *Handler) generateEncryptionKey(userPassword []byte) []byte {
	sum := md5.New()
	sum.Write(padPassword(userPassword))
	sum.Write(h.OwnerHash)
	var p [4]byte
	p[0] = byte(h.Permissions)
	p[1] = byte(h.Permissions >> 8)
	p[2] = byte(h.Permissions >> 16)
	p[3] = byte(h.Permissions >> 24)
	sum.Write(p[:])
	sum.Write(h.ID0)
	if h.Revision >= 4 && !h.EncryptMetadata {
		sum.Write([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	}
	key := sum.Sum(nil)[:h.KeyLen]
	if h.Revision >= 3 {
		for i := 0; i < 50; i++ {
			s := md5.Sum(key)
			key = s[:h.KeyLen]
		}
	}
	return key
}

// ObjectKey derives the per-object RC4 key (Algorithm 1): MD5 of the
// file key concatenated with the object number and generation number
// (low-order 3 and 2 bytes respectively), truncated to
// min(KeyLen+5, 16) bytes.
func (h *Handler) ObjectKey(objNum, gen int) []byte {
	buf := append([]byte(nil), h.FileKey...)
	buf = append(buf,
		byte(objNum), byte(objNum>>8), byte(objNum>>16),
		byte(gen), byte(gen>>8),
	)
	sum := md5.Sum(buf)
	n := h.KeyLen + 5
	if n > 16 {
		n = 16
	}
	return sum[:n]
}

// DecryptObject applies the per-object RC4 keystream to a string or
// stream's raw bytes and returns the result in a new slice, leaving
// data unchanged (RC4 is a symmetric stream cipher, so decryption and
// encryption are the same operation).
func (h *Handler) DecryptObject(objNum, gen int, data []byte) ([]byte, error) {
	key := h.ObjectKey(objNum, gen)
	c, err := rc4.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(data))
	c.XORKeyStream(out, data)
	return out, nil
}

// Package pdfdoc implements the Document component: classic
// cross-reference table parsing with /Prev chain merging, indirect
// object dereferencing, stream materialization (FlateDecode only),
// the standard RC4 security handler, and a depth-first page-tree walk
// that binds each page's fonts.
//
// Grounded on reader/file/read.go (xref/trailer), reader/file/streams.go
// (stream extraction) and reader/file/file_pdf.go (public API shape).
package pdfdoc

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/gopdftext/pdftext/internal/bytesource"
	"github.com/gopdftext/pdftext/pdfcrypt"
	"github.com/gopdftext/pdftext/pdffont"
	"github.com/gopdftext/pdftext/pdfobj"
	"github.com/gopdftext/pdftext/pdftoken"
)

var (
	ErrMissingTrailer = errors.New("pdfdoc: could not locate a trailer")
	ErrMissingRoot    = errors.New("pdfdoc: trailer has no /Root")
	ErrBadXRefEntry   = errors.New("pdfdoc: malformed cross-reference entry")
)

// Options configures how a Document is opened, mirroring the
// teacher's reader/file.Configuration struct.
type Options struct {
	// Password is used as the user password when deriving an
	// encrypted document's file key; it is not tried as an owner
	// password. The empty string is the common case: most
	// PDFs that set a permissions-only /Encrypt dictionary use an
	// empty user password.
	Password string
}

// DefaultOptions mirrors reader/file.NewDefaultConfiguration.
func DefaultOptions() *Options { return &Options{} }

// xrefEntry is one object's location, either a byte offset in the
// file body (free == false) or marked free (a hole in the numbering
// that must not be dereferenced).
type xrefEntry struct {
	offset int64
	gen    int
	free   bool
}

// Document is an opened PDF file: its merged cross-reference table,
// trailer, and a small resolved-object cache.
type Document struct {
	src     *bytesource.Source
	xref    map[int]xrefEntry
	trailer pdfobj.Dict
	opts    *Options

	cache map[int]pdfobj.Object
	crypt *pdfcrypt.Handler

	Root pdfobj.Dict
}

// Open reads and validates just enough of r (sized size) to build the
// cross-reference table and trailer — it never scans the whole file
// up front, matching the spec's streaming/lazy-resolution model.
func Open(r io.ReaderAt, size int64, opts *Options) (*Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	d := &Document{
		src:   bytesource.New(r, size),
		xref:  map[int]xrefEntry{},
		opts:  opts,
		cache: map[int]pdfobj.Object{},
	}
	if err := d.buildXRef(); err != nil {
		return nil, err
	}
	if err := d.setupEncryption(); err != nil {
		return nil, err
	}
	root, ok := d.Resolve(d.trailer["Root"]).(pdfobj.Dict)
	if !ok {
		return nil, ErrMissingRoot
	}
	d.Root = root
	return d, nil
}

// buildXRef locates startxref, then walks the /Prev chain: the first
// (newest) xref section's entries win; each earlier section only
// fills object numbers not already present, implementing PDF's
// "later revisions shadow earlier ones" rule.
func (d *Document) buildXRef() error {
	offset, err := d.startXRefOffset()
	if err != nil {
		return err
	}
	seen := map[int64]bool{}
	haveTrailer := false
	for offset != 0 && !seen[offset] {
		seen[offset] = true
		trailer, prev, err := d.parseXRefSectionAt(offset)
		if err != nil {
			return err
		}
		if !haveTrailer {
			d.trailer = trailer
			haveTrailer = true
		} else {
			for k, v := range trailer {
				if _, exists := d.trailer[k]; !exists {
					d.trailer[k] = v
				}
			}
		}
		offset = prev
	}
	if !haveTrailer {
		return structuralErrorf(ErrMissingTrailer, "no xref section found at any offset in the /Prev chain")
	}
	return nil
}

// startXRefOffset scans the file backward line by line, expecting the
// sequence "startxref", <offset>, "%%EOF" in reverse (skipping
// trailing blank lines), and returns the offset. A missing %%EOF or
// startxref keyword is a fatal StructuralError: the file is truncated
// or was never a valid PDF to begin with.
func (d *Document) startXRefOffset() (int64, error) {
	ls := d.src.ReverseLines()

	eof, err := nextNonBlankLine(ls)
	if err != nil || string(bytes.TrimSpace(eof)) != "%%EOF" {
		return 0, structuralErrorf(ErrMissingTrailer, "file does not end with %%%%EOF")
	}

	offsetLine, err := nextNonBlankLine(ls)
	if err != nil {
		return 0, structuralErrorf(ErrMissingTrailer, "missing startxref offset")
	}
	offset, convErr := strconv.ParseInt(string(bytes.TrimSpace(offsetLine)), 10, 64)
	if convErr != nil {
		return 0, structuralErrorf(ErrMissingTrailer, "startxref offset %q is not an integer", bytes.TrimSpace(offsetLine))
	}

	kw, err := nextNonBlankLine(ls)
	if err != nil || string(bytes.TrimSpace(kw)) != "startxref" {
		return 0, structuralErrorf(ErrMissingTrailer, "missing startxref keyword")
	}

	return offset, nil
}

// nextNonBlankLine reads lines backward from ls until a non-empty one
// is found, matching the trailer scan's "skip trailing blank lines"
// rule.
func nextNonBlankLine(ls *bytesource.LineScanner) ([]byte, error) {
	for {
		line, err := ls.Prev()
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(line)) > 0 {
			return line, nil
		}
	}
}

// parseXRefSectionAt parses one classic "xref ... trailer <<...>>"
// section starting at offset, returning its trailer dict and the
// /Prev offset to continue the chain (0 if absent).
func (d *Document) parseXRefSectionAt(offset int64) (pdfobj.Dict, int64, error) {
	data, err := d.src.ReadRange(offset, d.src.Size())
	if err != nil {
		return nil, 0, err
	}
	tz := pdftoken.New(data)
	kw, err := tz.NextToken()
	if err != nil || !kw.IsOther("xref") {
		return nil, 0, structuralErrorf(ErrBadXRefEntry, "expected \"xref\" keyword at offset %d", offset)
	}

	for {
		startTok, err := tz.PeekToken()
		if err != nil {
			return nil, 0, err
		}
		if startTok.IsOther("trailer") {
			tz.NextToken()
			break
		}
		if startTok.Kind != pdftoken.Integer {
			return nil, 0, structuralErrorf(ErrBadXRefEntry, "expected subsection header")
		}
		startTok, _ = tz.NextToken()
		countTok, err := tz.NextToken()
		if err != nil || countTok.Kind != pdftoken.Integer {
			return nil, 0, structuralErrorf(ErrBadXRefEntry, "expected subsection count")
		}
		first, count := startTok.Int(), countTok.Int()
		for i := 0; i < count; i++ {
			offTok, err := tz.NextToken()
			if err != nil || offTok.Kind != pdftoken.Integer {
				return nil, 0, structuralErrorf(ErrBadXRefEntry, "bad offset field")
			}
			genTok, err := tz.NextToken()
			if err != nil || genTok.Kind != pdftoken.Integer {
				return nil, 0, structuralErrorf(ErrBadXRefEntry, "bad generation field")
			}
			typeTok, err := tz.NextToken()
			if err != nil {
				return nil, 0, err
			}
			num := first + i
			if _, exists := d.xref[num]; exists {
				continue // a later (already-processed, therefore newer) section wins
			}
			d.xref[num] = xrefEntry{
				offset: int64(offTok.Int()),
				gen:    genTok.Int(),
				free:   typeTok.IsOther("f"),
			}
		}
	}

	p := pdfobj.New(tz)
	trailerObj, err := p.ParseObject()
	if err != nil {
		return nil, 0, err
	}
	trailer, ok := trailerObj.(pdfobj.Dict)
	if !ok {
		return nil, 0, structuralErrorf(ErrBadXRefEntry, "trailer is not a dictionary")
	}
	var prevOffset int64
	if v, ok := trailer["Prev"].(pdfobj.Integer); ok {
		prevOffset = int64(v)
	}
	return trailer, prevOffset, nil
}

// fetch parses the "n g obj ... endobj" definition at an object's
// recorded xref offset; for a stream it records where the body's raw
// (still encoded) bytes lie, and StreamBytes reads them later.
func (d *Document) fetch(num int) (pdfobj.Object, error) {
	entry, ok := d.xref[num]
	if !ok || entry.free {
		return pdfobj.Null{}, nil
	}
	data, err := d.src.ReadRange(entry.offset, d.src.Size())
	if err != nil {
		return nil, err
	}
	tz := pdftoken.New(data)
	p := pdfobj.New(tz)
	ind, err := p.ParseObjectDefinition()
	if err != nil {
		return nil, err
	}

	kw, err := tz.PeekToken()
	if err == nil && kw.IsOther("stream") {
		tz.NextToken()
		// per spec, the stream keyword is followed by CRLF or LF (not
		// bare CR) before the raw data begins
		pos := tz.CurrentPosition()
		if pos < len(data) && data[pos] == '\r' {
			pos++
		}
		if pos < len(data) && data[pos] == '\n' {
			pos++
		}
		dict, _ := ind.Value.(pdfobj.Dict)
		length := d.streamLength(dict, num)
		s := pdfobj.Stream{
			Dict:       dict,
			DataOffset: entry.offset + int64(pos),
			DataLength: length,
			ObjNum:     num,
			Gen:        entry.gen,
		}
		return s, nil
	}
	return ind.Value, nil
}

// streamLength resolves /Length, which may itself be an indirect
// reference to an object appearing later in the file body.
func (d *Document) streamLength(dict pdfobj.Dict, ownerNum int) int64 {
	switch v := dict["Length"].(type) {
	case pdfobj.Integer:
		return int64(v)
	case pdfobj.Ref:
		if v.Num == ownerNum {
			return -1 // self-referential /Length: malformed, caller falls back to EOD scan
		}
		if obj, err := d.ResolveErr(v); err == nil {
			if n, ok := pdfobj.AsFloat(obj); ok {
				return int64(n)
			}
		}
	}
	return -1
}

// Resolve follows zero or one level of indirect reference (PDF
// indirect references never chain — the target of a Ref is always a
// direct object) and caches the result, guarding against a malicious
// self-referential chain by pre-seeding the cache with Null before
// recursing.
func (d *Document) Resolve(o pdfobj.Object) pdfobj.Object {
	obj, _ := d.ResolveErr(o)
	return obj
}

// ResolveErr is Resolve, surfacing I/O or parse errors instead of
// silently degrading to Null.
func (d *Document) ResolveErr(o pdfobj.Object) (pdfobj.Object, error) {
	ref, ok := o.(pdfobj.Ref)
	if !ok {
		return o, nil
	}
	if cached, ok := d.cache[ref.Num]; ok {
		return cached, nil
	}
	d.cache[ref.Num] = pdfobj.Null{} // break reference cycles
	obj, err := d.fetch(ref.Num)
	if err != nil {
		return pdfobj.Null{}, err
	}
	d.cache[ref.Num] = obj
	return obj, nil
}

// StreamBytes returns s's fully decoded content: filter-decompressed
// and, for an encrypted document, decrypted. Implements
// pdffont.Resolver.
func (d *Document) StreamBytes(s pdfobj.Stream) ([]byte, error) {
	end := s.DataOffset + s.DataLength
	if s.DataLength < 0 {
		// a malformed or not-yet-resolvable /Length: fall back to
		// scanning forward for the "endstream" keyword, matching
		// reader/file/streams.go's EOD-based fallback path.
		rest, err := d.src.ReadRange(s.DataOffset, d.src.Size())
		if err != nil {
			return nil, err
		}
		idx := bytes.Index(rest, []byte("endstream"))
		if idx < 0 {
			return nil, fmt.Errorf("pdfdoc: stream at offset %d has no /Length and no endstream marker", s.DataOffset)
		}
		end = s.DataOffset + int64(idx)
	}
	raw, err := d.src.ReadRange(s.DataOffset, end)
	if err != nil {
		return nil, err
	}
	if d.crypt != nil {
		raw, err = d.crypt.DecryptObject(s.ObjNum, s.Gen, raw)
		if err != nil {
			return nil, err
		}
	}
	return decodeFilters(s.Dict, raw)
}

// decodeFilters applies the /Filter chain; only FlateDecode is
// supported (spec §4.4 / §7: any other filter is a fatal structural
// error, matching parser.py which never implements LZW/CCITT/JBIG2).
func decodeFilters(dict pdfobj.Dict, raw []byte) ([]byte, error) {
	filters := filterNames(dict["Filter"])
	for _, f := range filters {
		switch f {
		case "FlateDecode", "Fl":
			zr, err := zlib.NewReader(bytes.NewReader(raw))
			if err != nil {
				return nil, fmt.Errorf("pdfdoc: FlateDecode: %w", err)
			}
			defer zr.Close()
			out, err := io.ReadAll(zr)
			if err != nil {
				return nil, fmt.Errorf("pdfdoc: FlateDecode: %w", err)
			}
			raw = out
		default:
			log.Printf("pdfdoc: unsupported stream filter %q, stream not decoded", f)
			return nil, structuralErrorf(nil, "unsupported stream filter %q", f)
		}
	}
	return raw, nil
}

func filterNames(o pdfobj.Object) []string {
	switch v := o.(type) {
	case pdfobj.Name:
		return []string{v.Raw}
	case pdfobj.Array:
		var out []string
		for _, e := range v {
			if n, ok := e.(pdfobj.Name); ok {
				out = append(out, n.Raw)
			}
		}
		return out
	default:
		return nil
	}
}

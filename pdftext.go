// Package pdftext is the top-level facade: open a PDF and walk its
// pages' extracted text runs, without touching the lower-level
// pdfdoc/pdfcontent/pdfobj packages directly. Grounded on
// original_source/minimal_pdf_parser/tool.py's iter_texts/extract_text
// driver shape: one NewPage marker per page, then that page's Text/
// NewText elements in stream order.
package pdftext

import (
	"bytes"
	"io"
	"os"

	"github.com/gopdftext/pdftext/pdfcontent"
	"github.com/gopdftext/pdftext/pdfdoc"
)

// Options configures how a Document is opened.
type Options = pdfdoc.Options

// Element is one item of extracted output: pdfcontent.Text,
// pdfcontent.NewText, or pdfcontent.NewPage.
type Element = pdfcontent.Element

// Document is an opened PDF ready to have its page tree walked and its
// text extracted.
type Document struct {
	doc *pdfdoc.Document
}

// Open parses a PDF already available through r, sized size bytes.
func Open(r io.ReaderAt, size int64, opts *Options) (*Document, error) {
	doc, err := pdfdoc.Open(r, size, opts)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// OpenFile opens a PDF from a path on disk. The whole file is read
// into memory up front: pdfdoc resolves objects lazily for as long as
// the returned Document is in use, so the source can't be a file
// handle that this call closes on return.
func OpenFile(path string, opts *Options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Open(bytes.NewReader(data), int64(len(data)), opts)
}

// ExtractText walks every page in document order and returns the
// flattened element stream: a NewPage marker followed by that page's
// Text/NewText elements, for every page.
func (d *Document) ExtractText() ([]Element, error) {
	pages, err := d.doc.Pages()
	if err != nil {
		return nil, err
	}
	var out []Element
	for _, page := range pages {
		out = append(out, pdfcontent.NewPage{})
		ip := pdfcontent.New(page.Fonts)
		els, err := ip.Run(page.Contents)
		if err != nil {
			return out, err
		}
		out = append(out, els...)
	}
	return out, nil
}

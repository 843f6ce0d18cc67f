package pdfdoc

import (
	"github.com/gopdftext/pdftext/pdffont"
	"github.com/gopdftext/pdftext/pdfobj"
)

// Page is one leaf of the page tree: its (already concatenated and
// decoded) content-stream bytes and the fonts its /Resources/Font
// dictionary names, ready for pdfcontent to interpret.
type Page struct {
	Contents []byte
	Fonts    map[string]pdffont.Font
}

// Pages walks the document's page tree depth-first, yielding leaves in
// document order. Grounded on reader/pages.go's two-pass
// allocate-then-resolve walk, simplified to a single recursive descent
// since this module has no forward-reference (Action) use case that
// needs page objects pre-allocated before the tree is fully walked.
func (d *Document) Pages() ([]Page, error) {
	pagesRoot, ok := d.Resolve(d.Root["Pages"]).(pdfobj.Dict)
	if !ok {
		return nil, nil
	}
	var out []Page
	d.walkPages(pagesRoot, inheritedAttrs{}, &out)
	return out, nil
}

// walkPages visits node and, in order, each of its kids before
// returning to the caller — a /Pages node's subtrees must be fully
// flattened before moving on to its next sibling, or leaves surface
// out of document order.
func (d *Document) walkPages(node pdfobj.Dict, inherited inheritedAttrs, out *[]Page) {
	attrs := inherited.merge(node, d)

	if kidsObj, hasKids := d.Resolve(node["Kids"]).(pdfobj.Array); hasKids {
		for _, k := range kidsObj {
			if kidDict, ok := d.Resolve(k).(pdfobj.Dict); ok {
				d.walkPages(kidDict, attrs, out)
			}
		}
		return
	}

	page, err := d.resolvePage(node, attrs)
	if err != nil {
		return // a single malformed leaf doesn't fail the whole walk
	}
	*out = append(*out, page)
}

// inheritedAttrs carries the page-tree attributes that inherit from an
// ancestor /Pages node down to each leaf: /Resources (fonts) and
// nothing else, since this module has no layout/geometry component.
type inheritedAttrs struct {
	resources pdfobj.Dict
}

func (a inheritedAttrs) merge(node pdfobj.Dict, d *Document) inheritedAttrs {
	if res, ok := d.Resolve(node["Resources"]).(pdfobj.Dict); ok {
		a.resources = res
	}
	return a
}

func (d *Document) resolvePage(node pdfobj.Dict, attrs inheritedAttrs) (Page, error) {
	resources := attrs.resources
	if res, ok := d.Resolve(node["Resources"]).(pdfobj.Dict); ok {
		resources = res
	}

	content, err := d.pageContentBytes(node)
	if err != nil {
		return Page{}, err
	}

	fonts := map[string]pdffont.Font{}
	if resources != nil {
		if fontDict, ok := d.Resolve(resources["Font"]).(pdfobj.Dict); ok {
			for name, ref := range fontDict {
				fd, ok := d.Resolve(ref).(pdfobj.Dict)
				if !ok {
					continue
				}
				f, err := pdffont.Parse(fd, d)
				if err != nil {
					continue // unsupported subtype: skip, don't fail the page
				}
				fonts[name] = f
			}
		}
	}

	return Page{Contents: content, Fonts: fonts}, nil
}

// pageContentBytes resolves /Contents, which is either a single stream
// or an array of streams to be concatenated with an intervening
// whitespace byte (PDF 32000-1 7.8.2).
func (d *Document) pageContentBytes(node pdfobj.Dict) ([]byte, error) {
	switch v := d.Resolve(node["Contents"]).(type) {
	case pdfobj.Stream:
		return d.StreamBytes(v)
	case pdfobj.Array:
		var out []byte
		for _, o := range v {
			s, ok := d.Resolve(o).(pdfobj.Stream)
			if !ok {
				continue
			}
			part, err := d.StreamBytes(s)
			if err != nil {
				return nil, err
			}
			out = append(out, part...)
			out = append(out, '\n')
		}
		return out, nil
	default:
		return nil, nil
	}
}

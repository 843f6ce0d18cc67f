package pdfcontent

// Text is one run of glyphs shown by a single string operand (of Tj,
// ', " or one string element of a TJ array) at a stable position,
// matching original_source/minimal_pdf_parser/base.py's Text
// named tuple field-for-field so downstream consumers keep the same
// output contract as the original CLI.
type Text struct {
	S             string
	X, Y          float64
	Width, Height float64
	FontSize      float64
	FontSpaceWidth float64
}

// NewText marks a break in the flow of text: either a new line or a
// horizontal gap wide enough to be a deliberate word/column break.
type NewText struct{}

// NewPage marks the start of a new page's worth of elements.
type NewPage struct{}

// Element is any one value produced while interpreting a content
// stream: Text, NewText, or NewPage.
type Element interface{}

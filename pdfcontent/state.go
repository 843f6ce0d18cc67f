package pdfcontent

import "github.com/gopdftext/pdftext/pdffont"

// textState holds everything the text-showing operators (Tj, TJ, ', ")
// read and the text-positioning operators (Td, TD, T*, Tm) update.
// Grounded on original_source/minimal_pdf_parser/tool.py's
// TextExtractor._execute_page, which threads the same fields through
// one big operator switch.
type textState struct {
	tm  Matrix // text matrix
	tlm Matrix // text line matrix

	font     pdffont.Font
	fontSize float64
	charSpace  float64
	wordSpace  float64
	hscale     float64 // Tz, as a fraction (100 Tz -> 1.0)
	leading    float64
	rise       float64

	havePos bool
	lastX   float64
	lastY   float64
}

func newTextState() *textState {
	return &textState{tm: Identity(), tlm: Identity(), hscale: 1}
}

// graphicsState is the q/Q-saved subset of state this interpreter
// tracks. The CTM is carried for completeness but deliberately not
// composed into emitted coordinates (text positions stay in raw text
// space, matching the original's behavior).
type graphicsState struct {
	ctm Matrix
}

// Package pdfcontent interprets a page's content stream and emits the
// text runs it draws, tracking just enough graphics state (the text
// and line matrices, font, spacing parameters) to reproduce the
// positions and widths a naive renderer would compute.
package pdfcontent

import (
	"math"

	"github.com/gopdftext/pdftext/pdffont"
	"github.com/gopdftext/pdftext/pdfobj"
	"github.com/gopdftext/pdftext/pdftoken"
)

// Interpreter runs one page's content stream against that page's font
// resources and produces a flat slice of Elements.
type Interpreter struct {
	fonts map[string]pdffont.Font

	gs      graphicsState
	gsStack []graphicsState
	ts      *textState

	out []Element
}

// New builds an Interpreter bound to a page's font resource map (keyed
// by the name used in the content stream's Tf operator, e.g. "F1").
func New(fonts map[string]pdffont.Font) *Interpreter {
	return &Interpreter{fonts: fonts, gs: graphicsState{ctm: Identity()}}
}

// Run interprets content and returns every Text/NewText element it
// produced. Unknown or unsupported operators are silently ignored:
// this module extracts text, not full page geometry.
func (ip *Interpreter) Run(content []byte) ([]Element, error) {
	ip.out = nil
	ip.ts = nil

	tok := pdftoken.New(content)
	p := pdfobj.New(tok)
	p.ContentStreamMode = true

	var operands []pdfobj.Object
	for {
		obj, err := p.ParseObject()
		if err != nil {
			break // truncated/malformed tail: return whatever was interpreted so far
		}
		if obj == nil {
			break
		}
		cmd, isCmd := obj.(pdfobj.Command)
		if !isCmd {
			operands = append(operands, obj)
			continue
		}
		ip.dispatch(string(cmd), operands)
		operands = operands[:0]
	}
	return ip.out, nil
}

func (ip *Interpreter) dispatch(op string, args []pdfobj.Object) {
	switch op {
	case "q":
		ip.gsStack = append(ip.gsStack, ip.gs)
	case "Q":
		if n := len(ip.gsStack); n > 0 {
			ip.gs = ip.gsStack[n-1]
			ip.gsStack = ip.gsStack[:n-1]
		}
	case "cm":
		if m, ok := matrixFromArgs(args); ok {
			ip.gs.ctm = m.Mul(ip.gs.ctm)
		}
	case "BT":
		ip.ts = newTextState()
	case "ET":
		ip.ts = nil
	case "Tc":
		if ip.ts != nil && len(args) == 1 {
			ip.ts.charSpace = num(args[0])
		}
	case "Tw":
		if ip.ts != nil && len(args) == 1 {
			ip.ts.wordSpace = num(args[0])
		}
	case "Tz":
		if ip.ts != nil && len(args) == 1 {
			ip.ts.hscale = num(args[0]) / 100
		}
	case "TL":
		if ip.ts != nil && len(args) == 1 {
			ip.ts.leading = num(args[0])
		}
	case "Ts":
		if ip.ts != nil && len(args) == 1 {
			ip.ts.rise = num(args[0])
		}
	case "Tf":
		if ip.ts != nil && len(args) == 2 {
			if name, ok := args[0].(pdfobj.Name); ok {
				ip.ts.font = ip.fonts[name.Raw]
			}
			ip.ts.fontSize = num(args[1])
		}
	case "Td":
		if ip.ts != nil && len(args) == 2 {
			ip.moveLine(num(args[0]), num(args[1]))
		}
	case "TD":
		if ip.ts != nil && len(args) == 2 {
			ip.ts.leading = -num(args[1])
			ip.moveLine(num(args[0]), num(args[1]))
		}
	case "T*":
		if ip.ts != nil {
			ip.moveLine(0, -ip.ts.leading)
		}
	case "Tm":
		if ip.ts != nil {
			if m, ok := matrixFromArgs(args); ok {
				ip.ts.tm = m
				ip.ts.tlm = m
			}
		}
	case "Tj":
		if ip.ts != nil && len(args) == 1 {
			ip.showText(stringBytes(args[0]))
		}
	case "'":
		if ip.ts != nil && len(args) == 1 {
			ip.moveLine(0, -ip.ts.leading)
			ip.showText(stringBytes(args[0]))
		}
	case "\"":
		if ip.ts != nil && len(args) == 3 {
			ip.ts.wordSpace = num(args[0])
			ip.ts.charSpace = num(args[1])
			ip.moveLine(0, -ip.ts.leading)
			ip.showText(stringBytes(args[2]))
		}
	case "TJ":
		if ip.ts != nil && len(args) == 1 {
			ip.showTextArray(args[0])
		}
	}
}

func (ip *Interpreter) moveLine(tx, ty float64) {
	ip.ts.tlm = Translation(tx, ty).Mul(ip.ts.tlm)
	ip.ts.tm = ip.ts.tlm
}

// showTextArray interprets a TJ array: strings are shown glyph by
// glyph like Tj, bare numbers shift the text matrix by
// -(adjustment/1000)*Tfs*Th with no glyph drawn.
func (ip *Interpreter) showTextArray(arr pdfobj.Object) {
	a, ok := arr.(pdfobj.Array)
	if !ok {
		return
	}
	for _, el := range a {
		switch v := el.(type) {
		case pdfobj.StringLiteral, pdfobj.StringHex:
			ip.showText(stringBytes(v))
		default:
			if f, ok := pdfobj.AsFloat(el); ok {
				tx := (-f / 1000) * ip.ts.fontSize * ip.ts.hscale
				ip.ts.tm = Translation(tx, 0).Mul(ip.ts.tm)
			}
		}
	}
}

// showText decodes b through the active font's codespace, advances the
// text matrix per glyph using the standard (unit-consistent) text
// space formula, and emits one Text element per call, possibly
// preceded by a NewText break marker.
func (ip *Interpreter) showText(b []byte) {
	if ip.ts == nil || ip.ts.font == nil || len(b) == 0 {
		return
	}
	font := ip.ts.font
	fs := ip.ts.fontSize
	th := ip.ts.hscale

	startX, startY := ip.ts.tm.E, ip.ts.tm.F
	ip.maybeBreak(startX, startY, fs, font)

	var runes []rune
	pos := 0
	for pos < len(b) {
		n := font.CodeLength(b[pos])
		if n <= 0 || pos+n > len(b) {
			n = 1
		}
		var code uint32
		for i := 0; i < n; i++ {
			code = code<<8 | uint32(b[pos+i])
		}
		runes = append(runes, font.Decode(code)...)

		w0 := font.WidthOf(code) / 1000
		tc := ip.ts.charSpace
		tw := 0.0
		if n == 1 && b[pos] == 0x20 {
			tw = ip.ts.wordSpace
		}
		tx := (w0*fs + tc + tw) * th
		ip.ts.tm = Translation(tx, 0).Mul(ip.ts.tm)

		pos += n
	}

	endX := ip.ts.tm.E
	ip.out = append(ip.out, Text{
		S:              string(runes),
		X:              startX,
		Y:              startY,
		Width:          endX - startX,
		Height:         0,
		FontSize:       fs,
		FontSpaceWidth: pdffont.SpaceWidth(font) / 1000 * fs * th,
	})
	ip.ts.havePos = true
	ip.ts.lastX, ip.ts.lastY = endX, startY
}

// maybeBreak emits a NewText marker when this run starts on a
// different line (vertical delta exceeds the font size) or after a
// horizontal gap wider than one space in the active font.
func (ip *Interpreter) maybeBreak(x, y, fontSize float64, font pdffont.Font) {
	if !ip.ts.havePos {
		return
	}
	dy := y - ip.ts.lastY
	if math.Abs(dy) > fontSize {
		ip.out = append(ip.out, NewText{})
		return
	}
	dx := x - ip.ts.lastX
	spaceWidth := pdffont.SpaceWidth(font) / 1000 * fontSize * ip.ts.hscale
	if dx > spaceWidth && spaceWidth > 0 {
		ip.out = append(ip.out, NewText{})
	}
}

func matrixFromArgs(args []pdfobj.Object) (Matrix, bool) {
	if len(args) != 6 {
		return Matrix{}, false
	}
	vals := make([]float64, 6)
	for i, a := range args {
		f, ok := pdfobj.AsFloat(a)
		if !ok {
			return Matrix{}, false
		}
		vals[i] = f
	}
	return Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}, true
}

func num(o pdfobj.Object) float64 {
	f, _ := pdfobj.AsFloat(o)
	return f
}

func stringBytes(o pdfobj.Object) []byte {
	b, _ := pdfobj.Bytes(o)
	return b
}

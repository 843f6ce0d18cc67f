package pdfobj

import (
	"errors"
	"fmt"

	"github.com/gopdftext/pdftext/pdftoken"
)

var (
	ErrUnexpectedEOF = errors.New("pdfobj: unexpected end of input")
	ErrMalformed     = errors.New("pdfobj: malformed object")
)

// frame is one entry of the parser's explicit container stack: either
// an in-progress array or an in-progress dict (each value stored into
// dict as it arrives, with dictKey holding a key still awaiting its
// value).
type frame struct {
	isDict bool
	arr    Array
	dict   Dict
	// dictKey holds the name awaiting its value, when isDict is true.
	dictKey   string
	haveKey   bool
}

// Parser assembles a pdftoken.Token stream into Object values using a
// single explicit stack, rather than a recursive-descent call stack,
// so arbitrarily nested arrays/dicts never risk a Go stack overflow.
type Parser struct {
	tok *pdftoken.Tokenizer

	// ContentStreamMode disables indirect-reference lookahead ("n g R")
	// and instead allows bare Command tokens to surface as top-level
	// objects — content streams have no indirect objects of their own.
	ContentStreamMode bool

	stack []frame
}

// New creates a Parser reading tokens from tok.
func New(tok *pdftoken.Tokenizer) *Parser {
	return &Parser{tok: tok}
}

// ParseObject parses exactly one top-level Object (which may be an
// array or dict containing many nested values).
func (p *Parser) ParseObject() (Object, error) {
	for {
		tok, err := p.tok.NextToken()
		if err != nil {
			return nil, err
		}
		obj, done, err := p.step(tok)
		if err != nil {
			return nil, err
		}
		if done {
			return obj, nil
		}
	}
}

// step consumes one token and either closes out a complete top-level
// object (done=true) or pushes/updates container state and continues.
func (p *Parser) step(tok pdftoken.Token) (obj Object, done bool, err error) {
	var leaf Object
	switch tok.Kind {
	case pdftoken.EOF:
		if len(p.stack) == 0 {
			return nil, false, ErrUnexpectedEOF
		}
		return nil, false, ErrUnexpectedEOF
	case pdftoken.Integer:
		leaf, err = p.parseNumericOrRef(tok)
		if err != nil {
			return nil, false, err
		}
	case pdftoken.Float:
		leaf = Real(tok.Float())
	case pdftoken.Name:
		leaf = Name{Raw: string(tok.Value)}
	case pdftoken.String:
		leaf = StringLiteral{Value: tok.Value}
	case pdftoken.StringHex:
		leaf = StringHex{Value: tok.Value}
	case pdftoken.StartArray:
		p.stack = append(p.stack, frame{arr: Array{}})
		return nil, false, nil
	case pdftoken.EndArray:
		return p.closeArray()
	case pdftoken.StartDict:
		p.stack = append(p.stack, frame{isDict: true, dict: Dict{}})
		return nil, false, nil
	case pdftoken.EndDict:
		return p.closeDict()
	case pdftoken.Other:
		leaf, err = p.parseWord(tok)
		if err != nil {
			return nil, false, err
		}
	default:
		return nil, false, fmt.Errorf("%w: unexpected token kind %v", ErrMalformed, tok.Kind)
	}
	return p.emit(leaf)
}

// parseWord resolves true/false/null, or — in content-stream mode —
// returns a bare Command for any other word.
func (p *Parser) parseWord(tok pdftoken.Token) (Object, error) {
	switch string(tok.Value) {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null{}, nil
	default:
		if p.ContentStreamMode {
			return Command(tok.Value), nil
		}
		return nil, fmt.Errorf("%w: unexpected word %q", ErrMalformed, tok.Value)
	}
}

// parseNumericOrRef peeks ahead to tell "12 0 R" (an indirect
// reference) apart from a bare integer "12" followed by unrelated
// tokens. Disabled in ContentStreamMode, where "R" is never an
// indirect-reference marker.
func (p *Parser) parseNumericOrRef(first pdftoken.Token) (Object, error) {
	if p.ContentStreamMode {
		return Integer(first.Int()), nil
	}
	second, err := p.tok.PeekToken()
	if err != nil || second.Kind != pdftoken.Integer {
		return Integer(first.Int()), nil
	}
	third, err := p.tok.PeekPeekToken()
	if err != nil || !third.IsOther("R") {
		return Integer(first.Int()), nil
	}
	// consume the two lookahead tokens now that we've committed
	p.tok.NextToken()
	p.tok.NextToken()
	return Ref{Num: first.Int(), Gen: second.Int()}, nil
}

func (p *Parser) closeArray() (Object, bool, error) {
	n := len(p.stack)
	if n == 0 || p.stack[n-1].isDict {
		return nil, false, fmt.Errorf("%w: unmatched ']'", ErrMalformed)
	}
	arr := p.stack[n-1].arr
	p.stack = p.stack[:n-1]
	return p.emit(arr)
}

func (p *Parser) closeDict() (Object, bool, error) {
	n := len(p.stack)
	if n == 0 || !p.stack[n-1].isDict {
		return nil, false, fmt.Errorf("%w: unmatched '>>'", ErrMalformed)
	}
	if p.stack[n-1].haveKey {
		return nil, false, fmt.Errorf("%w: dict key %q with no value", ErrMalformed, p.stack[n-1].dictKey)
	}
	d := p.stack[n-1].dict
	p.stack = p.stack[:n-1]
	return p.emit(d)
}

// emit either returns leaf as the completed top-level object (stack
// empty) or folds it into the enclosing array/dict frame.
func (p *Parser) emit(leaf Object) (Object, bool, error) {
	n := len(p.stack)
	if n == 0 {
		return leaf, true, nil
	}
	f := &p.stack[n-1]
	if f.isDict {
		if !f.haveKey {
			name, ok := leaf.(Name)
			if !ok {
				return nil, false, fmt.Errorf("%w: dict key must be a name, got %T", ErrMalformed, leaf)
			}
			f.dictKey = name.Raw
			f.haveKey = true
			return nil, false, nil
		}
		f.dict[f.dictKey] = leaf
		f.haveKey = false
		return nil, false, nil
	}
	f.arr = append(f.arr, leaf)
	return nil, false, nil
}

// ParseObjectDefinition parses the "n g obj" header that precedes an
// indirect object's value in the file body, then the value itself,
// stopping before the trailing "endobj"/"stream" keyword so the caller
// (the Document layer) can special-case a following "stream" keyword.
func (p *Parser) ParseObjectDefinition() (IndirectObject, error) {
	numTok, err := p.tok.NextToken()
	if err != nil {
		return IndirectObject{}, err
	}
	genTok, err := p.tok.NextToken()
	if err != nil {
		return IndirectObject{}, err
	}
	kw, err := p.tok.NextToken()
	if err != nil {
		return IndirectObject{}, err
	}
	if numTok.Kind != pdftoken.Integer || genTok.Kind != pdftoken.Integer || !kw.IsOther("obj") {
		return IndirectObject{}, fmt.Errorf("%w: expected \"n g obj\" header", ErrMalformed)
	}
	val, err := p.ParseObject()
	if err != nil {
		return IndirectObject{}, err
	}
	return IndirectObject{Num: numTok.Int(), Gen: genTok.Int(), Value: val}, nil
}

// Package pdftoken implements the lexical layer of a PDF file: a Mealy
// state-machine tokenizer that turns a byte stream into PDF tokens
// (numbers, names, strings, delimiters and bare words) without any
// knowledge of the object grammar built on top of it.
package pdftoken

import (
	"errors"
	"fmt"
)

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	EOF Kind = iota
	Integer
	Float
	String    // literal (...) string, Value holds the unescaped bytes
	StringHex // hex <...> string, Value holds the decoded bytes
	Name      // /Name, Value holds the raw bytes after '/' (escapes not decoded)
	StartArray
	EndArray
	StartDict
	EndDict
	Other // a bare word: true, false, null, R, obj, endobj, stream, operator mnemonics...
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case StringHex:
		return "StringHex"
	case Name:
		return "Name"
	case StartArray:
		return "StartArray"
	case EndArray:
		return "EndArray"
	case StartDict:
		return "StartDict"
	case EndDict:
		return "EndDict"
	case Other:
		return "Other"
	default:
		return "?"
	}
}

// Token is one lexical unit.
type Token struct {
	Kind  Kind
	Value []byte
}

// IsOther reports whether the token is a word token equal to s.
func (t Token) IsOther(s string) bool {
	return t.Kind == Other && string(t.Value) == s
}

// Int parses an Integer or Float token's value as an integer,
// truncating any fractional part.
func (t Token) Int() int {
	i, _ := parseInt(t.Value)
	return i
}

// Float parses a Integer or Float token's value as a float64.
func (t Token) Float() float64 {
	f, _ := parseFloat(t.Value)
	return f
}

var ErrBadHex = errors.New("pdftoken: invalid hex string")

func isWhitespace(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func fmtErr(format string, args ...interface{}) error {
	return fmt.Errorf("pdftoken: "+format, args...)
}

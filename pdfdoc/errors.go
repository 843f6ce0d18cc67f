package pdfdoc

import "fmt"

// StructuralError marks a structural parse failure. Open returns one
// for a missing startxref, a missing %%EOF, a malformed xref entry, an
// unsupported /Encrypt dictionary, or a malformed trailer, and then
// cannot produce a usable Document. StreamBytes returns one for an
// unsupported stream filter; that failure is not fatal to the
// document: Pages leaves out a page whose content stream fails to
// decode. Unlike a StructuralError, a dangling reference is handled by
// substituting null, and a decode failure affects only its stream.
type StructuralError struct {
	Msg string
	Err error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pdfdoc: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("pdfdoc: %s", e.Msg)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// structuralErrorf wraps err (typically one of the package's sentinel
// errors, for errors.Is compatibility) as a StructuralError with a
// formatted message.
func structuralErrorf(err error, format string, args ...interface{}) error {
	return &StructuralError{Msg: fmt.Sprintf(format, args...), Err: err}
}

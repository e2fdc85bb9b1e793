package transform

import "fmt"

// IndexError reports a substring request outside the bounds of the input.
type IndexError struct {
	Begin, End int
	Len        int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range [%d:%d] with length %d", e.Begin, e.End, e.Len)
}

// CodecError reports malformed input to a decoder.
type CodecError struct {
	Codec string
	Err   error
}

func (e *CodecError) Error() string {
	return e.Codec + ": " + e.Err.Error()
}

func (e *CodecError) Unwrap() error { return e.Err }

// PatternError reports a regular expression that does not compile.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

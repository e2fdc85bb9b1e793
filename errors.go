package fluentstr

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/fluentstr/transform"
)

type (
	// IndexError reports an out-of-range substring request.
	IndexError = transform.IndexError

	// CodecError reports malformed Base64 or percent-encoded input.
	CodecError = transform.CodecError

	// PatternError reports a regular expression that does not compile.
	PatternError = transform.PatternError

	// ValidationError is returned by Validate and the assertion rules. It is an
	// alias for [validation.Error] from ozzo-validation; Error() returns the
	// caller supplied message and Code() identifies the failed check.
	ValidationError = validation.Error
)

// CodeValidationFailed is the Code() of errors returned by Validate.
const CodeValidationFailed = "validation_failed"

func newValidationError(code, message string) ValidationError {
	return validation.NewError(code, message)
}

package fluentstr

import (
	"fmt"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
)

// CodeLength is the Code() of errors returned by LengthBetween.
const CodeLength = "length_out_of_range"

type lengthRule struct {
	min, max int
}

// LengthBetween returns a rule that checks that a string's rune length is
// within [lo, hi]. Unlike validation.RuneLength it also rejects a too short
// empty string.
func LengthBetween(lo, hi int) Rule {
	return &lengthRule{lo, hi}
}

func (r *lengthRule) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if n := utf8.RuneCountInString(s); n < r.min || n > r.max {
		return newValidationError(CodeLength,
			fmt.Sprintf("Length must be between %d and %d, but was %d", r.min, r.max, n))
	}
	return nil
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MinLength = uint64(max(r.min, 0))
	if r.max >= 0 {
		hi := uint64(r.max)
		ref.Value.MaxLength = &hi
	}
	return nil
}

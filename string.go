package fluentstr

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/fluentstr/transform"
)

const (
	// CodeContains is the Code() of errors returned by Contains.
	CodeContains = "contains"
	// CodeMatches is the Code() of errors returned by Matches.
	CodeMatches = "matches"
)

type stringRule struct {
	validator func(string) (bool, error)
	code      string
	message   string
	desc      string
}

// NewStringRule returns a rule failing with message when validator
// returns false.
func NewStringRule(validator func(string) bool, code, message string) Rule {
	return stringRule{
		validator: func(s string) (bool, error) { return validator(s), nil },
		code:      code,
		message:   message,
		desc:      message,
	}
}

// Contains returns a rule requiring sub to occur in the string.
func Contains(sub, message string) Rule {
	return stringRule{
		validator: func(s string) (bool, error) { return strings.Contains(s, sub), nil },
		code:      CodeContains,
		message:   message,
		desc:      fmt.Sprintf("must contain %q", sub),
	}
}

// Matches returns a rule requiring expr to match the whole string. A bad
// expression makes Validate return a *PatternError.
func Matches(expr, message string) Rule {
	return patternRule{
		stringRule: stringRule{
			validator: func(s string) (bool, error) { return transform.Matches(s, expr) },
			code:      CodeMatches,
			message:   message,
		},
		expr: expr,
	}
}

func (r stringRule) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	ok, err := r.validator(s)
	if err != nil {
		return err
	}
	if !ok {
		return newValidationError(r.code, r.message)
	}
	return nil
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

type patternRule struct {
	stringRule
	expr string
}

func (r patternRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	pattern, err := transform.Anchored(r.expr)
	if err != nil {
		return err
	}
	ref.Value.Pattern = pattern
	return nil
}

package fluentstr

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CodeOneOf is the Code() of errors returned by OneOf.
const CodeOneOf = "one_of"

// OneOf returns a rule that checks that a string is one of the allowed
// values. Empty strings pass; combine with NotBlank to require a value.
func OneOf(values ...string) Rule {
	want := make([]string, len(values))
	enum := make([]any, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%s'", values[i])
		enum[i] = values[i]
	}
	return &inRule{
		validation.In(enum...).ErrorObject(
			validation.NewError(CodeOneOf, fmt.Sprintf("must be one of %s", strings.Join(want, ", ")))),
		enum,
	}
}

// inRule is a validation rule that validates if a value can be found in the given list of values.
type inRule struct {
	validation.InRule
	values []any
}

func (r *inRule) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if err := r.InRule.Validate(s); err != nil {
		return fmt.Errorf("%w got '%s'", err, s)
	}
	return nil
}

func (r *inRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.values
	return nil
}

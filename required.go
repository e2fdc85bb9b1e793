package fluentstr

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// CodeNotBlank is the Code() of errors returned by NotBlank.
const CodeNotBlank = "not_blank"

type notBlankRule struct {
	message string
}

// NotBlank returns a rule rejecting empty or white-space only strings with
// message.
func NotBlank(message string) Rule {
	return notBlankRule{message}
}

func (r notBlankRule) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return newValidationError(CodeNotBlank, r.message)
	}
	return nil
}

func (r notBlankRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	if ref.Value.MinLength == 0 {
		ref.Value.MinLength = 1
	}
	return nil
}

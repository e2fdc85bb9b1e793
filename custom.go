package fluentstr

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    func(string) error
	desc string
}

// Satisfies returns a rule that uses f for validation and desc for documentation.
func Satisfies(f func(string) error, desc string) Rule {
	return custom{
		f:    f,
		desc: desc,
	}
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r custom) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	return r.f(s)
}

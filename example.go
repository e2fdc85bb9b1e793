package fluentstr

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type example struct {
	ex string
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex string) Rule {
	return &example{ex: ex}
}

func (r *example) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = r.ex
	return nil
}

func (r *example) Validate(_ any) error {
	return nil
}

type defaulter struct {
	s string
}

// Default returns a documentation-only rule that sets the schema default
// value. Pair it with [Value.IfBlank] to apply the same default.
func Default(s string) Rule {
	return defaulter{s: s}
}

func (r defaulter) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.s
	return nil
}

func (r defaulter) Validate(_ any) error {
	return nil
}

type deprecate struct{}

// Deprecated returns a documentation-only rule that marks the value as
// deprecated in the schema.
func Deprecated() Rule {
	return &deprecate{}
}

func (r *deprecate) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Deprecated = true
	return nil
}

func (r *deprecate) Validate(_ any) error {
	return nil
}

package fluentstr

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Schema documents the rules as an OpenAPI object schema with a single
// string property called name.
func (a *Assertions) Schema(name string) (*openapi3.SchemaRef, error) {
	parent := openapi3.NewObjectSchema()
	ref := openapi3.NewStringSchema().NewRef()
	for _, r := range a.rules {
		if err := r.Describe(name, parent, ref); err != nil {
			return nil, err
		}
	}
	parent.WithPropertyRef(name, ref)
	return parent.NewRef(), nil
}

// Summary renders the rules as a short human readable sentence such as
// "required, length 3..10, matches ^(?:[a-z]+)$".
func (a *Assertions) Summary(name string) (string, error) {
	return describeRules(name, a.rules)
}

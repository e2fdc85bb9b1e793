package fluentstr

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type skipRule struct {
	skip bool
	desc string
}

// SkipWhen returns a rule that, when condition is true, stops the rules
// after it from running. desc is added to the schema description either
// way.
func SkipWhen(condition bool, desc string) Rule {
	return &skipRule{skip: condition, desc: desc}
}

func (r *skipRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, r.desc)
	return nil
}

func (r *skipRule) Validate(any) error {
	return nil
}

package fluentstr

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Rule checks a string and documents itself on an OpenAPI schema. Every
// Rule is also a validation.Rule.
type Rule interface {
	Validate(value any) error
	Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
}

func convertRules(rules ...Rule) []validation.Rule {
	vRules := make([]validation.Rule, len(rules))
	for i := range rules {
		if s, ok := rules[i].(*skipRule); ok {
			vRules[i] = validation.Skip.When(s.skip)
			continue
		}
		vRules[i] = validation.Rule(rules[i])
	}
	return vRules
}

func asString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case Value:
		return v.current, nil
	}
	return "", validation.NewError("type", "expected string").
		SetParams(map[string]any{"value": value})
}

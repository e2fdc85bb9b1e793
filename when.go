package fluentstr

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WhenRule validates conditionally: it applies one set of rules when the
// condition is true, and an optional alternative set (via [WhenRule.Else])
// when false. Use [When] to create one.
type WhenRule struct {
	validation.WhenRule
	desc      string
	whenRules []Rule
	elseRules []Rule
}

// When returns a conditional rule that applies rules only when condition is
// true. desc names the condition in the schema description.
func When(condition bool, desc string, rules ...Rule) *WhenRule {
	return &WhenRule{
		WhenRule:  validation.When(condition, convertRules(rules...)...),
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies alternative rules to apply when the [When] condition is false.
func (r *WhenRule) Else(rules ...Rule) *WhenRule {
	r.WhenRule = r.WhenRule.Else(convertRules(rules...)...)
	r.elseRules = rules
	return r
}

// Validate implements [Rule].
func (r *WhenRule) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	return r.WhenRule.Validate(s)
}

// describeRules calls Describe on each rule using a temporary schema/ref,
// then extracts a human-readable summary of the schema mutations.
func describeRules(name string, rules []Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}

	for _, r := range rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return "", err
		}
	}

	var parts []string

	if len(schema.Required) > 0 {
		parts = append(parts, "required")
	}
	if ref.Value.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("length %d..%d", ref.Value.MinLength, *ref.Value.MaxLength))
	} else if ref.Value.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("length >= %d", ref.Value.MinLength))
	}
	if ref.Value.Pattern != "" {
		parts = append(parts, "matches "+ref.Value.Pattern)
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.Format != "" {
		parts = append(parts, "format "+ref.Value.Format)
	}
	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}

	return strings.Join(parts, ", "), nil
}

// Describe implements [Rule] by appending a human-readable summary of the
// conditional rules to the schema description.
func (r *WhenRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	desc, err := describeRules(name, r.whenRules)
	if err != nil {
		return err
	}
	if desc != "" {
		if r.desc != "" {
			desc = fmt.Sprintf("when %s: %s", r.desc, desc)
		}
		appendDescription(ref, desc)
	}

	desc, err = describeRules(name, r.elseRules)
	if err != nil {
		return err
	}
	if desc != "" {
		appendDescription(ref, "else: "+desc)
	}
	return nil
}

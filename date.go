package fluentstr

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateRule validates that a string matches a time.Parse layout and,
// optionally, falls within a range. Use [Date] to create one.
type DateRule struct {
	validation.DateRule
	layout   string
	min, max time.Time
}

// Date creates a date rule for layout, e.g. "2006-01-02". Empty strings
// pass; combine with NotBlank to require a value.
func Date(layout string) *DateRule {
	return &DateRule{
		DateRule: validation.Date(layout),
		layout:   layout,
	}
}

// Min sets the earliest allowed date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.min = t
	r.DateRule = r.DateRule.Min(t)
	return r
}

// Max sets the latest allowed date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.max = t
	r.DateRule = r.DateRule.Max(t)
	return r
}

// Validate implements [Rule].
func (r *DateRule) Validate(value any) error {
	s, err := asString(value)
	if err != nil {
		return err
	}
	return r.DateRule.Validate(s)
}

// Describe implements [Rule] by setting the format and date range on the schema.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.layout
	if !r.min.IsZero() {
		appendDescription(ref, "> "+r.min.Format(r.layout))
	}
	if !r.max.IsZero() {
		appendDescription(ref, "< "+r.max.Format(r.layout))
	}
	return nil
}

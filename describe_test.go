package fluentstr

import (
	"errors"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helper to create a fresh schema + ref for each test
func newTestSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{
		Value: openapi3.NewSchema(),
	}
	return schema, ref
}

func TestDescribe_NotBlank(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := NotBlank("name is required").Describe("name", schema, ref)
	require.NoError(t, err)

	assert.Contains(t, schema.Required, "name")
	assert.Equal(t, uint64(1), ref.Value.MinLength)
}

func TestDescribe_NotBlank_MultipleFields(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, NotBlank("").Describe("name", schema, ref))
	require.NoError(t, NotBlank("").Describe("email", schema, ref))

	assert.Equal(t, []string{"name", "email"}, schema.Required)
}

func TestDescribe_LengthBetween(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := LengthBetween(3, 255).Describe("title", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), ref.Value.MinLength)
	require.NotNil(t, ref.Value.MaxLength)
	assert.Equal(t, uint64(255), *ref.Value.MaxLength)
}

func TestDescribe_LengthBetween_KeepsMinAfterNotBlank(t *testing.T) {
	schema, ref := newTestSchemaRef()

	require.NoError(t, LengthBetween(3, 10).Describe("title", schema, ref))
	require.NoError(t, NotBlank("").Describe("title", schema, ref))

	assert.Equal(t, uint64(3), ref.Value.MinLength)
}

func TestDescribe_Date_Basic(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := Date("2006-01-02").Describe("dob", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "2006-01-02", ref.Value.Format)
	assert.Empty(t, ref.Value.Description)
}

func TestDescribe_Date_WithMinMax(t *testing.T) {
	schema, ref := newTestSchemaRef()

	minTime := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	maxTime := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	err := Date("2006-01-02").Min(minTime).Max(maxTime).Describe("eventDate", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "2006-01-02", ref.Value.Format)
	assert.Equal(t, "> 2020-01-01 < 2030-12-31", ref.Value.Description)
}

func TestDescribe_Satisfies(t *testing.T) {
	schema, ref := newTestSchemaRef()

	c := Satisfies(func(string) error { return nil }, "must be special")
	err := c.Describe("field", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "must be special", ref.Value.Description)
}

func TestDescribe_Satisfies_AppendsDescription(t *testing.T) {
	schema, ref := newTestSchemaRef()
	ref.Value.Description = "existing"

	c := Satisfies(func(string) error { return nil }, "must be special")
	err := c.Describe("field", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "existing must be special", ref.Value.Description)
}

func TestDescribe_Describe(t *testing.T) {
	schema, ref := newTestSchemaRef()

	d := Describe("a helpful description")
	err := d.Describe("field", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "a helpful description", ref.Value.Description)
}

func TestDescribe_Describe_Appends(t *testing.T) {
	schema, ref := newTestSchemaRef()
	ref.Value.Description = "prefix"

	d := Describe("suffix")
	err := d.Describe("field", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "prefix suffix", ref.Value.Description)
}

func TestDescribe_HasAlphabetic(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := HasAlphabetic().Describe("name", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "Must contain at least one alphabetic character.", ref.Value.Description)
}

func TestDescribe_NonCreditCardNumber(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := NonCreditCardNumber().Describe("cardField", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "Must not be a credit card number.", ref.Value.Description)
}

func TestDescribe_StringRule(t *testing.T) {
	schema, ref := newTestSchemaRef()

	r := NewStringRule(func(s string) bool { return s != "" }, "non_empty", "must not be empty")
	err := r.Describe("field", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "must not be empty", ref.Value.Description)
}

func TestDescribe_Contains(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := Contains("@", "missing @").Describe("email", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, `must contain "@"`, ref.Value.Description)
}

func TestDescribe_Matches(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := Matches(`[a-z]+`, "lower case only").Describe("code", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "^(?:[a-z]+)$", ref.Value.Pattern)
}

func TestDescribe_Matches_BadPattern(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := Matches(`[a-z`, "lower case only").Describe("code", schema, ref)
	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "[a-z", perr.Expr)
	assert.Empty(t, ref.Value.Pattern)
}

func TestDescribe_When_WithRules(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := When(true, "is admin", NotBlank("")).Describe("role", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "when is admin: required, length >= 1", ref.Value.Description)
	assert.Empty(t, schema.Required)
}

func TestDescribe_When_WithElse(t *testing.T) {
	schema, ref := newTestSchemaRef()

	w := When(true, "is admin", LengthBetween(3, 10)).Else(OneOf("guest", "viewer"))
	err := w.Describe("role", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "when is admin: length 3..10 else: one of [guest, viewer]", ref.Value.Description)
}

func TestDescribe_When_EmptyDesc(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := When(true, "", Matches(`\d+`, "digits")).Describe("code", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, `matches ^(?:\d+)$`, ref.Value.Description)
}

func TestDescribe_When_MultipleInnerRules(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := When(true, "active", NotBlank(""), HasAlphabetic()).Describe("name", schema, ref)
	require.NoError(t, err)

	assert.Equal(t, "when active: required, length >= 1, Must contain at least one alphabetic character.", ref.Value.Description)
}

func TestDescribe_When_BadPattern(t *testing.T) {
	schema, ref := newTestSchemaRef()

	err := When(true, "strict", Matches(`(`, "bad")).Describe("code", schema, ref)
	var perr *PatternError
	assert.True(t, errors.As(err, &perr))
}

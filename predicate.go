package fluentstr

import (
	"strings"

	"github.com/Gobd/fluentstr/transform"
)

func (v Value) IsEmpty() bool           { return transform.IsEmpty(v.current) }
func (v Value) IsBlank() bool           { return transform.IsBlank(v.current) }
func (v Value) HasOnlyWhitespace() bool { return transform.HasOnlyWhitespace(v.current) }
func (v Value) IsUpperCase() bool       { return transform.IsUpperCase(v.current) }
func (v Value) IsLowerCase() bool       { return transform.IsLowerCase(v.current) }
func (v Value) IsAlpha() bool           { return transform.IsAlpha(v.current) }
func (v Value) IsNumeric() bool         { return transform.IsNumeric(v.current) }
func (v Value) IsAlphaNumeric() bool    { return transform.IsAlphaNumeric(v.current) }
func (v Value) IsEmail() bool           { return transform.IsEmail(v.current) }
func (v Value) IsPalindrome() bool      { return transform.IsPalindrome(v.current) }

// IsXML reports whether the current result is a well-formed XML document.
// Malformed input yields false, never an error.
func (v Value) IsXML() bool { return transform.IsXML(v.current) }

func (v Value) Contains(sub string) bool      { return strings.Contains(v.current, sub) }
func (v Value) StartsWith(prefix string) bool { return strings.HasPrefix(v.current, prefix) }
func (v Value) EndsWith(suffix string) bool   { return strings.HasSuffix(v.current, suffix) }

// EqualsIgnoreCase reports whether the current result equals other under
// Unicode case folding.
func (v Value) EqualsIgnoreCase(other string) bool { return strings.EqualFold(v.current, other) }

// HasLength reports whether the current result is exactly n runes long.
func (v Value) HasLength(n int) bool { return transform.Len(v.current) == n }

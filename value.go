package fluentstr

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/Gobd/fluentstr/transform"
)

// Value is an immutable pairing of an original input and the current result
// of the transformations applied to it. Every transformation returns a new
// Value; the receiver is never modified, so a Value may be shared freely.
//
// The zero Value holds the empty string.
type Value struct {
	original string
	current  string
}

// Of returns a Value whose original and current strings are both s.
func Of(s string) Value {
	return Value{original: s, current: s}
}

// Format returns Of(fmt.Sprintf(format, args...)).
func Format(format string, args ...any) Value {
	return Of(fmt.Sprintf(format, args...))
}

// Join returns Of(strings.Join(parts, sep)).
func Join(parts []string, sep string) Value {
	return Of(strings.Join(parts, sep))
}

// Get returns the current result.
func (v Value) Get() string { return v.current }

// Original returns the string the chain started from.
func (v Value) Original() string { return v.original }

// String implements fmt.Stringer.
func (v Value) String() string { return v.current }

// Len returns the rune length of the current result.
func (v Value) Len() int { return transform.Len(v.current) }

// IsChanged reports whether the current result differs from the original.
func (v Value) IsChanged() bool { return v.original != v.current }

// ToOptional returns the current result and whether it is non-empty.
func (v Value) ToOptional() (string, bool) { return v.current, v.current != "" }

func (v Value) with(s string) Value {
	return Value{original: v.original, current: s}
}

func (v Value) step(f Step) Value {
	return v.with(f(v.current))
}

func (v Value) stepE(f func(string) (string, error)) (Value, error) {
	s, err := f(v.current)
	if err != nil {
		return Value{}, err
	}
	return v.with(s), nil
}

func (v Value) Trim() Value                  { return v.step(transform.Trim) }
func (v Value) ToLower() Value               { return v.step(transform.Lower) }
func (v Value) ToUpper() Value               { return v.step(transform.Upper) }
func (v Value) Capitalize() Value            { return v.step(transform.Capitalize) }
func (v Value) TitleCase() Value             { return v.step(transform.TitleCase) }
func (v Value) CamelCase() Value             { return v.step(transform.CamelCase) }
func (v Value) SnakeCase() Value             { return v.step(transform.SnakeCase) }
func (v Value) KebabCase() Value             { return v.step(transform.KebabCase) }
func (v Value) Slug() Value                  { return v.step(transform.Slug) }
func (v Value) Reverse() Value               { return v.step(transform.Reverse) }
func (v Value) ReverseWords() Value          { return v.step(transform.ReverseWords) }
func (v Value) Initials() Value              { return v.step(transform.Initials) }
func (v Value) Normalize() Value             { return v.step(transform.Normalize) }
func (v Value) StripAccents() Value          { return v.step(transform.StripAccents) }
func (v Value) EscapeHTML() Value            { return v.step(transform.EscapeHTML) }
func (v Value) UnescapeHTML() Value          { return v.step(transform.UnescapeHTML) }
func (v Value) EscapeXML() Value             { return v.step(transform.EscapeXML) }
func (v Value) UnescapeXML() Value           { return v.step(transform.UnescapeXML) }
func (v Value) ToBase64() Value              { return v.step(transform.ToBase64) }
func (v Value) URLEncode() Value             { return v.step(transform.URLEncode) }
func (v Value) RemoveWhitespace() Value      { return v.step(transform.RemoveWhitespace) }
func (v Value) RemoveDigits() Value          { return v.step(transform.RemoveDigits) }
func (v Value) RemovePunctuation() Value     { return v.step(transform.RemovePunctuation) }
func (v Value) RemoveSpecialChars() Value    { return v.step(transform.RemoveSpecialChars) }
func (v Value) RemoveNonAlphaNumeric() Value { return v.step(transform.RemoveNonAlphaNumeric) }
func (v Value) Clean() Value                 { return v.step(transform.Clean) }
func (v Value) RemoveDuplicateWords() Value  { return v.step(transform.RemoveDuplicateWords) }
func (v Value) RemoveBlankLines() Value      { return v.step(transform.RemoveBlankLines) }

// CapitalizeWords is an alias for TitleCase.
func (v Value) CapitalizeWords() Value { return v.TitleCase() }

func (v Value) Append(s string) Value              { return v.step(transform.Append(s)) }
func (v Value) Prepend(s string) Value             { return v.step(transform.Prepend(s)) }
func (v Value) Replace(old, repl string) Value     { return v.step(transform.Replace(old, repl)) }
func (v Value) PadLeft(width int, pad rune) Value  { return v.step(transform.PadLeft(width, pad)) }
func (v Value) PadRight(width int, pad rune) Value { return v.step(transform.PadRight(width, pad)) }
func (v Value) Center(width int, pad rune) Value   { return v.step(transform.Center(width, pad)) }
func (v Value) Truncate(limit int, ellipsis string) Value {
	return v.step(transform.Truncate(limit, ellipsis))
}
func (v Value) TruncateWords(n int) Value      { return v.step(transform.TruncateWords(n)) }
func (v Value) Repeat(n int) Value             { return v.step(transform.Repeat(n)) }
func (v Value) Indent(n int) Value             { return v.step(transform.Indent(n)) }
func (v Value) Wrap(w string) Value            { return v.step(transform.Wrap(w)) }
func (v Value) WithPrefix(prefix string) Value { return v.step(transform.WithPrefix(prefix)) }
func (v Value) WithSuffix(suffix string) Value { return v.step(transform.WithSuffix(suffix)) }
func (v Value) KeepOnly(allowed string) Value  { return v.step(transform.KeepOnly(allowed)) }

// TitleCaseLocale capitalizes every word using the casing rules of tag.
func (v Value) TitleCaseLocale(tag language.Tag) Value {
	return v.step(transform.TitleCaseLocale(tag))
}

// Substring returns the runes in [begin, end) or an *IndexError.
func (v Value) Substring(begin, end int) (Value, error) {
	return v.stepE(transform.Substring(begin, end))
}

// SubstringFrom returns the runes from begin onwards or an *IndexError.
func (v Value) SubstringFrom(begin int) (Value, error) {
	return v.stepE(transform.SubstringFrom(begin))
}

// ReplaceAll replaces every match of the regular expression expr. Group
// references like $1 are expanded in repl. A bad expression yields a
// *PatternError.
func (v Value) ReplaceAll(expr, repl string) (Value, error) {
	return v.stepE(transform.ReplaceAll(expr, repl))
}

// ReplaceFirst is ReplaceAll limited to the leftmost match.
func (v Value) ReplaceFirst(expr, repl string) (Value, error) {
	return v.stepE(transform.ReplaceFirst(expr, repl))
}

// FromBase64 decodes the current result, or fails with a *CodecError.
func (v Value) FromBase64() (Value, error) { return v.stepE(transform.FromBase64) }

// URLDecode decodes the current result, or fails with a *CodecError.
func (v Value) URLDecode() (Value, error) { return v.stepE(transform.URLDecode) }

// Map applies fn to the current result.
func (v Value) Map(fn Step) Value { return v.step(fn) }

// Apply runs a Transformer plugin over the current result.
func (v Value) Apply(t Transformer) Value { return v.step(t.Transform) }

// ToBuilder starts a Builder seeded with the current result.
func (v Value) ToBuilder() *Builder { return Start().Append(v.current) }

// Convert returns a Parser over the trimmed current result.
func (v Value) Convert() Parser { return NewParser(v.current) }

// AssertThat starts an assertion chain over v.
func (v Value) AssertThat() *Assertions { return AssertThat(v) }

// StartCase is an alias for TitleCase.
func (v Value) StartCase() Value { return v.TitleCase() }

// Transform is an alias for Map.
func (v Value) Transform(fn Step) Value { return v.step(fn) }

// LowerLocale lower-cases using the rules of tag.
func (v Value) LowerLocale(tag language.Tag) Value { return v.step(transform.LowerLocale(tag)) }

// UpperLocale upper-cases using the rules of tag.
func (v Value) UpperLocale(tag language.Tag) Value { return v.step(transform.UpperLocale(tag)) }

// CompareIgnoreCase compares the current result with other after folding
// both with the casing rules of tag. It returns -1, 0 or +1.
func (v Value) CompareIgnoreCase(other string, tag language.Tag) int {
	return transform.CompareFold(v.current, other, tag)
}

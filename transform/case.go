package transform

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugDrop      = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Trim removes leading and trailing white space.
func Trim(s string) string { return strings.TrimSpace(s) }

// Lower maps s to lower case.
func Lower(s string) string { return strings.ToLower(s) }

// Upper maps s to upper case.
func Upper(s string) string { return strings.ToUpper(s) }

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// TitleCase capitalizes every white-space separated word and joins the
// words with a single space.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// CamelCase lower-cases s and joins its words with every word after the
// first starting in upper case: "hello big world" becomes "helloBigWorld".
func CamelCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}

// SnakeCase lower-cases s and joins its words with underscores.
func SnakeCase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// KebabCase lower-cases s and joins its words with hyphens.
func KebabCase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// Slug lower-cases s, drops everything but ASCII letters, digits and white
// space, and collapses white space into single hyphens. The result never
// starts or ends with a hyphen.
func Slug(s string) string {
	s = slugDrop.ReplaceAllString(strings.ToLower(s), "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.TrimPrefix(strings.TrimSuffix(s, "-"), "-")
}

// Initials returns the upper-cased first rune of every word.
func Initials(s string) string {
	var b strings.Builder
	for _, w := range strings.Fields(s) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// TitleCaseLocale is TitleCase using the casing rules of tag, so that
// Turkish "istanbul" becomes "İstanbul".
func TitleCaseLocale(tag language.Tag) func(string) string {
	return func(s string) string {
		// Casers carry state; build them per call.
		upper, lower := cases.Upper(tag), cases.Lower(tag)
		words := strings.Fields(s)
		for i, w := range words {
			_, size := utf8.DecodeRuneInString(w)
			words[i] = upper.String(w[:size]) + lower.String(w[size:])
		}
		return strings.Join(words, " ")
	}
}

// LowerLocale maps s to lower case using the rules of tag.
func LowerLocale(tag language.Tag) func(string) string {
	return func(s string) string { return cases.Lower(tag).String(s) }
}

// UpperLocale maps s to upper case using the rules of tag.
func UpperLocale(tag language.Tag) func(string) string {
	return func(s string) string { return cases.Upper(tag).String(s) }
}

// CompareFold compares a and b after lower-casing both with the rules of
// tag. The result is -1, 0 or +1 as with [strings.Compare].
func CompareFold(a, b string, tag language.Tag) int {
	return strings.Compare(cases.Lower(tag).String(a), cases.Lower(tag).String(b))
}

package transform

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/asaskevich/govalidator"
)

const emailShape = `^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`

// IsEmpty reports whether s has no runes.
func IsEmpty(s string) bool { return s == "" }

// IsBlank reports whether s is empty or only white space.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }

// HasOnlyWhitespace reports whether s is non-empty and only white space.
func HasOnlyWhitespace(s string) bool { return s != "" && IsBlank(s) }

// IsUpperCase reports whether s is non-empty and unchanged by upper-casing.
func IsUpperCase(s string) bool { return s != "" && govalidator.IsUpperCase(s) }

// IsLowerCase reports whether s is non-empty and unchanged by lower-casing.
func IsLowerCase(s string) bool { return s != "" && govalidator.IsLowerCase(s) }

// IsAlpha reports whether s is one or more ASCII letters.
func IsAlpha(s string) bool { return s != "" && govalidator.IsAlpha(s) }

// IsNumeric reports whether s is one or more ASCII digits.
func IsNumeric(s string) bool { return s != "" && govalidator.IsNumeric(s) }

// IsAlphaNumeric reports whether s is one or more ASCII letters or digits.
func IsAlphaNumeric(s string) bool { return s != "" && govalidator.IsAlphanumeric(s) }

// IsEmail reports whether s has the shape local@domain.tld.
func IsEmail(s string) bool { return govalidator.Matches(s, emailShape) }

// IsPalindrome reports whether s reads the same backwards once everything
// but ASCII letters and digits is removed and case is folded.
func IsPalindrome(s string) bool {
	cleaned := strings.ToLower(RemoveNonAlphaNumeric(s))
	return cleaned == Reverse(cleaned)
}

// IsXML reports whether s is a well-formed XML document with a single root
// element and no repeated attribute on any element. Parse failures yield
// false.
func IsXML(s string) bool {
	dec := xml.NewDecoder(strings.NewReader(s))
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return roots == 1 && depth == 0
		}
		if err != nil {
			return false
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if hasDuplicateAttr(t.Attr) {
				return false
			}
			if depth == 0 {
				roots++
				if roots > 1 {
					return false
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return false
			}
		}
	}
}

func hasDuplicateAttr(attrs []xml.Attr) bool {
	seen := make(map[xml.Name]struct{}, len(attrs))
	for _, a := range attrs {
		if _, ok := seen[a.Name]; ok {
			return true
		}
		seen[a.Name] = struct{}{}
	}
	return false
}

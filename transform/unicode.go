package transform

import (
	"unicode"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical composed (NFC) form of s.
func Normalize(s string) string { return norm.NFC.String(s) }

// StripAccents decomposes s (NFD) and drops the combining marks.
func StripAccents(s string) string {
	t := xtransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := xtransform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

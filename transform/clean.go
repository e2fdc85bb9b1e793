package transform

import (
	"regexp"
	"strings"
)

var (
	digits          = regexp.MustCompile(`\d`)
	punctuation     = regexp.MustCompile(`[[:punct:]]`)
	specialChars    = regexp.MustCompile(`[^a-zA-Z0-9 ]`)
	nonAlphaNumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// RemoveWhitespace deletes every white-space character.
func RemoveWhitespace(s string) string { return whitespaceRun.ReplaceAllString(s, "") }

// RemoveDigits deletes ASCII digits.
func RemoveDigits(s string) string { return digits.ReplaceAllString(s, "") }

// RemovePunctuation deletes ASCII punctuation.
func RemovePunctuation(s string) string { return punctuation.ReplaceAllString(s, "") }

// RemoveSpecialChars keeps only ASCII letters, digits and spaces.
func RemoveSpecialChars(s string) string { return specialChars.ReplaceAllString(s, "") }

// RemoveNonAlphaNumeric keeps only ASCII letters and digits.
func RemoveNonAlphaNumeric(s string) string { return nonAlphaNumeric.ReplaceAllString(s, "") }

// Clean is RemoveSpecialChars followed by Trim.
func Clean(s string) string { return strings.TrimSpace(RemoveSpecialChars(s)) }

// KeepOnly returns a step keeping only the runes found in allowed. An empty
// allowed set yields "".
func KeepOnly(allowed string) func(string) string {
	return func(s string) string {
		return strings.Map(func(r rune) rune {
			if strings.ContainsRune(allowed, r) {
				return r
			}
			return -1
		}, s)
	}
}

// RemoveDuplicateWords keeps the first occurrence of every word, preserving
// order, and joins the survivors with single spaces.
func RemoveDuplicateWords(s string) string {
	words := strings.Fields(s)
	seen := make(map[string]struct{}, len(words))
	kept := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// RemoveBlankLines drops lines that are empty after trimming and joins the
// rest with [LineSeparator].
func RemoveBlankLines(s string) string {
	lines := Lines(s)
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, LineSeparator)
}

// IfBlank returns a step substituting fallback for blank input.
func IfBlank(fallback string) func(string) string {
	return func(s string) string {
		if IsBlank(s) {
			return fallback
		}
		return s
	}
}

// IfEmpty returns a step substituting fallback for empty input.
func IfEmpty(fallback string) func(string) string {
	return func(s string) string {
		if s == "" {
			return fallback
		}
		return s
	}
}

// OrEmpty maps blank input to "".
func OrEmpty(s string) string { return IfBlank("")(s) }

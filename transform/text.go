package transform

import (
	"regexp"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineSeparator joins lines rebuilt by RemoveBlankLines.
var LineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

var lineBreak = regexp.MustCompile("\r\n|[\n\v\f\r\u0085\u2028\u2029]")

// Lines splits s on any line terminator. Trailing empty lines are dropped;
// an empty input is a single empty line.
func Lines(s string) []string {
	return dropTrailingEmpty(lineBreak.Split(s, -1), s)
}

// Words returns the white-space separated words of s.
func Words(s string) []string { return strings.Fields(s) }

// Split splits s around matches of expr, dropping trailing empty parts.
func Split(s, expr string) ([]string, error) {
	re, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return dropTrailingEmpty(re.Split(s, -1), s), nil
}

func dropTrailingEmpty(parts []string, s string) []string {
	if s == "" {
		return []string{""}
	}
	n := len(parts)
	for n > 0 && parts[n-1] == "" {
		n--
	}
	return parts[:n]
}

// WordCount returns the number of white-space separated words.
func WordCount(s string) int { return len(strings.Fields(s)) }

// CharCount returns the number of runes that are not white space.
func CharCount(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Len returns the rune length of s.
func Len(s string) int { return utf8.RuneCountInString(s) }

// CountOccurrences counts non-overlapping occurrences of sub. An empty sub
// counts zero.
func CountOccurrences(s, sub string) int {
	if sub == "" {
		return 0
	}
	return strings.Count(s, sub)
}

package transform

import (
	"strings"
	"unicode/utf8"
)

// Append returns a step adding suffix to the end of its input.
func Append(suffix string) func(string) string {
	return func(s string) string { return s + suffix }
}

// Prepend returns a step adding prefix to the start of its input.
func Prepend(prefix string) func(string) string {
	return func(s string) string { return prefix + s }
}

// Replace returns a step replacing every literal occurrence of old with repl.
func Replace(old, repl string) func(string) string {
	return func(s string) string { return strings.ReplaceAll(s, old, repl) }
}

// PadLeft returns a step that left-pads its input with pad up to width
// runes. Inputs already at least width runes long are returned unchanged.
func PadLeft(width int, pad rune) func(string) string {
	return func(s string) string {
		n := width - utf8.RuneCountInString(s)
		if n <= 0 {
			return s
		}
		return strings.Repeat(string(pad), n) + s
	}
}

// PadRight is PadLeft padding on the right.
func PadRight(width int, pad rune) func(string) string {
	return func(s string) string {
		n := width - utf8.RuneCountInString(s)
		if n <= 0 {
			return s
		}
		return s + strings.Repeat(string(pad), n)
	}
}

// Center pads both sides up to width runes. When the padding is odd the
// extra rune goes on the right.
func Center(width int, pad rune) func(string) string {
	return func(s string) string {
		n := width - utf8.RuneCountInString(s)
		if n <= 0 {
			return s
		}
		left := n / 2
		return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
	}
}

// Truncate cuts inputs longer than limit runes so that the result, ellipsis
// included, is limit runes long.
func Truncate(limit int, ellipsis string) func(string) string {
	return func(s string) string {
		runes := []rune(s)
		if len(runes) <= limit {
			return s
		}
		keep := limit - utf8.RuneCountInString(ellipsis)
		if keep < 0 {
			keep = 0
		}
		return string(runes[:keep]) + ellipsis
	}
}

// TruncateWords keeps the first n words joined by single spaces. n <= 0
// yields "", and inputs with at most n words are returned unchanged.
func TruncateWords(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		words := strings.Fields(s)
		if len(words) <= n {
			return s
		}
		return strings.Join(words[:n], " ")
	}
}

// Repeat returns a step concatenating n copies of its input; n <= 0 yields "".
func Repeat(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		return strings.Repeat(s, n)
	}
}

// Indent prefixes the input with n spaces.
func Indent(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return s
		}
		return strings.Repeat(" ", n) + s
	}
}

// Wrap puts w on both sides of the input unconditionally.
func Wrap(w string) func(string) string {
	return func(s string) string { return w + s + w }
}

// WithPrefix adds prefix unless the input already starts with it.
func WithPrefix(prefix string) func(string) string {
	return func(s string) string {
		if strings.HasPrefix(s, prefix) {
			return s
		}
		return prefix + s
	}
}

// WithSuffix adds suffix unless the input already ends with it.
func WithSuffix(suffix string) func(string) string {
	return func(s string) string {
		if strings.HasSuffix(s, suffix) {
			return s
		}
		return s + suffix
	}
}

// Reverse reverses the runes of s.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ReverseWords reverses the word order, joining with single spaces.
func ReverseWords(s string) string {
	words := strings.Fields(s)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

// Substring returns the runes in [begin, end).
func Substring(begin, end int) func(string) (string, error) {
	return func(s string) (string, error) {
		runes := []rune(s)
		if begin < 0 || end > len(runes) || begin > end {
			return "", &IndexError{Begin: begin, End: end, Len: len(runes)}
		}
		return string(runes[begin:end]), nil
	}
}

// SubstringFrom returns the runes from begin to the end of the input.
func SubstringFrom(begin int) func(string) (string, error) {
	return func(s string) (string, error) {
		n := utf8.RuneCountInString(s)
		if begin < 0 || begin > n {
			return "", &IndexError{Begin: begin, End: n, Len: n}
		}
		return string([]rune(s)[begin:]), nil
	}
}

package transform

import (
	"regexp"
	"regexp/syntax"
)

// Compile compiles expr, reporting failures as [*PatternError].
func Compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	return re, nil
}

// ReplaceAll returns a step replacing every match of expr with repl. Inside
// repl, $1 or ${name} refer to capture groups. The expression is compiled
// once; a compile failure is returned by every call of the step.
func ReplaceAll(expr, repl string) func(string) (string, error) {
	re, err := Compile(expr)
	return func(s string) (string, error) {
		if err != nil {
			return "", err
		}
		return re.ReplaceAllString(s, repl), nil
	}
}

// ReplaceFirst is ReplaceAll limited to the leftmost match.
func ReplaceFirst(expr, repl string) func(string) (string, error) {
	re, err := Compile(expr)
	return func(s string) (string, error) {
		if err != nil {
			return "", err
		}
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			return s, nil
		}
		out := re.ExpandString(nil, repl, s, loc)
		return s[:loc[0]] + string(out) + s[loc[1]:], nil
	}
}

// FirstMatch returns the leftmost match of expr in s, if any.
func FirstMatch(s, expr string) (string, bool, error) {
	re, err := Compile(expr)
	if err != nil {
		return "", false, err
	}
	loc := re.FindStringIndex(s)
	if loc == nil {
		return "", false, nil
	}
	return s[loc[0]:loc[1]], true, nil
}

// AllMatches returns every successive match of expr in s. No match yields
// an empty, non-nil slice.
func AllMatches(s, expr string) ([]string, error) {
	re, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	matches := re.FindAllString(s, -1)
	if matches == nil {
		matches = []string{}
	}
	return matches, nil
}

// CountMatches returns the number of successive matches of expr in s.
func CountMatches(s, expr string) (int, error) {
	matches, err := AllMatches(s, expr)
	return len(matches), err
}

// Matches reports whether expr matches the whole of s.
func Matches(s, expr string) (bool, error) {
	re, err := Compile(expr)
	if err != nil {
		return false, err
	}
	re.Longest()
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s), nil
}

// Anchored returns expr wrapped so that it must match a whole string, as
// used in schema patterns. Expressions that cannot be wrapped verbatim,
// such as an unterminated \Q quote, are wrapped in their parsed form.
func Anchored(expr string) (string, error) {
	if _, err := Compile(expr); err != nil {
		return "", err
	}
	if full := `^(?:` + expr + `)$`; isValid(full) {
		return full, nil
	}
	tree, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return "", &PatternError{Expr: expr, Err: err}
	}
	return `^(?:` + tree.String() + `)$`, nil
}

func isValid(expr string) bool {
	_, err := regexp.Compile(expr)
	return err == nil
}

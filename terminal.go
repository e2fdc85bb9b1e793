package fluentstr

import (
	"golang.org/x/text/language"
)

// terminal collects p and applies rule to the result.
func terminal[T any](p *Pipeline, rule func(Value) T) (T, error) {
	v, err := p.ToValue()
	if err != nil {
		var zero T
		return zero, err
	}
	return rule(v), nil
}

func terminalE[T any](p *Pipeline, rule func(Value) (T, error)) (T, error) {
	v, err := p.ToValue()
	if err != nil {
		var zero T
		return zero, err
	}
	return rule(v)
}

func strs(vs []Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.current
	}
	return out
}

func (p *Pipeline) IsEmpty() (bool, error)           { return terminal(p, Value.IsEmpty) }
func (p *Pipeline) IsBlank() (bool, error)           { return terminal(p, Value.IsBlank) }
func (p *Pipeline) HasOnlyWhitespace() (bool, error) { return terminal(p, Value.HasOnlyWhitespace) }
func (p *Pipeline) IsUpperCase() (bool, error)       { return terminal(p, Value.IsUpperCase) }
func (p *Pipeline) IsLowerCase() (bool, error)       { return terminal(p, Value.IsLowerCase) }
func (p *Pipeline) IsAlpha() (bool, error)           { return terminal(p, Value.IsAlpha) }
func (p *Pipeline) IsNumeric() (bool, error)         { return terminal(p, Value.IsNumeric) }
func (p *Pipeline) IsAlphaNumeric() (bool, error)    { return terminal(p, Value.IsAlphaNumeric) }
func (p *Pipeline) IsEmail() (bool, error)           { return terminal(p, Value.IsEmail) }
func (p *Pipeline) IsPalindrome() (bool, error)      { return terminal(p, Value.IsPalindrome) }
func (p *Pipeline) IsXML() (bool, error)             { return terminal(p, Value.IsXML) }

func (p *Pipeline) Contains(sub string) (bool, error) {
	return terminal(p, func(v Value) bool { return v.Contains(sub) })
}

func (p *Pipeline) StartsWith(prefix string) (bool, error) {
	return terminal(p, func(v Value) bool { return v.StartsWith(prefix) })
}

func (p *Pipeline) EndsWith(suffix string) (bool, error) {
	return terminal(p, func(v Value) bool { return v.EndsWith(suffix) })
}

func (p *Pipeline) EqualsIgnoreCase(other string) (bool, error) {
	return terminal(p, func(v Value) bool { return v.EqualsIgnoreCase(other) })
}

func (p *Pipeline) HasLength(n int) (bool, error) {
	return terminal(p, func(v Value) bool { return v.HasLength(n) })
}

func (p *Pipeline) CharFrequency() (*Frequency[rune], error) {
	return terminal(p, Value.CharFrequency)
}

func (p *Pipeline) CharFrequencyFold() (*Frequency[rune], error) {
	return terminal(p, Value.CharFrequencyFold)
}

func (p *Pipeline) WordFrequency() (*Frequency[string], error) {
	return terminal(p, Value.WordFrequency)
}

func (p *Pipeline) WordFrequencyFold() (*Frequency[string], error) {
	return terminal(p, Value.WordFrequencyFold)
}

func (p *Pipeline) CharFrequencyJSON() (string, error) { return terminal(p, Value.CharFrequencyJSON) }
func (p *Pipeline) WordFrequencyJSON() (string, error) { return terminal(p, Value.WordFrequencyJSON) }
func (p *Pipeline) WordCount() (int, error)            { return terminal(p, Value.WordCount) }
func (p *Pipeline) CharCount() (int, error)            { return terminal(p, Value.CharCount) }
func (p *Pipeline) LineCount() (int, error)            { return terminal(p, Value.LineCount) }

func (p *Pipeline) CountOccurrences(sub string) (int, error) {
	return terminal(p, func(v Value) int { return v.CountOccurrences(sub) })
}

// Lines collects and splits the result on any line terminator.
func (p *Pipeline) Lines() ([]string, error) {
	return terminal(p, func(v Value) []string { return strs(v.Lines()) })
}

// Words collects and splits the result on white space.
func (p *Pipeline) Words() ([]string, error) {
	return terminal(p, func(v Value) []string { return strs(v.Words()) })
}

// Split collects and splits the result around matches of expr.
func (p *Pipeline) Split(expr string) ([]string, error) {
	return terminalE(p, func(v Value) ([]string, error) {
		parts, err := v.Split(expr)
		return strs(parts), err
	})
}

func (p *Pipeline) Matches(expr string) (bool, error) {
	return terminalE(p, func(v Value) (bool, error) { return v.Matches(expr) })
}

// FirstMatch collects and returns the leftmost match of expr, if any.
func (p *Pipeline) FirstMatch(expr string) (string, bool, error) {
	v, err := p.ToValue()
	if err != nil {
		return "", false, err
	}
	return v.FirstMatch(expr)
}

func (p *Pipeline) AllMatches(expr string) ([]string, error) {
	return terminalE(p, func(v Value) ([]string, error) { return v.AllMatches(expr) })
}

func (p *Pipeline) CountMatches(expr string) (int, error) {
	return terminalE(p, func(v Value) (int, error) { return v.CountMatches(expr) })
}

func (p *Pipeline) CompareIgnoreCase(other string, tag language.Tag) (int, error) {
	return terminal(p, func(v Value) int { return v.CompareIgnoreCase(other, tag) })
}

// Filter collects and reports whether pred holds. The returned pipeline is
// p itself, not a copy.
func (p *Pipeline) Filter(pred func(string) bool) (*Pipeline, bool, error) {
	ok, err := terminal(p, func(v Value) bool { return pred(v.current) })
	if err != nil || !ok {
		return nil, false, err
	}
	return p, true, nil
}

func (p *Pipeline) ToBuilder() (*Builder, error)     { return terminal(p, Value.ToBuilder) }
func (p *Pipeline) Convert() (Parser, error)         { return terminal(p, Value.Convert) }
func (p *Pipeline) AssertThat() (*Assertions, error) { return terminal(p, Value.AssertThat) }

package fluentstr

import (
	"golang.org/x/text/language"

	"github.com/Gobd/fluentstr/transform"
)

type stage func(string) (string, error)

// Pipeline records steps and runs them over its original input only when a
// terminal method asks for a result. Every step method appends to the
// receiver and returns it.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	original string
	steps    []stage
}

// NewPipeline returns an empty pipeline over s.
func NewPipeline(s string) *Pipeline {
	return &Pipeline{original: s}
}

// Original returns the input every Collect starts from.
func (p *Pipeline) Original() string { return p.original }

// Len returns the number of recorded steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// Collect folds every recorded step over the original input, left to
// right. Nothing is cached: each call re-runs all steps, so steps added
// after a Collect take effect on the next one. The first failing step
// aborts the fold and its error is returned as is.
func (p *Pipeline) Collect() (string, error) { return p.run(p.original) }

func (p *Pipeline) run(s string) (string, error) {
	for _, st := range p.steps {
		var err error
		if s, err = st(s); err != nil {
			return "", err
		}
	}
	return s, nil
}

// ApplyStruct runs the recorded steps over every string field of the
// struct v points to, recursing into nested structs, slices and maps.
// Fields that fail keep their value; the first error is returned.
func (p *Pipeline) ApplyStruct(v any) error {
	var first error
	transform.StructStringFunc(v, func(s string) string {
		out, err := p.run(s)
		if err != nil {
			if first == nil {
				first = err
			}
			return s
		}
		return out
	})
	return first
}

// String returns the collected result, or "" when collecting fails.
func (p *Pipeline) String() string {
	s, err := p.Collect()
	if err != nil {
		return ""
	}
	return s
}

// ToValue collects and wraps the result in a Value with the same original.
func (p *Pipeline) ToValue() (Value, error) {
	s, err := p.Collect()
	if err != nil {
		return Value{}, err
	}
	return Value{original: p.original, current: s}, nil
}

func (p *Pipeline) add(st stage) *Pipeline {
	p.steps = append(p.steps, st)
	return p
}

func (p *Pipeline) step(f Step) *Pipeline {
	return p.add(func(s string) (string, error) { return f(s), nil })
}

// AddStep appends fn.
func (p *Pipeline) AddStep(fn Step) *Pipeline { return p.step(fn) }

// Map is an alias for AddStep.
func (p *Pipeline) Map(fn Step) *Pipeline { return p.step(fn) }

// Transform is an alias for AddStep.
func (p *Pipeline) Transform(fn Step) *Pipeline { return p.step(fn) }

// Apply appends a Transformer plugin.
func (p *Pipeline) Apply(t Transformer) *Pipeline { return p.step(t.Transform) }

func (p *Pipeline) Trim() *Pipeline                  { return p.step(transform.Trim) }
func (p *Pipeline) ToLower() *Pipeline               { return p.step(transform.Lower) }
func (p *Pipeline) ToUpper() *Pipeline               { return p.step(transform.Upper) }
func (p *Pipeline) Capitalize() *Pipeline            { return p.step(transform.Capitalize) }
func (p *Pipeline) TitleCase() *Pipeline             { return p.step(transform.TitleCase) }
func (p *Pipeline) CapitalizeWords() *Pipeline       { return p.step(transform.TitleCase) }
func (p *Pipeline) StartCase() *Pipeline             { return p.step(transform.TitleCase) }
func (p *Pipeline) CamelCase() *Pipeline             { return p.step(transform.CamelCase) }
func (p *Pipeline) SnakeCase() *Pipeline             { return p.step(transform.SnakeCase) }
func (p *Pipeline) KebabCase() *Pipeline             { return p.step(transform.KebabCase) }
func (p *Pipeline) Slug() *Pipeline                  { return p.step(transform.Slug) }
func (p *Pipeline) Reverse() *Pipeline               { return p.step(transform.Reverse) }
func (p *Pipeline) ReverseWords() *Pipeline          { return p.step(transform.ReverseWords) }
func (p *Pipeline) Initials() *Pipeline              { return p.step(transform.Initials) }
func (p *Pipeline) Normalize() *Pipeline             { return p.step(transform.Normalize) }
func (p *Pipeline) StripAccents() *Pipeline          { return p.step(transform.StripAccents) }
func (p *Pipeline) EscapeHTML() *Pipeline            { return p.step(transform.EscapeHTML) }
func (p *Pipeline) UnescapeHTML() *Pipeline          { return p.step(transform.UnescapeHTML) }
func (p *Pipeline) EscapeXML() *Pipeline             { return p.step(transform.EscapeXML) }
func (p *Pipeline) UnescapeXML() *Pipeline           { return p.step(transform.UnescapeXML) }
func (p *Pipeline) ToBase64() *Pipeline              { return p.step(transform.ToBase64) }
func (p *Pipeline) URLEncode() *Pipeline             { return p.step(transform.URLEncode) }
func (p *Pipeline) RemoveWhitespace() *Pipeline      { return p.step(transform.RemoveWhitespace) }
func (p *Pipeline) RemoveDigits() *Pipeline          { return p.step(transform.RemoveDigits) }
func (p *Pipeline) RemovePunctuation() *Pipeline     { return p.step(transform.RemovePunctuation) }
func (p *Pipeline) RemoveSpecialChars() *Pipeline    { return p.step(transform.RemoveSpecialChars) }
func (p *Pipeline) RemoveNonAlphaNumeric() *Pipeline { return p.step(transform.RemoveNonAlphaNumeric) }
func (p *Pipeline) Clean() *Pipeline                 { return p.step(transform.Clean) }
func (p *Pipeline) RemoveDuplicateWords() *Pipeline  { return p.step(transform.RemoveDuplicateWords) }
func (p *Pipeline) RemoveBlankLines() *Pipeline      { return p.step(transform.RemoveBlankLines) }
func (p *Pipeline) OrEmpty() *Pipeline               { return p.step(transform.OrEmpty) }

func (p *Pipeline) Append(s string) *Pipeline          { return p.step(transform.Append(s)) }
func (p *Pipeline) Prepend(s string) *Pipeline         { return p.step(transform.Prepend(s)) }
func (p *Pipeline) Replace(old, repl string) *Pipeline { return p.step(transform.Replace(old, repl)) }
func (p *Pipeline) Repeat(n int) *Pipeline             { return p.step(transform.Repeat(n)) }
func (p *Pipeline) Indent(n int) *Pipeline             { return p.step(transform.Indent(n)) }
func (p *Pipeline) Wrap(w string) *Pipeline            { return p.step(transform.Wrap(w)) }
func (p *Pipeline) WithPrefix(prefix string) *Pipeline { return p.step(transform.WithPrefix(prefix)) }
func (p *Pipeline) WithSuffix(suffix string) *Pipeline { return p.step(transform.WithSuffix(suffix)) }
func (p *Pipeline) KeepOnly(allowed string) *Pipeline  { return p.step(transform.KeepOnly(allowed)) }
func (p *Pipeline) TruncateWords(n int) *Pipeline      { return p.step(transform.TruncateWords(n)) }
func (p *Pipeline) IfBlank(fallback string) *Pipeline  { return p.step(transform.IfBlank(fallback)) }
func (p *Pipeline) OrElse(fallback string) *Pipeline   { return p.step(transform.IfBlank(fallback)) }
func (p *Pipeline) IfEmpty(fallback string) *Pipeline  { return p.step(transform.IfEmpty(fallback)) }

func (p *Pipeline) PadLeft(width int, pad rune) *Pipeline {
	return p.step(transform.PadLeft(width, pad))
}

func (p *Pipeline) PadRight(width int, pad rune) *Pipeline {
	return p.step(transform.PadRight(width, pad))
}

func (p *Pipeline) Center(width int, pad rune) *Pipeline {
	return p.step(transform.Center(width, pad))
}

func (p *Pipeline) Truncate(limit int, ellipsis string) *Pipeline {
	return p.step(transform.Truncate(limit, ellipsis))
}

func (p *Pipeline) TitleCaseLocale(tag language.Tag) *Pipeline {
	return p.step(transform.TitleCaseLocale(tag))
}

func (p *Pipeline) LowerLocale(tag language.Tag) *Pipeline {
	return p.step(transform.LowerLocale(tag))
}

func (p *Pipeline) UpperLocale(tag language.Tag) *Pipeline {
	return p.step(transform.UpperLocale(tag))
}

// Substring records a rune slice; out of range indices fail the collect
// with an *IndexError.
func (p *Pipeline) Substring(begin, end int) *Pipeline {
	return p.add(transform.Substring(begin, end))
}

func (p *Pipeline) SubstringFrom(begin int) *Pipeline {
	return p.add(transform.SubstringFrom(begin))
}

// ReplaceAll records a regular expression replacement. A bad expression
// fails the collect with a *PatternError.
func (p *Pipeline) ReplaceAll(expr, repl string) *Pipeline {
	return p.add(transform.ReplaceAll(expr, repl))
}

func (p *Pipeline) ReplaceFirst(expr, repl string) *Pipeline {
	return p.add(transform.ReplaceFirst(expr, repl))
}

// FromBase64 records a decode that fails the collect with a *CodecError
// on malformed input.
func (p *Pipeline) FromBase64() *Pipeline { return p.add(transform.FromBase64) }

func (p *Pipeline) URLDecode() *Pipeline { return p.add(transform.URLDecode) }

// Validate records a check that fails the collect with a ValidationError
// carrying message when pred does not hold.
func (p *Pipeline) Validate(pred func(string) bool, message string) *Pipeline {
	chk := check(pred, message)
	return p.add(func(s string) (string, error) {
		if err := chk(s); err != nil {
			return "", err
		}
		return s, nil
	})
}

// Safe records fn; an error or panic from fn leaves the value unchanged.
func (p *Pipeline) Safe(fn func(string) (string, error)) *Pipeline {
	return p.step(func(s string) string { return safely(fn, s) })
}

// IfCondition records fn, applied only when pred holds at that point.
func (p *Pipeline) IfCondition(pred func(string) bool, fn Step) *Pipeline {
	return p.step(func(s string) string {
		if !pred(s) {
			return s
		}
		return fn(s)
	})
}

// Peek records a call to observer with the value at this point.
func (p *Pipeline) Peek(observer func(string)) *Pipeline {
	return p.step(func(s string) string {
		observer(s)
		return s
	})
}

// Debug records a debug level log of the value at this point.
func (p *Pipeline) Debug() *Pipeline {
	idx := len(p.steps)
	return p.step(func(s string) string {
		debugLogger.Load().Debug().
			Int("step", idx).
			Str("input", p.original).
			Str("result", s).
			Msg("fluentstr pipeline")
		return s
	})
}

package fluentstr

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Assertions collects rules against a Value. Rules are checked in the order
// they were added; Err reports the first failure.
type Assertions struct {
	value Value
	rules []Rule
}

// AssertThat starts an assertion chain over v.
func AssertThat(v Value) *Assertions {
	return &Assertions{value: v}
}

// Rule adds r.
func (a *Assertions) Rule(r Rule) *Assertions {
	a.rules = append(a.rules, r)
	return a
}

func (a *Assertions) LengthBetween(lo, hi int) *Assertions { return a.Rule(LengthBetween(lo, hi)) }
func (a *Assertions) NotBlank(message string) *Assertions  { return a.Rule(NotBlank(message)) }
func (a *Assertions) HasAlphabetic() *Assertions           { return a.Rule(HasAlphabetic()) }
func (a *Assertions) NonCreditCardNumber() *Assertions     { return a.Rule(NonCreditCardNumber()) }
func (a *Assertions) Date(layout string) *Assertions       { return a.Rule(Date(layout)) }
func (a *Assertions) Describe(desc string) *Assertions     { return a.Rule(Describe(desc)) }
func (a *Assertions) Example(ex string) *Assertions        { return a.Rule(Example(ex)) }
func (a *Assertions) Default(s string) *Assertions         { return a.Rule(Default(s)) }
func (a *Assertions) OneOf(values ...string) *Assertions   { return a.Rule(OneOf(values...)) }
func (a *Assertions) Deprecated() *Assertions              { return a.Rule(Deprecated()) }

// SkipWhen stops the rules added after it from running when condition is
// true.
func (a *Assertions) SkipWhen(condition bool, desc string) *Assertions {
	return a.Rule(SkipWhen(condition, desc))
}

// When adds rules that only run when condition is true. Use
// a.Rule(When(...).Else(...)) for a two-way branch.
func (a *Assertions) When(condition bool, desc string, rules ...Rule) *Assertions {
	return a.Rule(When(condition, desc, rules...))
}

func (a *Assertions) Contains(sub, message string) *Assertions {
	return a.Rule(Contains(sub, message))
}

func (a *Assertions) Matches(expr, message string) *Assertions {
	return a.Rule(Matches(expr, message))
}

func (a *Assertions) Satisfies(f func(string) error, desc string) *Assertions {
	return a.Rule(Satisfies(f, desc))
}

// Err runs the rules and returns the first error, or nil.
func (a *Assertions) Err() error {
	return validation.Validate(a.value.current, convertRules(a.rules...)...)
}

// Get returns the asserted Value, or the first rule failure.
func (a *Assertions) Get() (Value, error) {
	if err := a.Err(); err != nil {
		return Value{}, err
	}
	return a.value, nil
}

package fluentstr

import (
	"github.com/Gobd/fluentstr/transform"
)

// OrElse returns Of(fallback) when the current result is blank, else v.
func (v Value) OrElse(fallback string) Value {
	if transform.IsBlank(v.current) {
		return Of(fallback)
	}
	return v
}

// IfBlank is an alias for OrElse.
func (v Value) IfBlank(fallback string) Value { return v.OrElse(fallback) }

// IfEmpty returns Of(fallback) when the current result is empty, else v.
func (v Value) IfEmpty(fallback string) Value {
	if v.current == "" {
		return Of(fallback)
	}
	return v
}

// OrEmpty returns Of("") when the current result is blank, else v.
func (v Value) OrEmpty() Value { return v.OrElse("") }

// Validate returns v when pred holds for the current result and a
// ValidationError carrying message otherwise.
func (v Value) Validate(pred func(string) bool, message string) (Value, error) {
	if err := check(pred, message)(v.current); err != nil {
		return Value{}, err
	}
	return v, nil
}

func check(pred func(string) bool, message string) func(string) error {
	return func(s string) error {
		if !pred(s) {
			return newValidationError(CodeValidationFailed, message)
		}
		return nil
	}
}

// Safe applies fn to the current result. If fn returns an error or panics,
// v is returned unchanged.
func (v Value) Safe(fn func(string) (string, error)) Value {
	return v.with(safely(fn, v.current))
}

func safely(fn func(string) (string, error), s string) (out string) {
	defer func() {
		if recover() != nil {
			out = s
		}
	}()
	res, err := fn(s)
	if err != nil {
		return s
	}
	return res
}

// Filter returns v and true when pred holds for the current result.
func (v Value) Filter(pred func(string) bool) (Value, bool) {
	if !pred(v.current) {
		return Value{}, false
	}
	return v, true
}

// IfCondition applies fn when pred holds for the current result.
func (v Value) IfCondition(pred func(string) bool, fn Step) Value {
	if !pred(v.current) {
		return v
	}
	return v.step(fn)
}

package fluentstr

// Condition is a pending two-way branch created by [Value.IfTrue]. Resolve
// it with [Condition.ElseTransform].
type Condition struct {
	original Value
	matched  bool
	result   Value
}

// IfTrue tests pred against the current result. When it holds the branch
// result is Of(then(current)); otherwise the branch waits for ElseTransform.
func (v Value) IfTrue(pred func(string) bool, then Step) Condition {
	c := Condition{original: v, matched: pred(v.current), result: v}
	if c.matched {
		c.result = Of(then(v.current))
	}
	return c
}

// Matched reports whether the predicate held.
func (c Condition) Matched() bool { return c.matched }

// ElseTransform resolves the branch. A matched condition yields the then
// result. Otherwise otherwise is applied to the value IfTrue was called
// on, and the result starts a new chain.
func (c Condition) ElseTransform(otherwise Step) Value {
	if c.matched {
		return c.result
	}
	return Of(otherwise(c.original.current))
}

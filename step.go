package fluentstr

// Step is a pure string transformation. Steps are the unit a Pipeline
// records and a Value applies immediately.
type Step func(string) string

// Transform calls f(s).
func (f Step) Transform(s string) string { return f(s) }

// Transformer is implemented by string transformation plugins.
type Transformer interface {
	Transform(s string) string
}

package fluentstr

import (
	"github.com/Gobd/fluentstr/transform"
)

// Frequency is an occurrence count that remembers first-seen key order.
type Frequency[K comparable] = transform.Frequency[K]

// OrderedMap is a map that keeps keys in first-set order.
type OrderedMap[K comparable, V any] = transform.OrderedMap[K, V]

// CharFrequency counts every rune of the current result.
func (v Value) CharFrequency() *Frequency[rune] { return transform.CharFrequency(v.current) }

// CharFrequencyFold is CharFrequency over the lower-cased result.
func (v Value) CharFrequencyFold() *Frequency[rune] { return transform.CharFrequencyFold(v.current) }

// WordFrequency counts the words of the current result.
func (v Value) WordFrequency() *Frequency[string] { return transform.WordFrequency(v.current) }

// WordFrequencyFold is WordFrequency over the lower-cased result.
func (v Value) WordFrequencyFold() *Frequency[string] { return transform.WordFrequencyFold(v.current) }

// CharFrequencyJSON renders CharFrequency as {"a":2,"b":1}.
func (v Value) CharFrequencyJSON() string { return v.CharFrequency().String() }

// WordFrequencyJSON renders WordFrequency as {"go":2,"is":1}.
func (v Value) WordFrequencyJSON() string { return v.WordFrequency().String() }

func (v Value) WordCount() int                  { return transform.WordCount(v.current) }
func (v Value) CharCount() int                  { return transform.CharCount(v.current) }
func (v Value) CountOccurrences(sub string) int { return transform.CountOccurrences(v.current, sub) }
func (v Value) LineCount() int                  { return len(transform.Lines(v.current)) }

// Lines splits the current result on any line terminator. Every line keeps
// the original input of v.
func (v Value) Lines() []Value { return v.each(transform.Lines(v.current)) }

// Words splits the current result on white space.
func (v Value) Words() []Value { return v.each(transform.Words(v.current)) }

// Split splits the current result around matches of expr.
func (v Value) Split(expr string) ([]Value, error) {
	parts, err := transform.Split(v.current, expr)
	if err != nil {
		return nil, err
	}
	return v.each(parts), nil
}

func (v Value) each(parts []string) []Value {
	out := make([]Value, len(parts))
	for i, p := range parts {
		out[i] = v.with(p)
	}
	return out
}

// Matches reports whether expr matches the whole current result.
func (v Value) Matches(expr string) (bool, error) { return transform.Matches(v.current, expr) }

// FirstMatch returns the leftmost match of expr. ok is false when nothing
// matches.
func (v Value) FirstMatch(expr string) (match string, ok bool, err error) {
	return transform.FirstMatch(v.current, expr)
}

// AllMatches returns every match of expr, or an empty slice.
func (v Value) AllMatches(expr string) ([]string, error) {
	return transform.AllMatches(v.current, expr)
}

// CountMatches returns the number of matches of expr.
func (v Value) CountMatches(expr string) (int, error) {
	return transform.CountMatches(v.current, expr)
}

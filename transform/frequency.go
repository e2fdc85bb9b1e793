package transform

import (
	"fmt"
	"iter"
	"strings"
)

// Frequency counts occurrences of keys and remembers the order in which
// keys were first seen.
type Frequency[K comparable] struct {
	keys   []K
	counts map[K]int
}

func newFrequency[K comparable]() *Frequency[K] {
	return &Frequency[K]{counts: map[K]int{}}
}

func (f *Frequency[K]) add(k K) {
	if _, ok := f.counts[k]; !ok {
		f.keys = append(f.keys, k)
	}
	f.counts[k]++
}

// Get returns the count for k, 0 when absent.
func (f *Frequency[K]) Get(k K) int { return f.counts[k] }

// Has reports whether k was seen.
func (f *Frequency[K]) Has(k K) bool {
	_, ok := f.counts[k]
	return ok
}

// Len returns the number of distinct keys.
func (f *Frequency[K]) Len() int { return len(f.keys) }

// Keys returns the distinct keys in first-seen order.
func (f *Frequency[K]) Keys() []K { return append([]K(nil), f.keys...) }

// All iterates over keys and counts in first-seen order.
func (f *Frequency[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for _, k := range f.keys {
			if !yield(k, f.counts[k]) {
				return
			}
		}
	}
}

// Map returns the counts as a plain map.
func (f *Frequency[K]) Map() map[K]int {
	m := make(map[K]int, len(f.counts))
	for k, n := range f.counts {
		m[k] = n
	}
	return m
}

// String renders the counts as a JSON-like object in first-seen order,
// e.g. {"a":2,"b":1}. Keys are not escaped.
func (f *Frequency[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `"%s":%d`, keyString(k), f.counts[k])
	}
	b.WriteByte('}')
	return b.String()
}

func keyString(k any) string {
	if r, ok := k.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(k)
}

// CharFrequency counts every rune of s.
func CharFrequency(s string) *Frequency[rune] {
	f := newFrequency[rune]()
	for _, r := range s {
		f.add(r)
	}
	return f
}

// CharFrequencyFold counts every rune of s after lower-casing.
func CharFrequencyFold(s string) *Frequency[rune] { return CharFrequency(strings.ToLower(s)) }

// WordFrequency counts the white-space separated words of s.
func WordFrequency(s string) *Frequency[string] {
	f := newFrequency[string]()
	for _, w := range strings.Fields(s) {
		f.add(w)
	}
	return f
}

// WordFrequencyFold counts words after lower-casing.
func WordFrequencyFold(s string) *Frequency[string] { return WordFrequency(strings.ToLower(s)) }

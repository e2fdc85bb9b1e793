// Package transform is the catalog of string transformations shared by
// [fluentstr.Value] and [fluentstr.Pipeline].
//
// Every transformation is a plain function. Total transformations have the
// shape func(string) string; parameterised ones are constructors returning
// that shape (PadLeft(5, '0')). Transformations that can fail (decoding,
// regular expressions, slicing) return func(string) (string, error) and
// report [*CodecError], [*PatternError] or [*IndexError].
//
// Lengths, padding widths and indices count runes, not bytes.
//
// The Struct helpers apply a transformation to every string field of a
// struct recursively, which is handy inside Normalize methods.
package transform

// Package fluentstr provides chainable string transformations in two
// forms that behave identically for the same sequence of operations.
//
// [Value] is eager and immutable. Every method returns a new Value holding
// the untouched original input and the new current result:
//
//	v := fluentstr.Of("  Hello, World!!  ").Trim().Slug()
//	v.Get()      // "hello-world"
//	v.Original() // "  Hello, World!!  "
//
// [Pipeline] is lazy and mutable. Step methods append to the pipeline and
// return it; nothing runs until a terminal method such as
// [Pipeline.Collect] folds the steps over the original input. Collect may
// be called any number of times and re-runs every step each time:
//
//	p := fluentstr.NewPipeline("  Hello, World!!  ").Trim().Slug()
//	s, err := p.Collect() // "hello-world", nil
//
// Both forms share the step catalog in the transform sub-package. Failing
// operations return typed errors: [*IndexError], [*CodecError],
// [*PatternError] and [ValidationError].
//
// [Value.AssertThat] starts an [Assertions] chain of rules that can also
// document themselves as an OpenAPI schema.
//
// Sub-packages:
//   - transform – the shared catalog of string steps, statistics and predicates
//   - recipe – named operations parsed from text and applicable to either form
package fluentstr

// Package recipe parses textual operation expressions such as "pad-left:8:0" or
// "replace-all:\s+:-" into operations that run either eagerly on a
// [fluentstr.Value] or lazily on a [fluentstr.Pipeline].
//
// An expression is an operation name followed by colon separated arguments. The
// last argument keeps any further colons, so "append:a:b" appends "a:b".
// Write `\:` for a colon inside an earlier argument, as in
// "replace-all:(?i\:ab):x".
package recipe

package recipe

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/Gobd/fluentstr"
)

var (
	// ErrUnknownOp is returned for an expression naming no registered operation.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArgs is returned for an expression with missing or malformed arguments.
	ErrArgs = errors.New("bad arguments")
)

type (
	eagerFunc func(fluentstr.Value) (fluentstr.Value, error)
	lazyFunc  func(*fluentstr.Pipeline) *fluentstr.Pipeline
)

// Op is one parsed operation.
type Op struct {
	Name  string
	Args  []string
	eager eagerFunc
	lazy  lazyFunc
}

// Eager applies the operation to v.
func (o Op) Eager(v fluentstr.Value) (fluentstr.Value, error) { return o.eager(v) }

// Lazy records the operation on p and returns p.
func (o Op) Lazy(p *fluentstr.Pipeline) *fluentstr.Pipeline { return o.lazy(p) }

func (o Op) String() string {
	parts := []string{o.Name}
	for i, a := range o.Args {
		if i < len(o.Args)-1 {
			a = strings.ReplaceAll(a, ":", `\:`)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, ":")
}

// Recipe is an ordered list of operations.
type Recipe []Op

// Value runs every operation eagerly over s and stops at the first error.
func (r Recipe) Value(s string) (fluentstr.Value, error) {
	v := fluentstr.Of(s)
	for _, op := range r {
		var err error
		if v, err = op.Eager(v); err != nil {
			return fluentstr.Value{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return v, nil
}

// Pipeline records every operation on a new pipeline over s.
func (r Recipe) Pipeline(s string) *fluentstr.Pipeline {
	p := fluentstr.NewPipeline(s)
	for _, op := range r {
		op.Lazy(p)
	}
	return p
}

// Parse parses a single expression.
func Parse(expr string) (Op, error) {
	name, rest, hasArgs := strings.Cut(expr, ":")
	e, ok := registry[name]
	if !ok {
		return Op{}, fmt.Errorf("%w %q", ErrUnknownOp, name)
	}
	var args []string
	if hasArgs && e.maxArgs > 0 {
		args = splitArgs(rest, e.maxArgs)
	}
	if len(args) < e.minArgs || (hasArgs && e.maxArgs == 0) {
		return Op{}, fmt.Errorf("%w: %s expects %s", ErrArgs, name, e.usage)
	}
	op, err := e.build(args)
	if err != nil {
		return Op{}, fmt.Errorf("%w: %s: %w", ErrArgs, name, err)
	}
	op.Name, op.Args = name, args
	return op, nil
}

// ParseAll parses each expression in order.
func ParseAll(exprs []string) (Recipe, error) {
	r := make(Recipe, 0, len(exprs))
	for _, expr := range exprs {
		op, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		r = append(r, op)
	}
	return r, nil
}

// Names returns the registered operation names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage returns the argument synopsis of name, e.g. "pad-left:<width>:<rune>".
// Colons inside an argument other than the last are written `\:`.
func Usage(name string) (string, bool) {
	e, ok := registry[name]
	if !ok {
		return "", false
	}
	if e.usage == "" {
		return name, true
	}
	return name + ":" + e.usage, true
}

// splitArgs splits rest on unescaped colons into at most n arguments. The
// last argument keeps any further colons. An escaped colon `\:` is a literal
// colon in every argument.
func splitArgs(rest string, n int) []string {
	var (
		args []string
		cur  strings.Builder
	)
	for i := 0; i < len(rest); i++ {
		switch {
		case rest[i] == '\\' && i+1 < len(rest) && rest[i+1] == ':':
			cur.WriteByte(':')
			i++
		case rest[i] == ':' && len(args) < n-1:
			args = append(args, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(rest[i])
		}
	}
	return append(args, cur.String())
}

func intArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}

func runeArg(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func tagArg(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%q is not a language tag", s)
	}
	return tag, nil
}

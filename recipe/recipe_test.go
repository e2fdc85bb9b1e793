package recipe_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/fluentstr"
	"github.com/Gobd/fluentstr/recipe"
)

var exprs = map[string]string{
	"append":         "append:!",
	"prepend":        "prepend:>> ",
	"wrap":           "wrap:*",
	"prefix":         "prefix:id-",
	"suffix":         "suffix:.txt",
	"keep-only":      "keep-only:aeiou ",
	"if-blank":       "if-blank:n/a",
	"if-empty":       "if-empty:n/a",
	"repeat":         "repeat:2",
	"indent":         "indent:4",
	"truncate-words": "truncate-words:2",
	"pad-left":       "pad-left:30:.",
	"pad-right":      "pad-right:30",
	"center":         "center:31:=",
	"replace-all":    `replace-all:\s+:_`,
	"replace-first":  "replace-first:(o)(.):$2$1",
	"title-locale":   "title-locale:tr",
	"lower-locale":   "lower-locale:tr",
	"upper-locale":   "upper-locale:tr",
	"replace":        "replace:o:0",
	"truncate":       "truncate:10",
	"substring":      "substring:2:8",
}

var inputs = []string{
	"",
	"   ",
	"  Hello, World!!  ",
	"the quick brown fox jumps over the lazy dog",
	"Crème Brûlée <b>&</b> 'tea'",
	"line one\n\n  \nline two\r\nline three",
	"istanbul izmir ISPARTA",
	"SGVsbG8sIFdvcmxkIQ==",
	"a%20b%2Bc",
}

func specFor(name string) string {
	if s, ok := exprs[name]; ok {
		return s
	}
	return name
}

func TestEagerMatchesLazy(t *testing.T) {
	for _, name := range recipe.Names() {
		op, err := recipe.Parse(specFor(name))
		require.NoError(t, err, name)

		for _, in := range inputs {
			t.Run(name+"/"+in, func(t *testing.T) {
				v, eagerErr := op.Eager(fluentstr.Of(in))
				got, lazyErr := op.Lazy(fluentstr.NewPipeline(in)).Collect()

				if eagerErr != nil {
					require.Error(t, lazyErr)
					assert.Equal(t, eagerErr.Error(), lazyErr.Error())
					return
				}
				require.NoError(t, lazyErr)
				assert.Equal(t, v.Get(), got)
			})
		}
	}
}

func TestEagerMatchesLazy_Chained(t *testing.T) {
	r, err := recipe.ParseAll([]string{
		"trim", "lower", `replace-all:[^a-z0-9\s]:`, "dedupe-words", "kebab", "pad-left:24:-", "upper",
	})
	require.NoError(t, err)

	for _, in := range inputs {
		v, err := r.Value(in)
		require.NoError(t, err)
		got, err := r.Pipeline(in).Collect()
		require.NoError(t, err)
		assert.Equal(t, v.Get(), got, in)
	}
}

func TestParse(t *testing.T) {
	op, err := recipe.Parse("append:a:b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:b"}, op.Args)
	assert.Equal(t, "append:a:b", op.String())

	v, err := op.Eager(fluentstr.Of("x"))
	require.NoError(t, err)
	assert.Equal(t, "xa:b", v.Get())

	op, err = recipe.Parse("truncate:8")
	require.NoError(t, err)
	v, err = op.Eager(fluentstr.Of("Hello, World"))
	require.NoError(t, err)
	assert.Equal(t, "Hello...", v.Get())
}

func TestParse_EscapedColon(t *testing.T) {
	op, err := recipe.Parse(`replace-all:(?i\:ab):x`)
	require.NoError(t, err)
	assert.Equal(t, []string{"(?i:ab)", "x"}, op.Args)
	assert.Equal(t, `replace-all:(?i\:ab):x`, op.String())

	v, err := op.Eager(fluentstr.Of("AB-ab-Ab"))
	require.NoError(t, err)
	assert.Equal(t, "x-x-x", v.Get())

	got, err := op.Lazy(fluentstr.NewPipeline("AB-ab-Ab")).Collect()
	require.NoError(t, err)
	assert.Equal(t, v.Get(), got)

	op, err = recipe.Parse(`replace:a\:b:c:d`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a:b", "c:d"}, op.Args)

	op, err = recipe.Parse(`replace-all:\d+:#`)
	require.NoError(t, err)
	assert.Equal(t, []string{`\d+`, "#"}, op.Args)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		expr string
		err  error
	}{
		{expr: "shout", err: recipe.ErrUnknownOp},
		{expr: "trim:now", err: recipe.ErrArgs},
		{expr: "append", err: recipe.ErrArgs},
		{expr: "repeat:twice", err: recipe.ErrArgs},
		{expr: "pad-left:5:ab", err: recipe.ErrArgs},
		{expr: "title-locale:!!", err: recipe.ErrArgs},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := recipe.Parse(tt.expr)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRecipe_ValueError(t *testing.T) {
	r, err := recipe.ParseAll([]string{"trim", "base64-decode", "upper"})
	require.NoError(t, err)

	_, err = r.Value("not base64!")
	require.Error(t, err)
	var codecErr *fluentstr.CodecError
	assert.True(t, errors.As(err, &codecErr))
	assert.Contains(t, err.Error(), "base64-decode")

	_, err = r.Pipeline("not base64!").Collect()
	assert.True(t, errors.As(err, &codecErr))
}

func TestUsage(t *testing.T) {
	u, ok := recipe.Usage("pad-left")
	assert.True(t, ok)
	assert.Equal(t, "pad-left:<width>[:<rune>]", u)

	u, ok = recipe.Usage("trim")
	assert.True(t, ok)
	assert.Equal(t, "trim", u)

	_, ok = recipe.Usage("nope")
	assert.False(t, ok)
}

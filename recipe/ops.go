package recipe

import (
	"golang.org/x/text/language"

	"github.com/Gobd/fluentstr"
)

type (
	value    = fluentstr.Value
	pipeline = fluentstr.Pipeline
)

type entry struct {
	minArgs, maxArgs int
	usage            string
	build            func(args []string) (Op, error)
}

// pure registers a total operation without arguments.
func pure(eager func(value) value, lazy lazyFunc) entry {
	return entry{build: func([]string) (Op, error) { return total(eager, lazy), nil }}
}

// fallible registers an operation without arguments that may fail.
func fallible(eager eagerFunc, lazy lazyFunc) entry {
	return entry{build: func([]string) (Op, error) { return Op{eager: eager, lazy: lazy}, nil }}
}

func total(eager func(value) value, lazy lazyFunc) Op {
	return Op{
		eager: func(v value) (value, error) { return eager(v), nil },
		lazy:  lazy,
	}
}

func withArgs(minArgs, maxArgs int, usage string, build func(args []string) (Op, error)) entry {
	return entry{minArgs: minArgs, maxArgs: maxArgs, usage: usage, build: build}
}

func oneString(usage string, eager func(value, string) value, lazy func(*pipeline, string) *pipeline) entry {
	return withArgs(1, 1, usage, func(args []string) (Op, error) {
		a := args[0]
		return total(
			func(v value) value { return eager(v, a) },
			func(p *pipeline) *pipeline { return lazy(p, a) },
		), nil
	})
}

func oneInt(usage string, eager func(value, int) value, lazy func(*pipeline, int) *pipeline) entry {
	return withArgs(1, 1, usage, func(args []string) (Op, error) {
		n, err := intArg(args[0])
		if err != nil {
			return Op{}, err
		}
		return total(
			func(v value) value { return eager(v, n) },
			func(p *pipeline) *pipeline { return lazy(p, n) },
		), nil
	})
}

func padding(eager func(value, int, rune) value, lazy func(*pipeline, int, rune) *pipeline) entry {
	return withArgs(1, 2, "<width>[:<rune>]", func(args []string) (Op, error) {
		n, err := intArg(args[0])
		if err != nil {
			return Op{}, err
		}
		pad := ' '
		if len(args) > 1 {
			if pad, err = runeArg(args[1]); err != nil {
				return Op{}, err
			}
		}
		return total(
			func(v value) value { return eager(v, n, pad) },
			func(p *pipeline) *pipeline { return lazy(p, n, pad) },
		), nil
	})
}

func regex(eager func(value, string, string) (value, error), lazy func(*pipeline, string, string) *pipeline) entry {
	return withArgs(1, 2, "<regexp>[:<replacement>]", func(args []string) (Op, error) {
		expr, repl := args[0], ""
		if len(args) > 1 {
			repl = args[1]
		}
		return Op{
			eager: func(v value) (value, error) { return eager(v, expr, repl) },
			lazy:  func(p *pipeline) *pipeline { return lazy(p, expr, repl) },
		}, nil
	})
}

func locale(eager func(value, language.Tag) value, lazy func(*pipeline, language.Tag) *pipeline) entry {
	return withArgs(1, 1, "<language>", func(args []string) (Op, error) {
		tag, err := tagArg(args[0])
		if err != nil {
			return Op{}, err
		}
		return total(
			func(v value) value { return eager(v, tag) },
			func(p *pipeline) *pipeline { return lazy(p, tag) },
		), nil
	})
}

var registry = map[string]entry{
	"trim":               pure(value.Trim, (*pipeline).Trim),
	"lower":              pure(value.ToLower, (*pipeline).ToLower),
	"upper":              pure(value.ToUpper, (*pipeline).ToUpper),
	"capitalize":         pure(value.Capitalize, (*pipeline).Capitalize),
	"title":              pure(value.TitleCase, (*pipeline).TitleCase),
	"camel":              pure(value.CamelCase, (*pipeline).CamelCase),
	"snake":              pure(value.SnakeCase, (*pipeline).SnakeCase),
	"kebab":              pure(value.KebabCase, (*pipeline).KebabCase),
	"slug":               pure(value.Slug, (*pipeline).Slug),
	"reverse":            pure(value.Reverse, (*pipeline).Reverse),
	"reverse-words":      pure(value.ReverseWords, (*pipeline).ReverseWords),
	"initials":           pure(value.Initials, (*pipeline).Initials),
	"normalize":          pure(value.Normalize, (*pipeline).Normalize),
	"strip-accents":      pure(value.StripAccents, (*pipeline).StripAccents),
	"escape-html":        pure(value.EscapeHTML, (*pipeline).EscapeHTML),
	"unescape-html":      pure(value.UnescapeHTML, (*pipeline).UnescapeHTML),
	"escape-xml":         pure(value.EscapeXML, (*pipeline).EscapeXML),
	"unescape-xml":       pure(value.UnescapeXML, (*pipeline).UnescapeXML),
	"base64":             pure(value.ToBase64, (*pipeline).ToBase64),
	"url-encode":         pure(value.URLEncode, (*pipeline).URLEncode),
	"remove-whitespace":  pure(value.RemoveWhitespace, (*pipeline).RemoveWhitespace),
	"remove-digits":      pure(value.RemoveDigits, (*pipeline).RemoveDigits),
	"remove-punctuation": pure(value.RemovePunctuation, (*pipeline).RemovePunctuation),
	"remove-special":     pure(value.RemoveSpecialChars, (*pipeline).RemoveSpecialChars),
	"remove-non-alnum":   pure(value.RemoveNonAlphaNumeric, (*pipeline).RemoveNonAlphaNumeric),
	"clean":              pure(value.Clean, (*pipeline).Clean),
	"dedupe-words":       pure(value.RemoveDuplicateWords, (*pipeline).RemoveDuplicateWords),
	"remove-blank-lines": pure(value.RemoveBlankLines, (*pipeline).RemoveBlankLines),
	"or-empty":           pure(value.OrEmpty, (*pipeline).OrEmpty),

	"base64-decode": fallible(value.FromBase64, (*pipeline).FromBase64),
	"url-decode":    fallible(value.URLDecode, (*pipeline).URLDecode),

	"append":    oneString("<text>", value.Append, (*pipeline).Append),
	"prepend":   oneString("<text>", value.Prepend, (*pipeline).Prepend),
	"wrap":      oneString("<text>", value.Wrap, (*pipeline).Wrap),
	"prefix":    oneString("<text>", value.WithPrefix, (*pipeline).WithPrefix),
	"suffix":    oneString("<text>", value.WithSuffix, (*pipeline).WithSuffix),
	"keep-only": oneString("<chars>", value.KeepOnly, (*pipeline).KeepOnly),
	"if-blank":  oneString("<fallback>", value.IfBlank, (*pipeline).IfBlank),
	"if-empty":  oneString("<fallback>", value.IfEmpty, (*pipeline).IfEmpty),

	"repeat":         oneInt("<count>", value.Repeat, (*pipeline).Repeat),
	"indent":         oneInt("<spaces>", value.Indent, (*pipeline).Indent),
	"truncate-words": oneInt("<words>", value.TruncateWords, (*pipeline).TruncateWords),

	"pad-left":  padding(value.PadLeft, (*pipeline).PadLeft),
	"pad-right": padding(value.PadRight, (*pipeline).PadRight),
	"center":    padding(value.Center, (*pipeline).Center),

	"replace-all":   regex(value.ReplaceAll, (*pipeline).ReplaceAll),
	"replace-first": regex(value.ReplaceFirst, (*pipeline).ReplaceFirst),

	"title-locale": locale(value.TitleCaseLocale, (*pipeline).TitleCaseLocale),
	"lower-locale": locale(value.LowerLocale, (*pipeline).LowerLocale),
	"upper-locale": locale(value.UpperLocale, (*pipeline).UpperLocale),

	"replace": withArgs(1, 2, "<old>[:<new>]", func(args []string) (Op, error) {
		old, repl := args[0], ""
		if len(args) > 1 {
			repl = args[1]
		}
		return total(
			func(v value) value { return v.Replace(old, repl) },
			func(p *pipeline) *pipeline { return p.Replace(old, repl) },
		), nil
	}),

	"truncate": withArgs(1, 2, "<limit>[:<ellipsis>]", func(args []string) (Op, error) {
		n, err := intArg(args[0])
		if err != nil {
			return Op{}, err
		}
		ellipsis := "..."
		if len(args) > 1 {
			ellipsis = args[1]
		}
		return total(
			func(v value) value { return v.Truncate(n, ellipsis) },
			func(p *pipeline) *pipeline { return p.Truncate(n, ellipsis) },
		), nil
	}),

	"substring": withArgs(1, 2, "<begin>[:<end>]", func(args []string) (Op, error) {
		begin, err := intArg(args[0])
		if err != nil {
			return Op{}, err
		}
		if len(args) == 1 {
			return Op{
				eager: func(v value) (value, error) { return v.SubstringFrom(begin) },
				lazy:  func(p *pipeline) *pipeline { return p.SubstringFrom(begin) },
			}, nil
		}
		end, err := intArg(args[1])
		if err != nil {
			return Op{}, err
		}
		return Op{
			eager: func(v value) (value, error) { return v.Substring(begin, end) },
			lazy:  func(p *pipeline) *pipeline { return p.Substring(begin, end) },
		}, nil
	}),
}

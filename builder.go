package fluentstr

import (
	"strings"
	"unicode/utf8"

	"github.com/Gobd/fluentstr/transform"
)

// Builder assembles a string piece by piece. The zero Builder is ready to
// use; Start returns a new one.
type Builder struct {
	b strings.Builder
}

// Start returns an empty Builder.
func Start() *Builder { return &Builder{} }

func (b *Builder) Append(s string) *Builder {
	b.b.WriteString(s)
	return b
}

func (b *Builder) Space() *Builder   { return b.Append(" ") }
func (b *Builder) Comma() *Builder   { return b.Append(",") }
func (b *Builder) Dot() *Builder     { return b.Append(".") }
func (b *Builder) Exclaim() *Builder { return b.Append("!") }
func (b *Builder) Tab() *Builder     { return b.Append("\t") }

// Newline appends the platform line separator.
func (b *Builder) Newline() *Builder { return b.Append(transform.LineSeparator) }

// Clear discards everything appended so far.
func (b *Builder) Clear() *Builder {
	b.b.Reset()
	return b
}

// Len returns the rune length of the assembled string.
func (b *Builder) Len() int { return utf8.RuneCountInString(b.b.String()) }

func (b *Builder) IsEmpty() bool { return b.b.Len() == 0 }

// Build returns the assembled string.
func (b *Builder) Build() string { return b.b.String() }

func (b *Builder) String() string { return b.b.String() }

// ToValue returns Of(b.Build()).
func (b *Builder) ToValue() Value { return Of(b.b.String()) }

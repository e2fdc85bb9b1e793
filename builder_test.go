package fluentstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/fluentstr"
	"github.com/Gobd/fluentstr/transform"
)

func TestBuilder(t *testing.T) {
	b := fluentstr.Start().Append("Hello").Comma().Space().Append("World").Exclaim()
	assert.Equal(t, "Hello, World!", b.Build())
	assert.Equal(t, "Hello, World!", b.String())
	assert.Equal(t, 13, b.Len())
	assert.False(t, b.IsEmpty())

	b.Newline().Tab().Append("done").Dot()
	assert.Equal(t, "Hello, World!"+transform.LineSeparator+"\tdone.", b.Build())

	assert.True(t, b.Clear().IsEmpty())
	assert.Equal(t, 0, b.Len())
}

func TestBuilder_RuneLength(t *testing.T) {
	assert.Equal(t, 5, fluentstr.Start().Append("héllo").Len())
}

func TestBuilder_RoundTrip(t *testing.T) {
	v := fluentstr.Of("  hello  ").Trim().ToBuilder().Space().Append("world").ToValue()
	assert.Equal(t, "hello world", v.Get())
	assert.Equal(t, "hello world", v.Original())
	assert.Equal(t, "Hello World", v.TitleCase().Get())
}

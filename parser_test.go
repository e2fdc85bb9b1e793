package fluentstr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/fluentstr"
)

func TestParser_Numbers(t *testing.T) {
	n, ok := fluentstr.Of(" 42 ").Convert().ToInt()
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = fluentstr.Of("4.2").Convert().ToInt()
	assert.False(t, ok)

	n64, ok := fluentstr.NewParser("-9000000000").ToInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(-9000000000), n64)

	f, ok := fluentstr.NewParser("3.14").ToFloat64()
	assert.True(t, ok)
	assert.InDelta(t, 3.14, f, 1e-9)

	_, ok = fluentstr.NewParser("pi").ToFloat64()
	assert.False(t, ok)

	f32, ok := fluentstr.NewParser("0.5").ToFloat32()
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), f32)

	big, ok := fluentstr.NewParser("12345678901234567890.125").ToBigFloat()
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890.125", big.Text('f', 3))

	_, ok = fluentstr.NewParser("1,5").ToBigFloat()
	assert.False(t, ok)
}

func TestParser_Shapes(t *testing.T) {
	tests := []struct {
		in      string
		numeric bool
		boolean bool
	}{
		{in: "12", numeric: true},
		{in: "-12.5", numeric: true},
		{in: "12.", numeric: false},
		{in: "1e3", numeric: false},
		{in: "TRUE", boolean: true},
		{in: "false", boolean: true},
		{in: "yes"},
		{in: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := fluentstr.NewParser(tt.in)
			assert.Equal(t, tt.numeric, p.IsNumeric())
			assert.Equal(t, tt.boolean, p.IsBool())
		})
	}
}

func TestParser_Bool(t *testing.T) {
	b, ok := fluentstr.NewParser(" False ").ToBool()
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = fluentstr.NewParser("1").ToBool()
	assert.False(t, ok)
}

func TestParser_Rune(t *testing.T) {
	r, ok := fluentstr.NewParser("  élan").ToRune()
	assert.True(t, ok)
	assert.Equal(t, 'é', r)

	_, ok = fluentstr.NewParser("   ").ToRune()
	assert.False(t, ok)
}

func TestParser_Collections(t *testing.T) {
	list, ok := fluentstr.NewParser("a|b||c").ToList("|")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "", "c"}, list)

	_, ok = fluentstr.NewParser("").ToList(",")
	assert.False(t, ok)

	m, ok := fluentstr.NewParser("host = localhost; port=8080; junk; url=http://x?a=b").ToMap(";", "=")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{
		"host": "localhost",
		"port": "8080",
		"url":  "http://x?a=b",
	}, m.Map())
	assert.Equal(t, []string{"host", "port", "url"}, m.Keys())

	e, ok := fluentstr.NewParser("Green").ToEnum("red", "green", "blue")
	assert.True(t, ok)
	assert.Equal(t, "green", e)

	_, ok = fluentstr.NewParser("purple").ToEnum("red", "green", "blue")
	assert.False(t, ok)
}

func TestParser_ToMapKeepsFirstSeenOrder(t *testing.T) {
	m, ok := fluentstr.NewParser("z=1,a=2,m=3,a=4").ToMap(",", "=")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
	assert.Equal(t, `{"z":"1","a":"4","m":"3"}`, m.String())

	var keys, values []string
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
	assert.Equal(t, []string{"1", "4", "3"}, values)

	_, ok = fluentstr.NewParser("   ").ToMap(",", "=")
	assert.False(t, ok)
}

func TestParser_Times(t *testing.T) {
	d, ok := fluentstr.NewParser("2024-02-29").ToDate("2006-01-02")
	require.True(t, ok)
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())

	_, ok = fluentstr.NewParser("2023-02-29").ToDate("2006-01-02")
	assert.False(t, ok)

	dt, ok := fluentstr.NewParser("2024-01-02 15:04").ToDateTime("2006-01-02 15:04")
	require.True(t, ok)
	assert.Equal(t, time.Local, dt.Location())
	assert.Equal(t, 15, dt.Hour())

	in, ok := fluentstr.NewParser("2024-01-02T03:04:05.5Z").ToInstant()
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, time.Duration(in.Nanosecond()))

	assert.True(t, fluentstr.NewParser("01/02/2024").IsDate("01/02/2006"))
	assert.False(t, fluentstr.NewParser("2024-13-01").IsDate("2006-01-02"))
	assert.False(t, fluentstr.NewParser("").IsDate("2006-01-02"))
}

func TestParser_UUID(t *testing.T) {
	id, ok := fluentstr.NewParser(" 6ba7b810-9dad-11d1-80b4-00c04fd430c8 ").ToUUID()
	require.True(t, ok)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", id.String())

	_, ok = fluentstr.NewParser("not-a-uuid").ToUUID()
	assert.False(t, ok)
}

func TestParser_JSON(t *testing.T) {
	p := fluentstr.Of(`{"user":{"name":"Ada","langs":["go","c"]}}`).Convert()

	name, ok := p.JSON("user.name")
	require.True(t, ok)
	assert.Equal(t, "Ada", name.String())

	n, ok := p.JSON("user.langs.#")
	require.True(t, ok)
	assert.Equal(t, int64(2), n.Int())

	_, ok = p.JSON("user.email")
	assert.False(t, ok)

	_, ok = fluentstr.NewParser(`{"user":`).JSON("user")
	assert.False(t, ok)
}

func TestParser_Source(t *testing.T) {
	assert.Equal(t, "x y", fluentstr.NewParser("\t x y \n").Source())
}

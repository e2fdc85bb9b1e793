package fluentstr

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/Gobd/fluentstr/transform"
)

var numericShape = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Parser converts a trimmed string into typed values. Every conversion
// reports failure through its bool result instead of an error.
type Parser struct {
	source string
}

// NewParser returns a Parser over strings.TrimSpace(s).
func NewParser(s string) Parser {
	return Parser{source: strings.TrimSpace(s)}
}

// Source returns the trimmed input.
func (p Parser) Source() string { return p.source }

func (p Parser) ToInt() (int, bool) {
	n, err := strconv.Atoi(p.source)
	return n, err == nil
}

func (p Parser) ToInt64() (int64, bool) {
	n, err := strconv.ParseInt(p.source, 10, 64)
	return n, err == nil
}

func (p Parser) ToFloat64() (float64, bool) {
	f, err := govalidator.ToFloat(p.source)
	return f, err == nil
}

func (p Parser) ToFloat32() (float32, bool) {
	f, err := strconv.ParseFloat(p.source, 32)
	return float32(f), err == nil
}

// ToBigFloat parses an arbitrary precision decimal.
func (p Parser) ToBigFloat() (*big.Float, bool) {
	f, _, err := big.ParseFloat(p.source, 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, false
	}
	return f, true
}

// ToBool accepts "true" and "false" in any case.
func (p Parser) ToBool() (bool, bool) {
	switch {
	case strings.EqualFold(p.source, "true"):
		return true, true
	case strings.EqualFold(p.source, "false"):
		return false, true
	}
	return false, false
}

// ToRune returns the first rune.
func (p Parser) ToRune() (rune, bool) {
	if p.source == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.source)
	return r, true
}

// ToList splits on the literal sep.
func (p Parser) ToList(sep string) ([]string, bool) {
	if p.source == "" {
		return nil, false
	}
	return strings.Split(p.source, sep), true
}

// ToMap splits into entries on entrySep and each entry into a key and value
// on the first kvSep. Keys and values are trimmed; entries without kvSep
// are skipped. Keys keep the order they first appear in; a repeated key
// replaces the earlier value.
func (p Parser) ToMap(entrySep, kvSep string) (*OrderedMap[string, string], bool) {
	if p.source == "" {
		return nil, false
	}
	m := transform.NewOrderedMap[string, string]()
	for _, entry := range strings.Split(p.source, entrySep) {
		k, v, ok := strings.Cut(entry, kvSep)
		if !ok {
			continue
		}
		m.Set(strings.TrimSpace(k), strings.TrimSpace(v))
	}
	return m, true
}

// ToEnum returns the member of allowed equal to the input under case
// folding.
func (p Parser) ToEnum(allowed ...string) (string, bool) {
	for _, a := range allowed {
		if strings.EqualFold(a, p.source) {
			return a, true
		}
	}
	return "", false
}

// ToDate parses a date with a time.Parse layout such as "2006-01-02".
func (p Parser) ToDate(layout string) (time.Time, bool) {
	t, err := time.Parse(layout, p.source)
	return t, err == nil
}

// ToDateTime parses a local date and time with a time.Parse layout.
func (p Parser) ToDateTime(layout string) (time.Time, bool) {
	t, err := time.ParseInLocation(layout, p.source, time.Local)
	return t, err == nil
}

// ToInstant parses an RFC 3339 timestamp.
func (p Parser) ToInstant() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, p.source)
	return t, err == nil
}

// ToUUID parses a UUID in any of the forms accepted by uuid.Parse.
func (p Parser) ToUUID() (uuid.UUID, bool) {
	id, err := uuid.Parse(p.source)
	return id, err == nil
}

// JSON looks up path (gjson syntax, e.g. "user.name") in the input, which
// must be valid JSON.
func (p Parser) JSON(path string) (gjson.Result, bool) {
	if !gjson.Valid(p.source) {
		return gjson.Result{}, false
	}
	r := gjson.Get(p.source, path)
	return r, r.Exists()
}

// IsNumeric reports whether the input is an optionally negative decimal
// number such as "-12" or "3.14".
func (p Parser) IsNumeric() bool { return numericShape.MatchString(p.source) }

func (p Parser) IsBool() bool {
	_, ok := p.ToBool()
	return ok
}

// IsDate reports whether the input parses with layout.
func (p Parser) IsDate(layout string) bool {
	if p.source == "" {
		return false
	}
	return validation.Validate(p.source, validation.Date(layout)) == nil
}

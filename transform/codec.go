package transform

import (
	"encoding/base64"
	"html"
	"net/url"
	"strings"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// ToBase64 encodes the UTF-8 bytes of s with standard padded Base64.
func ToBase64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

// FromBase64 decodes standard padded Base64.
func FromBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", &CodecError{Codec: "base64", Err: err}
	}
	return string(b), nil
}

// URLEncode percent-encodes s for use in a query string; spaces become '+'.
func URLEncode(s string) string { return url.QueryEscape(s) }

// URLDecode reverses URLEncode.
func URLDecode(s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", &CodecError{Codec: "url", Err: err}
	}
	return out, nil
}

// EscapeHTML escapes <, >, &, ' and ".
func EscapeHTML(s string) string { return html.EscapeString(s) }

// UnescapeHTML resolves named and numeric character references.
func UnescapeHTML(s string) string { return html.UnescapeString(s) }

// EscapeXML escapes the five predefined XML entities.
func EscapeXML(s string) string { return xmlEscaper.Replace(s) }

// UnescapeXML resolves entity and character references.
func UnescapeXML(s string) string { return html.UnescapeString(s) }

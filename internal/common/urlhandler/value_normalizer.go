package urlhandler

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// NormalizeValue decodes a raw query value. A nil value stays nil so callers
// can tell a missing parameter from a blank one.
func NormalizeValue(raw *string) *string {
	if raw == nil {
		return nil
	}
	decoded := DecodeValue(*raw)
	return &decoded
}

// DecodeValue percent-decodes a query value, treating '+' as a space.
// Malformed escapes are kept literally and invalid UTF-8 produced by decoding
// is replaced with U+FFFD, so decoding never fails.
func DecodeValue(raw string) string {
	if decoded, err := url.QueryUnescape(raw); err == nil {
		return toValidUTF8(decoded)
	}
	return toValidUTF8(unescapeLenient(raw))
}

// unescapeLenient decodes every well-formed %XX escape and copies anything
// else through unchanged. '+' decodes to a space.
func unescapeLenient(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case c == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

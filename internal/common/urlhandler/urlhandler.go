package urlhandler

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// ParsedURL holds the pieces of a URL the recap parser works with.
// Host is the network location as written, so userinfo and port are kept.
type ParsedURL struct {
	Scheme   string
	Host     string
	Path     string
	RawQuery string
}

// SplitURL splits rawURL into scheme, host, path and raw query.
// It never fails: input the standard parser rejects is split by hand.
// Path is always the substring as written, never re-escaped.
func SplitURL(rawURL string) ParsedURL {
	lenient := splitLenient(rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return lenient
	}

	host := parsedURL.Host
	if parsedURL.User != nil {
		host = parsedURL.User.String() + "@" + host
	}

	return ParsedURL{
		Scheme:   parsedURL.Scheme,
		Host:     host,
		Path:     lenient.Path,
		RawQuery: parsedURL.RawQuery,
	}
}

// splitLenient follows the generic URI layout scheme://host/path?query#fragment
// without validating any component.
func splitLenient(rawURL string) ParsedURL {
	var parts ParsedURL

	rest := strings.TrimSpace(rawURL)
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, ':'); i > 0 && isScheme(rest[:i]) {
		parts.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?")
		if end < 0 {
			end = len(rest)
		}
		parts.Host = rest[:end]
		rest = rest[end:]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		parts.RawQuery = rest[i+1:]
		rest = rest[:i]
	}
	parts.Path = rest

	return parts
}

func isScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}

// CanonicalHost lowercases a host and punycode-encodes any non-ASCII label.
// No Unicode mapping is applied, so fullwidth letters or ideographic dots
// stay distinct from their ASCII look-alikes. Hosts the encoder rejects are
// only lowercased.
func CanonicalHost(host string) string {
	lower := strings.ToLower(host)
	ascii, err := idna.Punycode.ToASCII(lower)
	if err != nil {
		return lower
	}
	return ascii
}

// SameHost reports whether two hosts are equal ignoring case.
func SameHost(host, expected string) bool {
	return CanonicalHost(host) == CanonicalHost(expected)
}

// Package recap turns a Microsoft Teams meeting recap link into the
// identifiers it carries, candidate Graph endpoint paths and triage warnings.
// Everything here is a pure function of its input; no I/O happens.
package recap

import (
	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
	"github.com/aleister1102/recapurl/internal/common/urlhandler"
)

// Defaults used by Parse.
const (
	DefaultExpectedHost = "teams.microsoft.com"
	DefaultAPIVersion   = "v1.0"
)

// URLMeta describes where the recap link points.
type URLMeta struct {
	Scheme string `json:"scheme" yaml:"scheme"`
	Host   string `json:"host" yaml:"host"`
	Path   string `json:"path" yaml:"path"`
}

// Report is the result of parsing one recap URL.
type Report struct {
	SourceURL   string      `json:"sourceUrl" yaml:"sourceUrl"`
	URLMeta     URLMeta     `json:"urlMeta" yaml:"urlMeta"`
	Identifiers Identifiers `json:"identifiers" yaml:"identifiers"`
	GraphHints  GraphHints  `json:"graphHints" yaml:"graphHints"`
	Warnings    []string    `json:"warnings" yaml:"warnings"`
}

// Options controls the host check and the Graph API version segment.
type Options struct {
	ExpectedHost string
	APIVersion   string
}

// DefaultOptions returns the options Parse uses.
func DefaultOptions() Options {
	return Options{
		ExpectedHost: DefaultExpectedHost,
		APIVersion:   DefaultAPIVersion,
	}
}

// Parser parses recap URLs with fixed options. It holds no mutable state and
// is safe for concurrent use.
type Parser struct {
	opts Options
}

// NewParser creates a Parser. Empty option fields fall back to the defaults.
func NewParser(opts Options) *Parser {
	defaults := DefaultOptions()
	if opts.ExpectedHost == "" {
		opts.ExpectedHost = defaults.ExpectedHost
	}
	if opts.APIVersion == "" {
		opts.APIVersion = defaults.APIVersion
	}
	return &Parser{opts: opts}
}

// Options returns the options the parser was built with.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse builds the report for rawURL. Malformed URLs and query strings are
// handled best effort; the only error is a fileUrl that cannot be encoded
// into a sharing token.
func (p *Parser) Parse(rawURL string) (*Report, error) {
	parsed := urlhandler.SplitURL(rawURL)
	ids := ResolveIdentifiers(parsed)

	hints, err := DeriveHints(ids, p.opts.APIVersion)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "could not derive graph hints for '"+rawURL+"'")
	}

	return &Report{
		SourceURL: rawURL,
		URLMeta: URLMeta{
			Scheme: parsed.Scheme,
			Host:   parsed.Host,
			Path:   parsed.Path,
		},
		Identifiers: ids,
		GraphHints:  hints,
		Warnings:    AuditWarnings(parsed, ids, p.opts.ExpectedHost),
	}, nil
}

// Parse builds the report for rawURL with the default options.
func Parse(rawURL string) (*Report, error) {
	return NewParser(DefaultOptions()).Parse(rawURL)
}

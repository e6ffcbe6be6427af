package reporter

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aleister1102/recapurl/internal/common/errorwrapper"
	"github.com/aleister1102/recapurl/internal/config"
	"github.com/aleister1102/recapurl/internal/recap"
)

// BatchEntry is one line of a batch run: either a report or the error that
// stopped it from being built.
type BatchEntry struct {
	Line      int           `json:"line" yaml:"line"`
	SourceURL string        `json:"sourceUrl" yaml:"sourceUrl"`
	Report    *recap.Report `json:"report,omitempty" yaml:"report,omitempty"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// Reporter writes reports in the configured format. Field order follows the
// struct definitions, so output is stable across runs.
type Reporter struct {
	format string
	indent int
}

// NewReporter creates a Reporter from the reporter config
func NewReporter(cfg config.ReporterConfig) (*Reporter, error) {
	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatYAML {
		return nil, errorwrapper.NewValidationError("format", cfg.Format, "must be json or yaml")
	}
	if cfg.Indent < 0 {
		return nil, errorwrapper.NewValidationError("indent", cfg.Indent, "must not be negative")
	}
	return &Reporter{format: format, indent: cfg.Indent}, nil
}

// WriteReport writes a single report
func (r *Reporter) WriteReport(w io.Writer, report *recap.Report) error {
	return r.write(w, report)
}

// WriteBatch writes batch entries as one list
func (r *Reporter) WriteBatch(w io.Writer, entries []BatchEntry) error {
	if entries == nil {
		entries = []BatchEntry{}
	}
	return r.write(w, entries)
}

func (r *Reporter) write(w io.Writer, v any) error {
	switch r.format {
	case FormatYAML:
		return r.writeYAML(w, v)
	default:
		return r.writeJSON(w, v)
	}
}

func (r *Reporter) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", r.indent))
	}
	if err := enc.Encode(v); err != nil {
		return errorwrapper.WrapError(err, "failed to encode JSON report")
	}
	return nil
}

func (r *Reporter) writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if r.indent > 0 {
		enc.SetIndent(r.indent)
	}
	if err := enc.Encode(v); err != nil {
		return errorwrapper.WrapError(err, "failed to encode YAML report")
	}
	if err := enc.Close(); err != nil {
		return errorwrapper.WrapError(err, "failed to flush YAML report")
	}
	return nil
}

package config

import "github.com/aleister1102/recapurl/internal/recap"

// ParserConfig defines how recap URLs are checked and which Graph API
// version the endpoint hints target.
type ParserConfig struct {
	ExpectedHost string `json:"expected_host,omitempty" yaml:"expected_host,omitempty" validate:"required,hostname"`
	APIVersion   string `json:"api_version,omitempty" yaml:"api_version,omitempty" validate:"required,apiversion"`
}

// NewDefaultParserConfig creates default parser configuration
func NewDefaultParserConfig() ParserConfig {
	return ParserConfig{
		ExpectedHost: DefaultParserExpectedHost,
		APIVersion:   DefaultParserAPIVersion,
	}
}

// ToOptions converts ParserConfig to recap.Options
func (pc ParserConfig) ToOptions() recap.Options {
	return recap.Options{
		ExpectedHost: pc.ExpectedHost,
		APIVersion:   pc.APIVersion,
	}
}

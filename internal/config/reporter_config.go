package config

// ReporterConfig defines how reports are written to stdout
type ReporterConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,outputformat"`
	Indent int    `json:"indent,omitempty" yaml:"indent,omitempty" validate:"min=0,max=8"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format: DefaultReporterFormat,
		Indent: DefaultReporterIndent,
	}
}

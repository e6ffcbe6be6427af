package reporter

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

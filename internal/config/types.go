package config

// Config holds the user's new-file preferences.
type Config struct {
	// Extensions are the known source file extensions, each with a leading dot.
	Extensions []string `json:"extensions" yaml:"extensions"`
	// PreferredEOL is the line ending for new files: "lf", "crlf" or "cr".
	PreferredEOL string `json:"preferred_eol" yaml:"preferred_eol"`
	// FreeFormat selects free-format templates instead of fixed-format ones.
	FreeFormat bool `json:"free_format" yaml:"free_format"`
	// LastPath is the directory of the most recently created file.
	LastPath string `json:"last_path" yaml:"last_path"`
	// Encoding is the IANA charset for new files. Empty means the locale's charset.
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	// Output configures terminal output.
	Output OutputConfig `json:"output" yaml:"output"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// NoColor disables colored terminal output, like --no-color.
	NoColor bool `json:"no_color" yaml:"no_color"`
	// Quiet suppresses non-error output, like --quiet.
	Quiet bool `json:"quiet" yaml:"quiet"`
}

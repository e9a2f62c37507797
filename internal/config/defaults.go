package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Extensions:   DefaultExtensions(),
		PreferredEOL: DefaultEOL(),
		FreeFormat:   false,
		LastPath:     "",
		Output: OutputConfig{
			NoColor: false,
			Quiet:   false,
		},
	}
}

// DefaultExtensions returns the default source file extensions.
func DefaultExtensions() []string {
	return []string{".cbl", ".cob", ".cpy"}
}

// DefaultEOL returns the platform's native line ending name.
func DefaultEOL() string {
	if runtime.GOOS == "windows" {
		return "crlf"
	}
	return "lf"
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "cobnew", "config.json")
}

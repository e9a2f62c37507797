package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/cobnew/internal/template/generator"
	"github.com/tacogips/cobnew/internal/template/model"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
	// Save writes configuration to the specified file path.
	Save(path string, config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg Config
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
		}
	}

	// Merge with defaults for any missing fields
	mergeConfig(&cfg, DefaultConfig())

	if err := l.Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	cfg, err := l.Load(path)
	if err != nil {
		// If file not found, return defaults
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	if len(config.Extensions) == 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "extensions", "at least one extension is required")
	}
	for _, ext := range config.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "extensions",
				fmt.Sprintf("extension must start with a dot: %q", ext))
		}
	}
	if _, err := model.ParseLineEnding(config.PreferredEOL); err != nil {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "preferred_eol", err.Error())
	}
	if config.Encoding != "" {
		if _, err := generator.LookupEncoding(config.Encoding); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, "", "encoding", err.Error())
		}
	}
	return nil
}

// Save writes config to path, creating parent directories as needed.
func (l *FileLoader) Save(path string, config *Config) error {
	cleanPath := filepath.Clean(path)

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, cleanPath,
			fmt.Sprintf("failed to create directory %s", dir), err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(cleanPath) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, cleanPath, "failed to marshal configuration", err)
	}

	if err := os.WriteFile(cleanPath, data, 0644); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, cleanPath, "failed to write configuration", err)
	}

	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// mergeConfig merges missing fields from defaults into cfg.
func mergeConfig(cfg, defaults *Config) {
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = defaults.Extensions
	}
	if cfg.PreferredEOL == "" {
		cfg.PreferredEOL = defaults.PreferredEOL
	}
}

// LineEnding returns the configured line ending.
func (c *Config) LineEnding() (model.LineEnding, error) {
	return model.ParseLineEnding(c.PreferredEOL)
}

// EncodingName returns the configured charset, or the locale's when unset.
func (c *Config) EncodingName() string {
	if c.Encoding != "" {
		return c.Encoding
	}
	return generator.PreferredEncodingName()
}

// ExtensionChoices returns the configured extensions sorted, followed by
// their uppercase forms in the same order. Duplicates are dropped.
func (c *Config) ExtensionChoices() []string {
	lower := make([]string, 0, len(c.Extensions))
	seen := make(map[string]bool)
	for _, ext := range c.Extensions {
		if !seen[ext] {
			seen[ext] = true
			lower = append(lower, ext)
		}
	}
	sort.Strings(lower)

	choices := append([]string{}, lower...)
	for _, ext := range lower {
		upper := strings.ToUpper(ext)
		if !seen[upper] {
			seen[upper] = true
			choices = append(choices, upper)
		}
	}
	return choices
}

// HasExtension reports whether ext matches a configured extension, ignoring case.
func (c *Config) HasExtension(ext string) bool {
	for _, known := range c.Extensions {
		if strings.EqualFold(known, ext) {
			return true
		}
	}
	return false
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator || path[1] == '/' {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"github.com/tacogips/cobnew/internal/template/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if !reflect.DeepEqual(cfg.Extensions, []string{".cbl", ".cob", ".cpy"}) {
		t.Errorf("Unexpected default extensions: %v", cfg.Extensions)
	}

	wantEOL := "lf"
	if runtime.GOOS == "windows" {
		wantEOL = "crlf"
	}
	if cfg.PreferredEOL != wantEOL {
		t.Errorf("Expected PreferredEOL=%s, got %s", wantEOL, cfg.PreferredEOL)
	}

	if cfg.FreeFormat {
		t.Error("Fixed format should be the default")
	}
	if cfg.LastPath != "" {
		t.Errorf("Expected empty LastPath, got %s", cfg.LastPath)
	}
	if cfg.Output.NoColor || cfg.Output.Quiet {
		t.Errorf("Expected colored, non-quiet output by default, got %+v", cfg.Output)
	}

	if err := NewLoader().Validate(cfg); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	loader := NewLoader()

	t.Run("valid config", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "config.json")

		cfg := DefaultConfig()
		cfg.PreferredEOL = "crlf"
		cfg.FreeFormat = true
		cfg.LastPath = "/work/cobol"

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			t.Fatalf("Failed to marshal config: %v", err)
		}

		if err := os.WriteFile(cfgPath, data, 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		loadedCfg, err := loader.Load(cfgPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if loadedCfg.PreferredEOL != "crlf" {
			t.Errorf("Expected PreferredEOL=crlf, got %s", loadedCfg.PreferredEOL)
		}
		if !loadedCfg.FreeFormat {
			t.Error("Expected FreeFormat=true")
		}
		if loadedCfg.LastPath != "/work/cobol" {
			t.Errorf("Expected LastPath=/work/cobol, got %s", loadedCfg.LastPath)
		}
	})

	t.Run("missing fields are merged from defaults", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(cfgPath, []byte(`{"free_format": true}`), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := loader.Load(cfgPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if !reflect.DeepEqual(cfg.Extensions, DefaultExtensions()) {
			t.Errorf("Expected default extensions, got %v", cfg.Extensions)
		}
		if cfg.PreferredEOL != DefaultEOL() {
			t.Errorf("Expected default EOL, got %s", cfg.PreferredEOL)
		}
	})

	t.Run("yaml config", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		content := "extensions: [\".cob\", \".pco\"]\npreferred_eol: cr\nfree_format: true\n"
		if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		cfg, err := loader.Load(cfgPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if !reflect.DeepEqual(cfg.Extensions, []string{".cob", ".pco"}) {
			t.Errorf("Unexpected extensions: %v", cfg.Extensions)
		}
		if cfg.PreferredEOL != "cr" {
			t.Errorf("Expected PreferredEOL=cr, got %s", cfg.PreferredEOL)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/config.json")
		if err == nil {
			t.Fatal("Expected error for missing file")
		}

		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T", err)
		}
		if cfgErr.Type != ConfigNotFound {
			t.Errorf("Expected ConfigNotFound, got %v", cfgErr.Type)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "config.json")

		if err := os.WriteFile(cfgPath, []byte("{ invalid json }"), 0644); err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		_, err := loader.Load(cfgPath)
		if err == nil {
			t.Fatal("Expected error for invalid JSON")
		}

		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T", err)
		}
		if cfgErr.Type != ConfigInvalid {
			t.Errorf("Expected ConfigInvalid, got %v", cfgErr.Type)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(cfgPath, []byte(`{"preferred_eol": "nel"}`), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}

		_, err := loader.Load(cfgPath)
		cfgErr, ok := err.(*ConfigError)
		if !ok {
			t.Fatalf("Expected ConfigError, got %T (%v)", err, err)
		}
		if cfgErr.Type != ConfigValidationFailed || cfgErr.Field != "preferred_eol" {
			t.Errorf("Unexpected error: %v", cfgErr)
		}
		if cfgErr.File != cfgPath {
			t.Errorf("Expected File=%s, got %s", cfgPath, cfgErr.File)
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	loader := NewLoader()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		cfg, err := loader.LoadOrDefault("/nonexistent/config.json")
		if err != nil {
			t.Fatalf("LoadOrDefault should not error on missing file: %v", err)
		}

		if cfg == nil {
			t.Fatal("Expected default config, got nil")
		}

		if !reflect.DeepEqual(cfg, DefaultConfig()) {
			t.Errorf("Expected default config, got %+v", cfg)
		}
	})

	t.Run("propagates invalid files", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(cfgPath, []byte("not json"), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
		if _, err := loader.LoadOrDefault(cfgPath); err == nil {
			t.Error("Expected error for invalid file")
		}
	})
}

func TestValidateConfig(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name    string
		modify  func(cfg *Config)
		field   string
		wantErr bool
	}{
		{"defaults", func(cfg *Config) {}, "", false},
		{"no extensions", func(cfg *Config) { cfg.Extensions = nil }, "extensions", true},
		{"extension without dot", func(cfg *Config) { cfg.Extensions = []string{"cbl"} }, "extensions", true},
		{"bare dot", func(cfg *Config) { cfg.Extensions = []string{"."} }, "extensions", true},
		{"bad eol", func(cfg *Config) { cfg.PreferredEOL = "nel" }, "preferred_eol", true},
		{"known encoding", func(cfg *Config) { cfg.Encoding = "ISO-8859-1" }, "", false},
		{"unknown encoding", func(cfg *Config) { cfg.Encoding = "klingon-8" }, "encoding", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := loader.Validate(cfg)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Expected ConfigError, got %T (%v)", err, err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestSaveConfig(t *testing.T) {
	loader := NewLoader()

	for _, name := range []string{"config.json", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), "nested", name)

			cfg := DefaultConfig()
			cfg.LastPath = "/srv/src"
			cfg.Encoding = "UTF-8"

			if err := loader.Save(cfgPath, cfg); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			loaded, err := loader.Load(cfgPath)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !reflect.DeepEqual(loaded, cfg) {
				t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", loaded, cfg)
			}
		})
	}
}

func TestExtensionChoices(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{".cpy", ".cob", ".cbl", ".cob"}

	want := []string{".cbl", ".cob", ".cpy", ".CBL", ".COB", ".CPY"}
	if got := cfg.ExtensionChoices(); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtensionChoices() = %v, want %v", got, want)
	}

	if !cfg.HasExtension(".COB") {
		t.Error("HasExtension should ignore case")
	}
	if cfg.HasExtension(".txt") {
		t.Error("HasExtension should reject unknown extensions")
	}
}

func TestConfigLineEnding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PreferredEOL = "CRLF"

	eol, err := cfg.LineEnding()
	if err != nil {
		t.Fatalf("LineEnding() error = %v", err)
	}
	if eol != model.CRLF {
		t.Errorf("Expected CRLF, got %v", eol)
	}
}

func TestEncodingName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Encoding = "ISO-8859-15"
	if cfg.EncodingName() != "ISO-8859-15" {
		t.Errorf("Expected configured encoding, got %s", cfg.EncodingName())
	}

	cfg.Encoding = ""
	t.Setenv("LC_ALL", "pt_BR.ISO-8859-1")
	if cfg.EncodingName() != "ISO-8859-1" {
		t.Errorf("Expected locale encoding, got %s", cfg.EncodingName())
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~")
	if err != nil || got != home {
		t.Errorf("ExpandPath(~) = %q, %v; want %q", got, err, home)
	}

	got, err = ExpandPath("~/src")
	if err != nil || got != filepath.Join(home, "src") {
		t.Errorf("ExpandPath(~/src) = %q, %v", got, err)
	}

	got, err = ExpandPath("")
	if err != nil || got != "" {
		t.Errorf("ExpandPath(\"\") = %q, %v", got, err)
	}

	got, err = ExpandPath("relative")
	if err != nil || !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(relative) = %q, %v; want absolute", got, err)
	}
}

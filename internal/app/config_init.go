package app

import (
	"fmt"
	"os"
	"time"

	"github.com/tacogips/cobnew/internal/config"
	"github.com/tacogips/cobnew/internal/debug"
)

// InitConfigOptions contains options for configuration initialization.
type InitConfigOptions struct {
	// Path is the configuration file to create.
	Path string
	// Force backs up and replaces an existing configuration file.
	Force bool
}

// InitConfigResult describes the written configuration.
type InitConfigResult struct {
	// Path is the written configuration file.
	Path string
	// BackupPath is where the previous file was moved, if any.
	BackupPath string
}

// InitConfig writes a default configuration file.
func InitConfig(opts InitConfigOptions) (*InitConfigResult, error) {
	debug.DebugSection("[app] InitConfig workflow start")
	debug.DebugValue("[app] Config path", opts.Path)
	debug.DebugValue("[app] Force", opts.Force)

	if opts.Path == "" {
		return nil, NewConfigInitError("configuration path cannot be empty", nil)
	}

	result := &InitConfigResult{Path: opts.Path}

	if info, err := os.Stat(opts.Path); err == nil {
		if info.IsDir() {
			return nil, NewConfigInitError(opts.Path+" exists but is a directory", nil)
		}
		if !opts.Force {
			return nil, NewConfigInitError(
				fmt.Sprintf("configuration already exists at %s (use --force to reinitialize)", opts.Path),
				nil,
			)
		}
		backup := fmt.Sprintf("%s.bak.%s", opts.Path, time.Now().Format("20060102150405"))
		debug.DebugValue("[app] Backing up existing config to", backup)
		if err := os.Rename(opts.Path, backup); err != nil {
			return nil, NewConfigInitError("failed to back up existing configuration", err)
		}
		result.BackupPath = backup
	}

	if err := config.NewLoader().Save(opts.Path, config.DefaultConfig()); err != nil {
		return nil, NewConfigInitError("failed to write configuration", err)
	}

	debug.Debug("[app] InitConfig workflow completed")
	return result, nil
}

// LoadConfig loads the configuration at path, falling back to defaults when
// the file does not exist.
func LoadConfig(path string) (*config.Config, error) {
	debug.DebugValue("[app] Loading config", path)
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.NewLoader().LoadOrDefault(path)
	if err != nil {
		return nil, NewConfigLoadError("failed to load configuration", err)
	}
	debug.DebugJSON("[app] Effective config", cfg)
	return cfg, nil
}

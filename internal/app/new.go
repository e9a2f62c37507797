package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"

	"github.com/tacogips/cobnew/internal/config"
	"github.com/tacogips/cobnew/internal/debug"
	"github.com/tacogips/cobnew/internal/template/generator"
	"github.com/tacogips/cobnew/internal/template/model"
)

// NewFileOptions holds options for creating a new source file.
// Empty fields fall back to the values in Config.
type NewFileOptions struct {
	// Config supplies extensions, line ending, format and encoding defaults.
	Config *config.Config
	// ConfigPath is where the last used directory is remembered. Empty disables saving.
	ConfigPath string
	// Dir is the target directory.
	Dir string
	// Name is the file name without extension.
	Name string
	// Ext is the file extension including the leading dot.
	Ext string
	// Kind is the template kind.
	Kind model.Kind
	// Free overrides Config.FreeFormat when non-nil.
	Free *bool
	// LineEnding overrides Config.PreferredEOL when non-empty.
	LineEnding string
	// Encoding overrides the configured charset when non-empty.
	Encoding string
	// Overwrite decides whether an existing file is replaced.
	Overwrite generator.OverwritePolicy
	// DryRun renders without writing.
	DryRun bool
	// Writer replaces the OS filesystem writer (tests).
	Writer generator.Writer
}

// NewFileResult holds the result of file creation.
type NewFileResult struct {
	// Path is the created file path.
	Path string
	// Template is the rendered template.
	Template model.Template
	// Content is the encoded file content.
	Content []byte
	// LineEnding is the line ending used.
	LineEnding model.LineEnding
	// Encoding is the charset name used.
	Encoding string
	// Overwritten reports that an existing file was replaced.
	Overwritten bool
	// DryRun reports that nothing was written.
	DryRun bool
}

// DefaultDirectory returns the directory new files go to when none is given:
// the last used directory if it still exists, otherwise the home directory.
func DefaultDirectory(cfg *config.Config) string {
	if cfg != nil && cfg.LastPath != "" {
		if info, err := os.Stat(cfg.LastPath); err == nil && info.IsDir() {
			return cfg.LastPath
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// DefaultExtension returns the first extension choice.
func DefaultExtension(cfg *config.Config) string {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	choices := cfg.ExtensionChoices()
	if len(choices) == 0 {
		return config.DefaultExtensions()[0]
	}
	return choices[0]
}

// NewFile creates a source file from a built-in template.
func NewFile(ctx context.Context, opts NewFileOptions) (*NewFileResult, error) {
	debug.DebugSection("[app] NewFile workflow start")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDirectory(cfg)
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, NewValidationError("failed to resolve directory", err)
	}
	dir = expanded

	ext := opts.Ext
	if ext == "" {
		ext = DefaultExtension(cfg)
	}

	free := cfg.FreeFormat
	if opts.Free != nil {
		free = *opts.Free
	}

	eolName := opts.LineEnding
	if eolName == "" {
		eolName = cfg.PreferredEOL
	}
	eol, err := model.ParseLineEnding(eolName)
	if err != nil {
		return nil, NewValidationError("invalid line ending", err)
	}

	encName := opts.Encoding
	if encName == "" {
		encName = cfg.EncodingName()
	}
	enc, err := generator.LookupEncoding(encName)
	if err != nil {
		if opts.Encoding != "" || cfg.Encoding != "" {
			return nil, NewNewFileError("failed to resolve encoding", err)
		}
		// Charset came from the locale.
		debug.Debugf("[app] Locale charset %q not supported, using %s: %v", encName, generator.DefaultEncodingName, err)
		encName = generator.DefaultEncodingName
		enc = unicode.UTF8
	}

	debug.DebugValue("[app] Directory", dir)
	debug.DebugValue("[app] Extension", ext)
	debug.DebugValue("[app] Free format", free)
	debug.DebugValue("[app] Line ending", eol)
	debug.DebugValue("[app] Encoding", encName)

	creator := generator.NewCreator(opts.Writer)
	created, err := creator.Create(ctx, generator.Request{
		Dir:  dir,
		Name: opts.Name,
		Ext:  ext,
		Kind: opts.Kind,
		Free: free,
	}, generator.Options{
		LineEnding: eol,
		Encoding:   enc,
		Overwrite:  opts.Overwrite,
		DryRun:     opts.DryRun,
	})
	if err != nil {
		if generator.IsCancelled(err) {
			debug.Debug("[app] NewFile cancelled by overwrite policy")
		}
		return nil, NewNewFileError(fmt.Sprintf("failed to create %s", opts.Name+ext), err)
	}

	result := &NewFileResult{
		Path:        created.Path,
		Template:    created.Template,
		Content:     created.Content,
		LineEnding:  eol,
		Encoding:    encName,
		Overwritten: created.Existed && !created.DryRun,
		DryRun:      created.DryRun,
	}

	if !opts.DryRun && opts.ConfigPath != "" {
		if err := rememberDirectory(opts.ConfigPath, cfg, filepath.Dir(created.Path)); err != nil {
			// Non-fatal: the file is already written.
			debug.Debug("[app] Failed to save last path: %v", err)
		}
	}

	debug.Debug("[app] NewFile workflow completed")
	debug.DebugValue("[app] Created file", result.Path)

	return result, nil
}

func rememberDirectory(configPath string, cfg *config.Config, dir string) error {
	if cfg.LastPath == dir {
		return nil
	}
	cfg.LastPath = dir
	debug.DebugValue("[app] Saving last path to", configPath)
	return config.NewLoader().Save(configPath, cfg)
}

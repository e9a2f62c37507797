package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagDir      = "dir"
	FlagExt      = "ext"
	FlagType     = "type"
	FlagFree     = "free"
	FlagFixed    = "fixed"
	FlagEOL      = "eol"
	FlagEncoding = "encoding"
	FlagConfig   = "config"
	FlagForce    = "force"
	FlagNoInput  = "no-input"
	FlagDryRun   = "dry-run"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"

	// Flag descriptions
	DescDir      = "Target directory (default: last used directory, then home)"
	DescExt      = "File extension including the dot, e.g. .cbl"
	DescType     = "Template type: executable, module or empty"
	DescFree     = "Use the free-format template"
	DescFixed    = "Use the fixed-format template"
	DescEOL      = "Line ending: lf, crlf or cr"
	DescEncoding = "Output encoding, e.g. UTF-8 or ISO-8859-1"
	DescConfig   = "Path to config file"
	DescForce    = "Overwrite an existing file without asking"
	DescNoInput  = "Never prompt; an existing file is left untouched"
	DescDryRun   = "Print the file instead of writing it"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress output"
	DescDebug    = "Enable debug logging"
)

// ValidateName checks a file name entered by the user. The name must be
// non-empty and must not contain a path separator.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("file name cannot contain a path separator: %s", name)
	}
	return nil
}

// ValidateExtension checks that ext starts with a dot and has at least one more character.
func ValidateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return fmt.Errorf("extension must start with a dot: %q", ext)
	}
	return nil
}

// ValidateDirectory checks that path is an existing directory.
func ValidateDirectory(path string) error {
	if path == "" {
		return fmt.Errorf("directory cannot be empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("directory does not exist: %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}
	return nil
}

// isInteractive reports whether prompts can be shown.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

package generator

import (
	"os"

	"github.com/tacogips/cobnew/internal/debug"
)

// Writer writes files to the filesystem.
type Writer interface {
	// WriteFile creates or truncates path and writes content to it.
	WriteFile(path string, content []byte) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool

	// IsDir checks if path exists and is a directory.
	IsDir(path string) bool
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct {
	mode os.FileMode
}

// NewFileWriter creates a new FileWriter that creates files with mode.
// A zero mode defaults to 0644. Existing files keep their permissions.
func NewFileWriter(mode os.FileMode) Writer {
	if mode == 0 {
		mode = 0644
	}
	return &FileWriter{mode: mode}
}

// WriteFile creates or truncates path and writes content in place.
// A failure part way through may leave a truncated file.
func (w *FileWriter) WriteFile(path string, content []byte) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes)", path, len(content))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to open file for writing",
			path,
			err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to write file content",
			path,
			err)
	}

	if closeErr != nil {
		return newGeneratorError(GeneratorWriteFailed,
			"failed to close file",
			path,
			closeErr)
	}

	debug.Debug("[generator] File written successfully: %s", path)
	return nil
}

// Exists checks if anything exists at the given path. A symlink counts
// even when its target is missing.
func (w *FileWriter) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDir checks if path exists and is a directory.
func (w *FileWriter) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

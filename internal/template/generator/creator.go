package generator

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/text/encoding"

	"github.com/tacogips/cobnew/internal/debug"
	"github.com/tacogips/cobnew/internal/template/builtin"
	"github.com/tacogips/cobnew/internal/template/model"
)

// OverwritePolicy decides whether an existing file at path may be replaced.
// It may block, e.g. while waiting for the user to answer a prompt.
type OverwritePolicy func(path string) bool

// AlwaysOverwrite replaces existing files without asking.
func AlwaysOverwrite(string) bool { return true }

// NeverOverwrite keeps existing files.
func NeverOverwrite(string) bool { return false }

// Request describes the file to create.
type Request struct {
	// Dir is the target directory. It must already exist.
	Dir string
	// Name is the base file name without extension.
	Name string
	// Ext is appended to Name verbatim, including the leading dot.
	Ext string
	// Kind selects the template body.
	Kind model.Kind
	// Free selects the free-format variant of the template.
	Free bool
}

// Options configures how a request is rendered and written.
type Options struct {
	// LineEnding is the terminator used for every line.
	LineEnding model.LineEnding
	// Encoding encodes the rendered text. Nil means UTF-8.
	Encoding encoding.Encoding
	// Overwrite is consulted when the target exists. Nil means NeverOverwrite.
	Overwrite OverwritePolicy
	// DryRun renders the file without touching the filesystem.
	DryRun bool
}

// Result describes a created (or, in dry-run mode, planned) file.
type Result struct {
	// Path is the resolved file path.
	Path string
	// Template is the template that was rendered.
	Template model.Template
	// Content is the bytes written to Path.
	Content []byte
	// Existed reports whether a file was already present at Path.
	Existed bool
	// DryRun reports that nothing was written.
	DryRun bool
}

// Creator turns requests into files.
type Creator struct {
	writer Writer
}

// NewCreator creates a Creator backed by w. A nil w writes to the OS filesystem.
func NewCreator(w Writer) *Creator {
	if w == nil {
		w = NewFileWriter(0)
	}
	return &Creator{writer: w}
}

// ResolvePath joins the directory with name and extension.
func ResolvePath(req Request) string {
	return filepath.Join(req.Dir, req.Name+req.Ext)
}

// SelectTemplate returns the built-in template for kind in the requested format.
func SelectTemplate(kind model.Kind, free bool) (model.Template, error) {
	return builtin.Lookup(kind, model.FormatFromFlag(free))
}

// CanCreate reports whether name is non-empty and dir is an existing directory.
func CanCreate(name, dir string) bool {
	return NewCreator(nil).CanCreate(name, dir)
}

// CanCreate reports whether name is non-empty and dir is an existing directory.
func (c *Creator) CanCreate(name, dir string) bool {
	return name != "" && dir != "" && c.writer.IsDir(dir)
}

// Write stores data at path. If a file already exists there, policy decides
// whether to replace it; a refusal returns a GeneratorCancelled error and leaves
// the existing file untouched.
func (c *Creator) Write(path string, data []byte, policy OverwritePolicy) error {
	_, err := c.write(path, data, policy)
	return err
}

func (c *Creator) write(path string, data []byte, policy OverwritePolicy) (existed bool, err error) {
	if policy == nil {
		policy = NeverOverwrite
	}

	if c.writer.Exists(path) {
		existed = true
		debug.DebugValue("[generator] Target exists", path)
		if !policy(path) {
			debug.Debug("[generator] Overwrite declined: %s", path)
			return existed, newGeneratorError(GeneratorCancelled,
				"overwrite declined", path, nil)
		}
	}

	if err := c.writer.WriteFile(path, data); err != nil {
		return existed, err
	}
	return existed, nil
}

// Create validates req, renders its template and writes it.
func (c *Creator) Create(ctx context.Context, req Request, opts Options) (*Result, error) {
	debug.DebugSection("[generator] Create start")
	debug.DebugValue("[generator] Dir", req.Dir)
	debug.DebugValue("[generator] Name", req.Name)
	debug.DebugValue("[generator] Ext", req.Ext)
	debug.DebugValue("[generator] Kind", req.Kind)
	debug.DebugValue("[generator] Free format", req.Free)
	debug.DebugValue("[generator] Line ending", opts.LineEnding)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, newGeneratorError(GeneratorInvalidRequest, "file name cannot be empty", "", nil)
	}
	if !c.writer.IsDir(req.Dir) {
		return nil, newGeneratorError(GeneratorInvalidDirectory,
			fmt.Sprintf("directory does not exist or is not a directory: %s", req.Dir),
			"", nil)
	}

	path := ResolvePath(req)
	debug.DebugValue("[generator] Resolved path", path)

	tmpl, err := SelectTemplate(req.Kind, req.Free)
	if err != nil {
		return nil, newGeneratorError(GeneratorInvalidRequest, "failed to select template", path, err)
	}
	debug.DebugValue("[generator] Template", tmpl.Name())

	data, err := Render(tmpl.Text, opts.LineEnding, opts.Encoding)
	if err != nil {
		if genErr, ok := err.(*GeneratorError); ok {
			genErr.File = path
		}
		return nil, err
	}

	result := &Result{
		Path:     path,
		Template: tmpl,
		Content:  data,
	}

	if opts.DryRun {
		result.DryRun = true
		result.Existed = c.writer.Exists(path)
		debug.Debug("[generator] Dry run, nothing written")
		return result, nil
	}

	existed, err := c.write(path, data, opts.Overwrite)
	result.Existed = existed
	if err != nil {
		return nil, err
	}

	debug.Debug("[generator] Create completed: %s", path)
	return result, nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/cobnew/internal/app"
	"github.com/tacogips/cobnew/internal/config"
	"github.com/tacogips/cobnew/internal/debug"
	"github.com/tacogips/cobnew/internal/template/generator"
	"github.com/tacogips/cobnew/internal/template/model"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new source file from a template",
	Long: `Create a new COBOL source file from a built-in template.

Values not given as flags are asked for interactively when running in a
terminal. With --no-input (or without a terminal) defaults are used: the last
used directory, the first configured extension and the executable template.

If the file already exists you are asked whether to overwrite it. Use --force
to overwrite without asking.

Examples:
  cobnew new
  cobnew new payroll --type module --dir ./src
  cobnew new report --ext .cob --free --eol crlf
  cobnew new scratch --type empty --force
  cobnew new hello --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newDir      string
	newExt      string
	newType     string
	newFree     bool
	newFixed    bool
	newEOL      string
	newEncoding string
	newForce    bool
	newNoInput  bool
	newDryRun   bool
)

func init() {
	newCmd.Flags().StringVarP(&newDir, FlagDir, "d", "", DescDir)
	newCmd.Flags().StringVarP(&newExt, FlagExt, "e", "", DescExt)
	newCmd.Flags().StringVarP(&newType, FlagType, "t", "", DescType)
	newCmd.Flags().BoolVar(&newFree, FlagFree, false, DescFree)
	newCmd.Flags().BoolVar(&newFixed, FlagFixed, false, DescFixed)
	newCmd.Flags().StringVar(&newEOL, FlagEOL, "", DescEOL)
	newCmd.Flags().StringVar(&newEncoding, FlagEncoding, "", DescEncoding)
	newCmd.Flags().BoolVarP(&newForce, FlagForce, "f", false, DescForce)
	newCmd.Flags().BoolVar(&newNoInput, FlagNoInput, false, DescNoInput)
	newCmd.Flags().BoolVar(&newDryRun, FlagDryRun, false, DescDryRun)
	newCmd.MarkFlagsMutuallyExclusive(FlagFree, FlagFixed)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfgPath := configPath()
	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	interactive := !newNoInput && isInteractive()
	debug.DebugValue("[cli] Interactive", interactive)

	// Template kind
	kind := model.KindExecutable
	if newType != "" {
		if kind, err = model.ParseKind(newType); err != nil {
			return err
		}
	} else if interactive {
		if kind, err = promptKind(kind); err != nil {
			return err
		}
	}

	// File name
	var name string
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	} else if interactive {
		if name, err = promptName(); err != nil {
			return err
		}
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	// Directory
	dir := newDir
	if dir == "" {
		dir = app.DefaultDirectory(cfg)
		if interactive {
			if dir, err = promptDirectory(dir); err != nil {
				return err
			}
		}
	}
	if dir, err = config.ExpandPath(dir); err != nil {
		return err
	}

	// Extension
	ext := newExt
	if ext == "" {
		ext = app.DefaultExtension(cfg)
		if interactive {
			if ext, err = promptExtension(cfg.ExtensionChoices()); err != nil {
				return err
			}
		}
	}
	if err := ValidateExtension(ext); err != nil {
		return err
	}
	if !cfg.HasExtension(ext) {
		printWarning(fmt.Sprintf("Extension %s is not one of the configured extensions %v", ext, cfg.Extensions))
	}

	if !generator.CanCreate(name, dir) {
		if err := ValidateDirectory(dir); err != nil {
			return err
		}
		return fmt.Errorf("cannot create %s in %s", name+ext, dir)
	}

	var free *bool
	switch {
	case newFree:
		free = &newFree
	case newFixed:
		fixed := false
		free = &fixed
	}

	policy := generator.NeverOverwrite
	switch {
	case newForce:
		policy = generator.AlwaysOverwrite
	case interactive:
		policy = confirmOverwrite
	}

	result, err := app.NewFile(cmd.Context(), app.NewFileOptions{
		Config:     cfg,
		ConfigPath: cfgPath,
		Dir:        dir,
		Name:       name,
		Ext:        ext,
		Kind:       kind,
		Free:       free,
		LineEnding: newEOL,
		Encoding:   newEncoding,
		Overwrite:  policy,
		DryRun:     newDryRun,
	})
	if err != nil {
		if generator.IsCancelled(err) {
			path := filepath.Join(dir, name+ext)
			if interactive {
				printWarning("Cancelled: " + path + " was not modified")
			} else {
				printWarning(fmt.Sprintf("%s already exists (use --%s to overwrite)", path, FlagForce))
			}
			return nil
		}
		printErrorMsg(fmt.Sprintf("Failed to create file: %v", err))
		return err
	}

	if result.DryRun {
		printProgress(fmt.Sprintf("Would create %s (%s, %s, %s)",
			result.Path, result.Template.Name(), result.LineEnding, formatBytes(int64(len(result.Content)))))
		_, err := os.Stdout.Write(result.Content)
		return err
	}

	verb := "Created"
	if result.Overwritten {
		verb = "Overwrote"
	}
	printSuccess(fmt.Sprintf("%s: %s", verb, result.Path))
	printVerbose(globalDebug, fmt.Sprintf("Template %s, %s line endings, %s, %s",
		result.Template.Name(), result.LineEnding, result.Encoding, formatBytes(int64(len(result.Content)))))

	return nil
}

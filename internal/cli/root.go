package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/cobnew/internal/build"
	"github.com/tacogips/cobnew/internal/config"
	"github.com/tacogips/cobnew/internal/debug"
)

// Version information, set from main
var (
	Version   = build.Version()
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
	globalConfig  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cobnew",
	Short: "Create COBOL source files from templates",
	Long: `cobnew creates new COBOL source files from built-in templates.

Use "cobnew new [name]" to:
  1. Choose a template (executable program, module, or empty file)
  2. Pick the target directory and file extension
  3. Write the file with your preferred line endings and encoding

Templates come in fixed-format and free-format variants. Preferences are
read from ~/.config/cobnew/config.json (see "cobnew config init").`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		if cfg, err := config.NewLoader().LoadOrDefault(configPath()); err == nil {
			applyOutputConfig(cfg)
		} else {
			// Commands that need the config report the load error themselves.
			debug.Debugf("[cli] Output settings not loaded: %v", err)
		}
		debug.SetNoColor(globalNoColor)
	},
}

// applyOutputConfig merges the config's output settings into the global
// flags. A flag that is already set on the command line wins.
func applyOutputConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	globalQuiet = globalQuiet || cfg.Output.Quiet
	globalNoColor = globalNoColor || cfg.Output.NoColor
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfig, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// configPath returns the --config value or the default location.
func configPath() string {
	if globalConfig != "" {
		if expanded, err := config.ExpandPath(globalConfig); err == nil {
			return expanded
		}
		return globalConfig
	}
	return config.DefaultConfigPath()
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

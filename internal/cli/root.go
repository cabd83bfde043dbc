// Package cli provides the command-line interface for dyematch.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"dyematch/internal/version"
)

var (
	// Global flags
	globalVerbose bool
	globalQuiet   bool
	globalConfig  string

	// Shared logger instance used by all commands, configured in the
	// persistent pre-run once the global flags are parsed.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "dyematch",
		Short: "Perceptual colour matching for game dye catalogs",
		Long: `Dyematch finds the closest dyes to a target colour using perceptual
colour distance.

Convert colours between spaces, measure distances with several
algorithms, check WCAG contrast, build harmony palettes and match
colours extracted from screenshots against a dye catalog.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&globalConfig, "config", "", "config file (default: ~/.config/dyematch/config.yaml)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(extractCmd)
}

// newLogger builds the command logger from the global verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	if globalVerbose {
		level = hclog.Debug
	}
	if globalQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "dyematch",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

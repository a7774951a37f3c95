// Package cmd implements the practicas CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/initializ/practicas/config"
)

var (
	cfgFile       string
	verbose       bool
	themeOverride string
	logFile       string

	appVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "practicas",
	Short: "Prácticas Profesionales: company registration and contract emission",
	Long: "practicas runs the university internship workflows against mocked backends: " +
		"registering a company by CUIT and emitting internship contracts for a project.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&themeOverride, "theme", "", "TUI color theme: dark, light, or auto")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "trace file for interactive sessions (default from config)")

	rootCmd.AddCommand(empresaCmd)
	rootCmd.AddCommand(contratosCmd)
	rootCmd.AddCommand(serveCmd)
}

// SetVersionInfo sets the version and commit for display.
func SetVersionInfo(version, commit string) {
	appVersion = version
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("practicas %s (commit: %s)\n", version, commit))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

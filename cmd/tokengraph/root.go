package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengraph"
)

var rootCmd = &cobra.Command{
	Use:   "tokengraph",
	Short: "Design-token graph generator with light/dark modes",
	Long: `Generate a three-tier design-token graph (primitive, semantic,
component) from a primary color, and export it as CSS custom properties
or a Tailwind theme.`,
	// Default behavior: run generate when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".tokengraph.yaml", "Config file path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging installs a console logger on stderr when verbose is set.
// The library is silent otherwise.
func setupLogging(verbose bool) {
	if !verbose {
		tokengraph.SetLogger(zerolog.Nop())
		return
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.TraceLevel).
		With().Timestamp().Logger()
	tokengraph.SetLogger(logger)
}

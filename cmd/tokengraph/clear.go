package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengraph"
)

// clearCmd empties a host store. With the CLI's in-memory host this only
// matters for embedders who wire a persistent host; it exists so the full
// lifecycle (generate, update, clear) is scriptable.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every token from the store",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		setupLogging(getBoolWithFallback("verbose", "verbose", false))

		if err := tokengraph.Clear(tokengraph.NewMemHost()); err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
		if !getBoolWithFallback("quiet", "quiet", false) {
			fmt.Println("Token store cleared")
		}
		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokengraph.yaml config file",
	Long:  `Create a .tokengraph.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tokengraph.yaml"); err == nil && !force {
			return fmt.Errorf(".tokengraph.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tokengraph.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tokengraph.yaml")
		return nil
	},
}

const defaultConfig = `# tokengraph configuration
# Docs: https://github.com/yacobolo/tokengraph

# Shared settings
verbose: false

# Generation settings
generate:
  primary: "#3b82f6"
  clear: false
  # seed-css: web/styles/theme.css
  # hues:
  #   teal: "#14b8a6"

# Export settings
export:
  format: css              # css | tailwind
  prefix: ""               # --{prefix}-{token}
  include: []              # group globs, e.g. ["button/**", "ramp/*"]
  # css-out: web/styles/tokens.css
  # tailwind-out: tailwind.tokens.js
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

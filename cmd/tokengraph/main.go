// Package main provides the tokengraph CLI tool for generating design-token
// graphs and exporting them as CSS variables or a Tailwind theme.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

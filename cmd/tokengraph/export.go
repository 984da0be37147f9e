package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengraph"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the token graph and export it to stdout or a file",
	Long: `Run a full generation pass into an in-memory store and print the
flattened result in the chosen format. Use --out to write a file instead.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("primary", "#3b82f6", "Primary color (hex)")
	f.String("seed-css", "", "Stylesheet whose custom properties override palette hues")
	f.String("format", "css", "Export format: css|tailwind")
	f.String("out", "", "Output path (stdout when empty)")
	f.String("prefix", "", "CSS variable name prefix")
	f.StringSlice("include", nil, "Group glob patterns to export (e.g. 'button/**')")
}

func runExport(_ *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	setupLogging(config.Verbose)

	host := tokengraph.NewMemHost()
	config.Host = host

	if _, err := tokengraph.Generate(config); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	store := tokengraph.NewStore(host)
	content, err := tokengraph.Export(store, buildExportConfig())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := getStringWithFallback("out", "export.out", "")
	if out == "" {
		fmt.Fprint(os.Stdout, content)
		return nil
	}

	if err := tokengraph.WriteExport(afero.NewOsFs(), out, content); err != nil {
		return err
	}
	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Wrote %s\n", out)
	}
	return nil
}

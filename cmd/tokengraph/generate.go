package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengraph"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the three-tier token graph",
	Long: `Build primitive shade ramps from the primary color, resolve the
semantic and component vocabularies against them, and optionally write
CSS/Tailwind exports of the result.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("primary", "#3b82f6", "Primary color (hex)")
	f.String("seed-css", "", "Stylesheet whose custom properties override palette hues")
	f.Bool("clear", false, "Clear existing tokens before generating")
	f.String("css-out", "", "Write a CSS custom-properties export to this path")
	f.String("tailwind-out", "", "Write a Tailwind theme export to this path")
	f.String("prefix", "", "CSS variable name prefix")
	f.StringSlice("include", nil, "Group glob patterns to export (e.g. 'button/**')")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	setupLogging(config.Verbose)

	host := tokengraph.NewMemHost()
	config.Host = host

	result, err := tokengraph.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		reporter := tokengraph.NewReporter(os.Stdout, getBoolWithFallback("color", "color", false))
		reporter.PrintSummary(result)
	}

	// Write exports if output paths were given
	store := tokengraph.NewStore(host)
	fs := afero.NewOsFs()

	exportConfig := buildExportConfig()

	if path := getStringWithFallback("css-out", "export.css-out", ""); path != "" {
		exportConfig.Format = tokengraph.ExportCSSFormat
		if err := exportTo(fs, store, exportConfig, path); err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	if path := getStringWithFallback("tailwind-out", "export.tailwind-out", ""); path != "" {
		exportConfig.Format = tokengraph.ExportTailwindFormat
		if err := exportTo(fs, store, exportConfig, path); err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("Wrote %s\n", path)
		}
	}

	return nil
}

func exportTo(fs afero.Fs, store *tokengraph.Store, config tokengraph.ExportConfig, path string) error {
	content, err := tokengraph.Export(store, config)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return tokengraph.WriteExport(fs, path, content)
}

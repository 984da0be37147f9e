package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengraph"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".tokengraph.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence; only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TOKENGRAPH_* prefix)
	if err := k.Load(env.Provider("TOKENGRAPH_", ".", func(s string) string {
		// TOKENGRAPH_GENERATE_PRIMARY -> generate.primary
		// TOKENGRAPH_EXPORT_PREFIX -> export.prefix
		// TOKENGRAPH_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TOKENGRAPH_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() tokengraph.Config {
	config := tokengraph.Config{
		PrimaryColor:  getStringWithFallback("primary", "generate.primary", "#3b82f6"),
		SeedCSS:       getStringWithFallback("seed-css", "generate.seed-css", ""),
		ClearExisting: getBoolWithFallback("clear", "generate.clear", false),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
	}

	// Extra hues: config file only ("generate.hues" map of name -> hex)
	if hues := k.StringMap("generate.hues"); len(hues) > 0 {
		config.Hues = hues
	}

	return config
}

// buildExportConfig constructs the library's ExportConfig struct from koanf state.
func buildExportConfig() tokengraph.ExportConfig {
	config := tokengraph.ExportConfig{
		Format: tokengraph.ExportFormat(getStringWithFallback("format", "export.format", "css")),
		Prefix: getStringWithFallback("prefix", "export.prefix", ""),
	}

	// Handle includes: check flag key first, then config key
	if include := k.Strings("include"); len(include) > 0 {
		config.Include = include
	} else if include := k.Strings("export.include"); len(include) > 0 {
		config.Include = include
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

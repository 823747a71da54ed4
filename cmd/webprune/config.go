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
	"github.com/webprune/webprune"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".webprune.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// Separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (WEBPRUNE_* prefix)
	if err := k.Load(env.Provider("WEBPRUNE_", ".", func(s string) string {
		// WEBPRUNE_RUN_VERIFY -> run.verify
		// WEBPRUNE_SCAN_STRICT -> scan.strict
		// WEBPRUNE_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "WEBPRUNE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildRunConfig constructs the library's Config struct from koanf state.
func buildRunConfig(root string, dryRun bool) webprune.Config {
	cfg := webprune.Config{
		Root:    root,
		DryRun:  dryRun,
		Verify:  getBoolWithFallback("verify", "run.verify", false),
		Verbose: getBoolWithFallback("verbose", "verbose", false),
	}

	// Includes/excludes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		cfg.Includes = includes
	} else if includes := k.Strings("run.include"); len(includes) > 0 {
		cfg.Includes = includes
	}

	if excludes := k.Strings("exclude"); len(excludes) > 0 {
		cfg.Excludes = excludes
	} else if excludes := k.Strings("run.exclude"); len(excludes) > 0 {
		cfg.Excludes = excludes
	}

	return cfg
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

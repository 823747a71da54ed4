package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "webprune [path]",
	Short: "Find and remove unused CSS selectors and JS identifiers",
	Long: `webprune scans a project's stylesheets, scripts and markup, finds CSS
class/ID selectors and JS function/variable declarations that are never
referenced anywhere else, and rewrites the source files to delete them.
Every change is recorded in a plain-text audit log.`,
	Args: cobra.MaximumNArgs(1),
	// Default behavior: run removal when no subcommand is given.
	// loadConfig must be called here because PreRunE of runCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRemoval(args, false)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".webprune.yaml", "Config file path")
	rootCmd.PersistentFlags().StringSlice("include", nil, "Glob patterns for files to scan")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Glob patterns for files to skip")
	rootCmd.PersistentFlags().String("output-format", "text", "Output format: text|json")

	// Removal flags live on the root so `webprune .` works without a
	// subcommand; runCmd shares them via the persistent flag set.
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.PersistentFlags().String("log-file", "unused_code_changes.txt", "Audit log file path")
	rootCmd.PersistentFlags().Bool("verify", false, "Lex rewritten output and warn about damage")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

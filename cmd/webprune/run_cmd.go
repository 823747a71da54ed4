package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/webprune/webprune"
	"github.com/webprune/webprune/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Remove unused CSS and JS declarations from a project",
	Long: `Scan the project, find unused CSS selectors and JS identifiers, and
rewrite the source files to delete them. Asks for confirmation before
modifying anything unless --yes is given. Every change is recorded in the
audit log.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runRemoval(args, false)
	},
}

// runRemoval is shared between `webprune`, `webprune run` and
// `webprune scan` (dryRun=true).
func runRemoval(args []string, dryRun bool) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "output-format", "text")
	cfg := buildRunConfig(root, dryRun)

	reporter := report.NewReporter(os.Stdout, report.Options{
		UseColors: getBoolWithFallback("color", "color", false),
		Verbose:   cfg.Verbose,
		DryRun:    dryRun,
	})

	// Scan up front so the confirmation prompt can show what is at stake
	// before anything is rewritten.
	project, err := webprune.ScanProject(cfg.Root, cfg.Includes, cfg.Excludes)
	if err != nil {
		return err
	}
	if len(project.CSSFiles) == 0 && len(project.JSFiles) == 0 {
		if !quiet {
			fmt.Println("No CSS or JavaScript files found")
		}
		return nil
	}
	if !quiet && outputFormat != "json" {
		reporter.PrintScanStats(project)
	}

	if !dryRun {
		yes := getBoolWithFallback("yes", "run.yes", false)
		if !yes && !confirmRemoval() {
			fmt.Println("Operation cancelled")
			return nil
		}
	}

	result, err := webprune.Run(cfg)
	if errors.Is(err, webprune.ErrNoFiles) {
		if !quiet {
			fmt.Println("No CSS or JavaScript files found")
		}
		return nil
	}
	if err != nil {
		return err
	}
	lastRunHadChanges = result.FilesChanged() > 0

	if !quiet {
		switch outputFormat {
		case "json":
			if err := report.WriteJSON(os.Stdout, result); err != nil {
				return fmt.Errorf("writing JSON output: %w", err)
			}
		default:
			reporter.PrintChanges(result.Records)
			reporter.PrintWarnings(result.Warnings)
			reporter.PrintSummary(result)
		}
	}

	if !dryRun {
		logFile := getStringWithFallback("log-file", "log-file", "unused_code_changes.txt")
		if err := writeAuditLog(logFile, result); err != nil {
			return fmt.Errorf("writing audit log: %w", err)
		}
		if !quiet && outputFormat != "json" {
			fmt.Printf("Changes log saved to %s\n", logFile)
		}
	}

	return nil
}

// confirmRemoval prints the modification warning and reads a y/N answer
// from stdin.
func confirmRemoval() bool {
	warn := color.New(color.FgYellow, color.Bold)
	warn.Fprintln(os.Stderr, "WARNING: this will modify your files.")
	fmt.Fprintln(os.Stderr, "Make sure you have backups before proceeding.")
	fmt.Fprint(os.Stderr, "Continue? (y/N): ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// writeAuditLog writes the plain-text change log next to the project.
func writeAuditLog(path string, result *webprune.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return report.WriteAuditLog(f, result.Records, time.Now())
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Report unused CSS and JS without modifying any files",
	Long: `Run detection only: scan the project and report what would be removed.
No files are written and no audit log is produced. With --strict the command
exits 1 when unused code is found, for CI gates.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		if err := runRemoval(args, true); err != nil {
			return err
		}

		if getBoolWithFallback("strict", "scan.strict", false) && lastRunHadChanges {
			os.Exit(1)
		}
		return nil
	},
}

// lastRunHadChanges is set by runRemoval for the strict exit-code gate.
var lastRunHadChanges bool

func init() {
	scanCmd.Flags().Bool("strict", false, "Exit 1 when unused code is found (CI mode)")
}

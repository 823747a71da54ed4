package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .webprune.yaml config file",
	Long:  `Create a .webprune.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".webprune.yaml"); err == nil && !force {
			return fmt.Errorf(".webprune.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".webprune.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .webprune.yaml")
		return nil
	},
}

const defaultConfig = `# webprune configuration

# Shared settings
verbose: false
color: false
output-format: text      # text | json
log-file: unused_code_changes.txt

# Removal settings
run:
  include:
    - "**/*.css"
    - "**/*.js"
    - "**/*.html"
    - "**/*.htm"
  exclude: []
  verify: false          # lex rewritten output and warn about damage
  yes: false             # skip the confirmation prompt

# Detection-only settings
scan:
  strict: false          # exit 1 when unused code is found (CI mode)
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

/*
Copyright (c) 2026 plancheck authors
*/

package cmd

import (
	"fmt"
	"os"

	"github.com/plancheck/plancheck/internal/app/analyze"
	"github.com/plancheck/plancheck/internal/app/ui"
	"github.com/plancheck/plancheck/internal/config"
	msges "github.com/plancheck/plancheck/internal/messages"
	appver "github.com/plancheck/plancheck/internal/version"
	"github.com/spf13/cobra"
)

var (
	version = appver.Value

	jsonOutput   bool
	legacyDeploy bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "plancheck [file]",
	Short: "plancheck scans a markdown planning document for known red flags including hallucinated framework versions, backend services placed in the frontend, inefficient browser-side queue polling, and undocumented cross-origin storage access, then exits with the issue count.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		policy, err := config.LoadPolicy(cmd.Flags())
		if err != nil {
			fmt.Printf("%s%s%s\n", ui.ColorRed, msges.GetUIMessage("PolicyFailed", err), ui.ColorReset)
			os.Exit(1)
		}
		if len(args) == 1 {
			policy.Target = args[0]
		}

		count, err := analyze.Run(os.Stdout, policy)
		if err != nil {
			os.Exit(1)
		}
		if count > 0 {
			os.Exit(count)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
func init() {
	rootCmd.Version = version

	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	rootCmd.Flags().BoolVar(&legacyDeploy, "legacy-deploy", false, "Enable the retired static-hosting deployment checks")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors in the report")

	rootCmd.Long = `plancheck is a lightweight red-flag checker for markdown planning documents.

Usage:
   plancheck [file] [flags]

Example:
  plancheck
  plancheck docs/README.plans.md
  plancheck --json
  plancheck --legacy-deploy

Flags:
  --json               Output result as JSON
  --legacy-deploy      Enable the retired static-hosting deployment checks
  --no-color           Disable ANSI colors in the report

The exit status is the number of issues found. A missing or unreadable
document always exits 1. Defaults can be set in a .plancheck.yaml file or
PLANCHECK_* environment variables.
`
}

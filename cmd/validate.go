package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document>",
	Short: "Check a template document's structural invariants",
	Long: `Validate a template document: id uniqueness, well-formed zone keys,
zone ownership, and mirrored id props.

Warnings (such as orphaned zones, which the editor simply ignores) do
not fail the command; errors exit non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docfile.LoadDocument(args[0])
		if err != nil {
			return err
		}

		diags := docfile.Validate(doc)
		printDiagnostics(cmd, args[0], diags)
		if docfile.HasErrors(diags) {
			cmd.SilenceUsage = true
			return fmt.Errorf("%s: validation failed", args[0])
		}
		return nil
	},
}

func printDiagnostics(cmd *cobra.Command, path string, diags []docfile.Diagnostic) {
	if len(diags) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
		return
	}
	for _, d := range diags {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s [%s] %s\n", path, d.Severity, d.Code, d.Message)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

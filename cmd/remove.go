package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
)

var removeDryRun bool

var removeCmd = &cobra.Command{
	Use:   "remove <document> <id>...",
	Short: "Remove components from a template document",
	Long: `Remove the named components from a template document.

Removing a component also removes its owned zones and everything inside
them. Ids that do not exist in the document are ignored; if nothing
matches, the document is left untouched.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := context.Background()

		path, ids := args[0], args[1:]
		doc, err := docfile.LoadDocument(path)
		if err != nil {
			return err
		}

		before := len(doctree.CollectIDsDeep(doc))
		next := doctree.Remove(doc, ids)
		if next == doc {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to remove")
			return nil
		}
		removed := before - len(doctree.CollectIDsDeep(next))

		if removeDryRun {
			fmt.Fprintf(cmd.OutOrStdout(), "would remove %d component(s)\n", removed)
			return nil
		}

		if err := docfile.SaveDocument(path, next); err != nil {
			return err
		}
		logger.Info(ctx, "removed components", "document", path, "count", removed)
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d component(s)\n", removed)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeDryRun, "dry-run", false, "report what would be removed without writing")
	rootCmd.AddCommand(removeCmd)
}

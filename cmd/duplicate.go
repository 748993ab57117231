package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
	"github.com/rafaelfne/pressroom-sub002/internal/idgen"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <document> <id>...",
	Short: "Duplicate components in a template document",
	Long: `Duplicate the named components inside their containers.

Each duplicate is a deep copy of the original subtree with fresh ids
throughout, inserted immediately after its original. Ids that do not
exist in the document are ignored.`,
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

		next, newIDs := doctree.Duplicate(doc, ids, idgen.NewUUIDGenerator())
		if next == doc {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing to duplicate")
			return nil
		}

		if err := docfile.SaveDocument(path, next); err != nil {
			return err
		}
		logger.Info(ctx, "duplicated components", "document", path, "count", len(newIDs))
		for _, id := range newIDs {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

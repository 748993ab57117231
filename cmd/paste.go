package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
	"github.com/rafaelfne/pressroom-sub002/internal/idgen"
)

var (
	pasteFrom  string
	pasteZone  string
	pasteAfter string
)

var pasteCmd = &cobra.Command{
	Use:   "paste <document>",
	Short: "Paste a clipboard payload into a template document",
	Long: `Materialize the components of a clipboard payload into a document.

Every pasted component gets fresh ids throughout its subtree, so the
same payload can be pasted any number of times. By default components
land at the end of the top-level content; --zone targets an owned zone
(ownerId:zoneName) and --after inserts after a sibling. A --zone whose
owner no longer exists falls back to top-level content.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := context.Background()

		path := args[0]
		doc, err := docfile.LoadDocument(path)
		if err != nil {
			return err
		}
		payload, err := docfile.LoadClipboard(pasteFrom)
		if err != nil {
			return err
		}

		next, newIDs := doctree.PasteComponents(doc, payload.Components, pasteZone, pasteAfter, idgen.NewUUIDGenerator())
		if next == doc {
			fmt.Fprintln(cmd.OutOrStdout(), "clipboard payload is empty, nothing pasted")
			return nil
		}

		if err := docfile.SaveDocument(path, next); err != nil {
			return err
		}
		logger.Info(ctx, "pasted components", "document", path, "count", len(newIDs), "from", pasteFrom)
		for _, id := range newIDs {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	pasteCmd.Flags().StringVar(&pasteFrom, "from", "clipboard.json", "clipboard payload input path")
	pasteCmd.Flags().StringVar(&pasteZone, "zone", "", "target zone key (ownerId:zoneName)")
	pasteCmd.Flags().StringVar(&pasteAfter, "after", "", "insert after this sibling id")
	rootCmd.AddCommand(pasteCmd)
}

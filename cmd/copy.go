package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

var (
	copyOut        string
	copyTemplateID string
	copyPageID     string
)

var copyCmd = &cobra.Command{
	Use:   "copy <document> <id>...",
	Short: "Copy components into a clipboard payload file",
	Long: `Serialize the named components, with their full zone subtrees, into
a portable clipboard payload file.

The payload records where it came from (--template-id, --page-id) so a
later paste can tell same-page from cross-page. When a selected id is a
descendant of another selected id, only the outermost subtree is kept.`,
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

		components := doctree.ExtractAndSerialize(doc, ids)
		if len(components) == 0 {
			return fmt.Errorf("no components matched: %v", ids)
		}

		payload := &types.ClipboardPayload{
			Version: types.ClipboardPayloadVersion,
			SourceMetadata: types.SourceMetadata{
				TemplateID: copyTemplateID,
				PageID:     copyPageID,
			},
			Components: components,
			CopiedAt:   time.Now().UTC(),
		}

		if err := docfile.SaveClipboard(copyOut, payload); err != nil {
			return err
		}
		logger.Info(ctx, "copied components", "document", path, "count", len(components), "out", copyOut)
		fmt.Fprintf(cmd.OutOrStdout(), "copied %d component(s) to %s\n", len(components), copyOut)
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVar(&copyOut, "out", "clipboard.json", "clipboard payload output path")
	copyCmd.Flags().StringVar(&copyTemplateID, "template-id", "", "source template id recorded in the payload")
	copyCmd.Flags().StringVar(&copyPageID, "page-id", "", "source page id recorded in the payload")
	rootCmd.AddCommand(copyCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

var listDeep bool

var listCmd = &cobra.Command{
	Use:   "list <document>",
	Short: "List the components of a template document",
	Long: `List the components of a template document in document order:
top-level content first, then zone children grouped under their owner.

Use --deep to include nested zone subtrees.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := docfile.LoadDocument(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, node := range doc.Content {
			fmt.Fprintf(out, "%s  (%s)\n", node.ID, node.Type)
			if listDeep {
				printZones(cmd, doc, node.ID, "  ")
			}
		}
		return nil
	},
}

func printZones(cmd *cobra.Command, doc *types.Document, ownerID, indent string) {
	for _, zoneName := range doctree.FindZonesOwnedBy(doc, ownerID) {
		key := types.ZoneKey(ownerID, zoneName)
		fmt.Fprintf(cmd.OutOrStdout(), "%s[%s]\n", indent, zoneName)
		for _, child := range doc.Zones[key] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  (%s)\n", indent, child.ID, child.Type)
			printZones(cmd, doc, child.ID, indent+"    ")
		}
	}
}

func init() {
	listCmd.Flags().BoolVar(&listDeep, "deep", false, "include nested zone subtrees")
	rootCmd.AddCommand(listCmd)
}

//go:build property

package doctree

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rafaelfne/pressroom-sub002/internal/idgen"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// buildDoc builds a two-level document: rootCount top-level sections, each
// owning a "body" zone with childCount leaves.
func buildDoc(rootCount, childCount int) *types.Document {
	doc := &types.Document{Zones: map[string][]types.Node{}}
	for i := 0; i < rootCount; i++ {
		rootID := fmt.Sprintf("root-%d", i)
		doc.Content = append(doc.Content, node(rootID, "Section"))
		children := make([]types.Node, 0, childCount)
		for j := 0; j < childCount; j++ {
			children = append(children, node(fmt.Sprintf("leaf-%d-%d", i, j), "Text"))
		}
		doc.Zones[types.ZoneKey(rootID, "body")] = children
	}
	return doc
}

// TestTreeOperationProperties validates the operation contracts over
// generated documents and selections.
func TestTreeOperationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: removing an ancestor together with any of its descendants
	// equals removing the ancestor alone.
	properties.Property("ancestor subsumes descendant on remove", prop.ForAll(
		func(rootCount, childCount, rootIdx, childIdx int) bool {
			if rootCount < 1 || childCount < 1 {
				return true
			}
			doc := buildDoc(rootCount, childCount)
			rootID := fmt.Sprintf("root-%d", rootIdx%rootCount)
			leafID := fmt.Sprintf("leaf-%d-%d", rootIdx%rootCount, childIdx%childCount)

			both := Remove(doc, []string{rootID, leafID})
			ancestorOnly := Remove(doc, []string{rootID})

			return reflect.DeepEqual(both, ancestorOnly)
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 5),
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	// Property: duplicate mints ids disjoint from every pre-existing id
	// and keeps the document's ids pairwise distinct.
	properties.Property("duplicate never reuses ids", prop.ForAll(
		func(rootCount, childCount, pickCount int) bool {
			if rootCount < 1 || childCount < 1 {
				return true
			}
			doc := buildDoc(rootCount, childCount)
			existing := make(map[string]bool)
			for _, id := range CollectIDsDeep(doc) {
				existing[id] = true
			}

			picks := make([]string, 0, pickCount)
			for i := 0; i < pickCount; i++ {
				picks = append(picks, fmt.Sprintf("root-%d", i%rootCount))
			}

			generator := idgen.NewSequenceGenerator("p")
			result, newIDs := Duplicate(doc, picks, generator)

			seen := make(map[string]bool)
			for _, id := range CollectIDsDeep(result) {
				if seen[id] {
					return false
				}
				seen[id] = true
			}
			for _, id := range newIDs {
				if existing[id] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 5),
		gen.IntRange(0, 6),
	))

	// Property: extract-then-paste yields ids disjoint from every captured
	// OriginalID while preserving type and non-id props.
	properties.Property("paste regenerates every id", prop.ForAll(
		func(rootCount, childCount, pickIdx int) bool {
			if rootCount < 1 || childCount < 1 {
				return true
			}
			doc := buildDoc(rootCount, childCount)
			pick := fmt.Sprintf("root-%d", pickIdx%rootCount)

			serialized := ExtractAndSerialize(doc, []string{pick})
			if len(serialized) != 1 {
				return false
			}

			generator := idgen.NewSequenceGenerator("p")
			result, newIDs := PasteComponents(doc, serialized, "", "", generator)
			if len(newIDs) != 1 {
				return false
			}

			root := newIDs[0]
			if root == pick {
				return false
			}
			pastedBody := result.Zones[types.ZoneKey(root, "body")]
			if len(pastedBody) != childCount {
				return false
			}
			for _, child := range pastedBody {
				if child.Type != "Text" {
					return false
				}
				if child.Props["id"] != child.ID {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 5),
		gen.IntRange(0, 100),
	))

	// Property: empty inputs are identity operations by reference.
	properties.Property("empty input is identity", prop.ForAll(
		func(rootCount, childCount int) bool {
			if rootCount < 1 || childCount < 1 {
				return true
			}
			doc := buildDoc(rootCount, childCount)
			generator := idgen.NewSequenceGenerator("p")

			removed := Remove(doc, nil)
			duplicated, dupIDs := Duplicate(doc, nil, generator)
			pasted, pasteIDs := PasteComponents(doc, nil, "", "", generator)

			return removed == doc && duplicated == doc && pasted == doc &&
				len(dupIDs) == 0 && len(pasteIDs) == 0
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}

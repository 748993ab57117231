package doctree

import (
	"github.com/rafaelfne/pressroom-sub002/internal/idgen"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// Duplicate deep-clones each matched node together with everything in the
// zones it transitively owns. Every cloned node gets a brand-new id from
// gen through a recursive old-id to new-id remap, so clones never collide
// with existing nodes. Each clone is inserted immediately after its
// original in the same ordered list (root content or zone).
//
// The returned ids are the subtree-root clone ids in document order, ready
// for re-selecting the copies. An empty or unmatched id set returns the
// input Document unchanged and no ids.
func Duplicate(doc *types.Document, ids []string, gen idgen.Generator) (*types.Document, []string) {
	if len(ids) == 0 {
		return doc, nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	// Matches resolve in document order so re-selection order is stable
	// regardless of the order ids were passed in.
	var matches []string
	walk(doc, func(node types.Node) {
		if wanted[node.ID] {
			matches = append(matches, node.ID)
		}
	})
	if len(matches) == 0 {
		return doc, nil
	}

	next := shallowCopy(doc)
	newIDs := make([]string, 0, len(matches))
	for _, id := range matches {
		cloneID, ok := duplicateOne(next, id, gen)
		if ok {
			newIDs = append(newIDs, cloneID)
		}
	}

	return next, newIDs
}

// duplicateOne clones the node with the given id inside doc, mutating doc
// in place (doc is the operation's private working copy). Returns the
// clone's id.
func duplicateOne(doc *types.Document, id string, gen idgen.Generator) (string, bool) {
	for i, node := range doc.Content {
		if node.ID == id {
			clone := cloneSubtree(doc, node, gen)
			doc.Content = insertAfter(doc.Content, i, clone)
			return clone.ID, true
		}
	}
	for key, children := range doc.Zones {
		for i, node := range children {
			if node.ID == id {
				clone := cloneSubtree(doc, node, gen)
				doc.Zones[key] = insertAfter(children, i, clone)
				return clone.ID, true
			}
		}
	}
	return "", false
}

// cloneSubtree deep-clones node and every zone it transitively owns,
// minting a fresh id per cloned node and registering the cloned zones on
// doc under the new owner ids.
func cloneSubtree(doc *types.Document, node types.Node, gen idgen.Generator) types.Node {
	newID := gen.NewID()

	props := types.CloneProps(node.Props)
	if props == nil {
		props = make(map[string]interface{}, 1)
	}
	props["id"] = newID

	clone := types.Node{ID: newID, Type: node.Type, Props: props}

	for _, zoneName := range zoneNamesOwnedBy(doc, node.ID) {
		children := doc.Zones[types.ZoneKey(node.ID, zoneName)]
		cloned := make([]types.Node, 0, len(children))
		for _, child := range children {
			cloned = append(cloned, cloneSubtree(doc, child, gen))
		}
		if doc.Zones == nil {
			doc.Zones = make(map[string][]types.Node)
		}
		doc.Zones[types.ZoneKey(newID, zoneName)] = cloned
	}

	return clone
}

// shallowCopy clones the Document's own containers so the operation can
// mutate them without touching the caller's value. Nodes themselves are
// shared; they are immutable.
func shallowCopy(doc *types.Document) *types.Document {
	next := &types.Document{
		Content: make([]types.Node, len(doc.Content)),
	}
	copy(next.Content, doc.Content)
	if doc.Zones != nil {
		next.Zones = make(map[string][]types.Node, len(doc.Zones))
		for key, children := range doc.Zones {
			copied := make([]types.Node, len(children))
			copy(copied, children)
			next.Zones[key] = copied
		}
	}
	return next
}

// insertAfter returns list with node inserted at index i+1.
func insertAfter(list []types.Node, i int, node types.Node) []types.Node {
	out := make([]types.Node, 0, len(list)+1)
	out = append(out, list[:i+1]...)
	out = append(out, node)
	out = append(out, list[i+1:]...)
	return out
}

package doctree

import (
	"sort"

	"github.com/rafaelfne/pressroom-sub002/internal/idgen"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// ExtractAndSerialize builds Document-independent copies of the requested
// nodes, in document order regardless of the order ids were passed in.
// Both root content and zone children match; each matched node's nested
// zones are folded into its Slots map recursively. A node already
// captured inside an earlier match's subtree is not captured again.
func ExtractAndSerialize(doc *types.Document, ids []string) []types.SerializedNode {
	if len(ids) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	captured := make(map[string]bool)
	var out []types.SerializedNode
	walk(doc, func(node types.Node) {
		if wanted[node.ID] && !captured[node.ID] {
			out = append(out, serializeSubtree(doc, node, captured))
		}
	})

	return out
}

// serializeSubtree converts node and everything it transitively owns into
// a SerializedNode, marking every folded-in id as captured.
func serializeSubtree(doc *types.Document, node types.Node, captured map[string]bool) types.SerializedNode {
	captured[node.ID] = true

	serialized := types.SerializedNode{
		Type:       node.Type,
		Props:      types.CloneProps(node.Props),
		OriginalID: node.ID,
	}

	for _, zoneName := range zoneNamesOwnedBy(doc, node.ID) {
		children := doc.Zones[types.ZoneKey(node.ID, zoneName)]
		slot := make([]types.SerializedNode, 0, len(children))
		for _, child := range children {
			slot = append(slot, serializeSubtree(doc, child, captured))
		}
		if serialized.Slots == nil {
			serialized.Slots = make(map[string][]types.SerializedNode)
		}
		serialized.Slots[zoneName] = slot
	}

	return serialized
}

// PasteComponents materializes serialized nodes into doc. Every id, root
// and nested, is regenerated through gen; pasted content never reuses an
// id from the clipboard, even when pasting back into the same document.
// Nested slots become fresh zone entries keyed off the newly minted owner
// ids.
//
// Top-level nodes land in targetZoneKey, or in root content when
// targetZoneKey is empty or its owner no longer exists. When afterID is
// given and present in the target list the nodes go immediately after it;
// otherwise they are appended at the end. Returns the new Document and the
// new top-level ids. An empty input returns the input Document unchanged.
func PasteComponents(doc *types.Document, components []types.SerializedNode, targetZoneKey, afterID string, gen idgen.Generator) (*types.Document, []string) {
	if len(components) == 0 {
		return doc, nil
	}

	next := shallowCopy(doc)

	pasted := make([]types.Node, 0, len(components))
	newIDs := make([]string, 0, len(components))
	for _, component := range components {
		node := materialize(next, component, gen)
		pasted = append(pasted, node)
		newIDs = append(newIDs, node.ID)
	}

	if targetZoneKey != "" && reachableIDs(next)[types.ZoneOwner(targetZoneKey)] {
		if next.Zones == nil {
			next.Zones = make(map[string][]types.Node)
		}
		next.Zones[targetZoneKey] = insertIntoList(next.Zones[targetZoneKey], pasted, afterID)
	} else {
		// Unresolvable target zone falls back to root content.
		next.Content = insertIntoList(next.Content, pasted, afterID)
	}

	return next, newIDs
}

// materialize converts a SerializedNode back into a live node with a fresh
// id, registering zone entries on doc for its slots recursively.
func materialize(doc *types.Document, component types.SerializedNode, gen idgen.Generator) types.Node {
	newID := gen.NewID()

	props := types.CloneProps(component.Props)
	if props == nil {
		props = make(map[string]interface{}, 1)
	}
	props["id"] = newID

	node := types.Node{ID: newID, Type: component.Type, Props: props}

	for _, slotName := range sortedSlotNames(component.Slots) {
		children := make([]types.Node, 0, len(component.Slots[slotName]))
		for _, child := range component.Slots[slotName] {
			children = append(children, materialize(doc, child, gen))
		}
		if doc.Zones == nil {
			doc.Zones = make(map[string][]types.Node)
		}
		doc.Zones[types.ZoneKey(newID, slotName)] = children
	}

	return node
}

// insertIntoList places nodes immediately after afterID, or at the end
// when afterID is empty or not present in the list.
func insertIntoList(list []types.Node, nodes []types.Node, afterID string) []types.Node {
	at := len(list)
	if afterID != "" {
		for i, node := range list {
			if node.ID == afterID {
				at = i + 1
				break
			}
		}
	}

	out := make([]types.Node, 0, len(list)+len(nodes))
	out = append(out, list[:at]...)
	out = append(out, nodes...)
	out = append(out, list[at:]...)
	return out
}

// sortedSlotNames returns the slot names of a serialized node in
// deterministic order.
func sortedSlotNames(slots map[string][]types.SerializedNode) []string {
	if len(slots) == 0 {
		return nil
	}
	names := make([]string, 0, len(slots))
	for name := range slots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package doctree

import (
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// Remove deletes the given nodes and everything they transitively own.
//
// Ids that are descendants of other ids in the set are dropped first:
// removing an ancestor already removes its descendants, and asking for
// both must not error or double-count. Zones wholly owned by a removed
// node disappear with it, however deeply nested, and surviving zones have
// their child lists filtered. An empty or no-op id set returns the input
// Document unchanged.
func Remove(doc *types.Document, ids []string) *types.Document {
	if len(ids) == 0 {
		return doc
	}

	reachable := reachableIDs(doc)

	// Keep only ids that exist and are not covered by another id in the
	// set.
	requested := make(map[string]bool, len(ids))
	for _, id := range ids {
		if reachable[id] {
			requested[id] = true
		}
	}
	if len(requested) == 0 {
		return doc
	}

	roots := make(map[string]bool, len(requested))
	for id := range requested {
		covered := false
		for other := range requested {
			if other != id && IsDescendantOf(doc, id, other) {
				covered = true
				break
			}
		}
		if !covered {
			roots[id] = true
		}
	}

	// Expand the removal roots to the full closure of owned descendants.
	removed := make(map[string]bool, len(roots))
	var collect func(id string)
	collect = func(id string) {
		if removed[id] {
			return
		}
		removed[id] = true
		for _, key := range FindZonesOwnedBy(doc, id) {
			for _, child := range doc.Zones[key] {
				collect(child.ID)
			}
		}
	}
	for id := range roots {
		collect(id)
	}

	next := &types.Document{
		Content: make([]types.Node, 0, len(doc.Content)),
	}
	for _, node := range doc.Content {
		if !removed[node.ID] {
			next.Content = append(next.Content, node)
		}
	}

	if len(doc.Zones) > 0 {
		next.Zones = make(map[string][]types.Node, len(doc.Zones))
		for key, children := range doc.Zones {
			owner := types.ZoneOwner(key)
			if removed[owner] {
				continue
			}
			kept := make([]types.Node, 0, len(children))
			for _, child := range children {
				if !removed[child.ID] {
					kept = append(kept, child)
				}
			}
			next.Zones[key] = kept
		}
	}

	// Removal can strand zones whose owner was only reachable through a
	// removed subtree; prune them along with pre-existing orphans.
	pruneOrphanZones(next)

	return next
}

// pruneOrphanZones drops zones whose owner is no longer reachable from the
// root content.
func pruneOrphanZones(doc *types.Document) {
	if len(doc.Zones) == 0 {
		doc.Zones = nil
		return
	}
	reachable := reachableIDs(doc)
	for key := range doc.Zones {
		if !reachable[types.ZoneOwner(key)] {
			delete(doc.Zones, key)
		}
	}
	if len(doc.Zones) == 0 {
		doc.Zones = nil
	}
}

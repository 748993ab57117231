// Package doctree implements the document tree store queries and the pure
// editing operations (remove, duplicate, extract, paste) of the Pressroom
// editing engine.
//
// Every operation treats its input Document as immutable: callers get back
// either a freshly built Document or, when nothing changed, the exact input
// value. Zones whose owner node no longer exists are orphaned; queries and
// operations never traverse them and prune them when they rebuild a
// Document.
package doctree

import (
	"sort"
	"strings"

	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// FindZonesOwnedBy returns the zone keys directly owned by ownerID, sorted
// by zone name for deterministic iteration.
func FindZonesOwnedBy(doc *types.Document, ownerID string) []string {
	var keys []string
	for key := range doc.Zones {
		if types.ZoneOwner(key) == ownerID {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// IsDescendantOf reports whether childID appears, at any depth, inside a
// zone transitively owned by parentID. A node is not its own descendant.
// A visited set keeps the walk terminating even on malformed documents
// with cyclic zone references.
func IsDescendantOf(doc *types.Document, childID, parentID string) bool {
	if childID == parentID {
		return false
	}

	visited := make(map[string]bool)
	stack := []string{parentID}

	for len(stack) > 0 {
		ownerID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[ownerID] {
			continue
		}
		visited[ownerID] = true

		for _, key := range FindZonesOwnedBy(doc, ownerID) {
			for _, child := range doc.Zones[key] {
				if child.ID == childID {
					return true
				}
				stack = append(stack, child.ID)
			}
		}
	}

	return false
}

// CollectIDs returns the ids of the top-level content nodes, in order.
func CollectIDs(doc *types.Document) []string {
	ids := make([]string, 0, len(doc.Content))
	for _, node := range doc.Content {
		ids = append(ids, node.ID)
	}
	return ids
}

// CollectIDsDeep returns every node id reachable from the root content
// through owned zones, in document order. Orphaned zones are not
// traversed.
func CollectIDsDeep(doc *types.Document) []string {
	var ids []string
	walk(doc, func(node types.Node) {
		ids = append(ids, node.ID)
	})
	return ids
}

// walk visits every reachable node in document order: content order first,
// then each node's zones in zone-name order, depth first. A visited set
// guards against malformed cyclic zone references.
func walk(doc *types.Document, visit func(types.Node)) {
	visited := make(map[string]bool)
	var descend func(node types.Node)
	descend = func(node types.Node) {
		if visited[node.ID] {
			return
		}
		visited[node.ID] = true
		visit(node)
		for _, key := range FindZonesOwnedBy(doc, node.ID) {
			for _, child := range doc.Zones[key] {
				descend(child)
			}
		}
	}
	for _, node := range doc.Content {
		descend(node)
	}
}

// reachableIDs returns the set of ids reachable through owned zones.
func reachableIDs(doc *types.Document) map[string]bool {
	ids := make(map[string]bool)
	walk(doc, func(node types.Node) {
		ids[node.ID] = true
	})
	return ids
}

// zoneNamesOwnedBy returns the bare zone names owned by ownerID, sorted.
func zoneNamesOwnedBy(doc *types.Document, ownerID string) []string {
	prefix := ownerID + types.ZoneKeySeparator
	var names []string
	for key := range doc.Zones {
		if strings.HasPrefix(key, prefix) {
			names = append(names, key[len(prefix):])
		}
	}
	sort.Strings(names)
	return names
}

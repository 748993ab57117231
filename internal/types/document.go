// Package types provides the shared data model for the Pressroom editing
// engine. This package contains the document tree and clipboard types used
// throughout the editor to avoid circular dependencies between packages.
package types

import (
	"strings"
	"time"
)

// Node is one addressable component instance in a document tree. A Node is
// treated as an immutable value: operations never modify a Node in place,
// they build replacements.
type Node struct {
	// ID uniquely identifies the node within its Document
	ID string `yaml:"id" json:"id"`
	// Type is the component type name (e.g., "Text", "Table", "Section")
	Type string `yaml:"type" json:"type"`
	// Props holds arbitrary component properties. The reserved key "id"
	// mirrors the node's own ID for lookup convenience.
	Props map[string]interface{} `yaml:"props" json:"props"`
}

// Document is the full component tree for one page or template: the root
// content list plus the zone dictionary. Content is the implicit top-level
// zone.
type Document struct {
	// Content is the ordered list of top-level nodes
	Content []Node `yaml:"content" json:"content"`
	// Zones maps a synthetic zone key ("{ownerID}:{zoneName}") to the
	// ordered child nodes held in that zone. A zone exists only while its
	// owner node exists; zones whose owner is gone are orphaned and
	// ignored by all operations.
	Zones map[string][]Node `yaml:"zones,omitempty" json:"zones,omitempty"`
}

// SerializedNode is a clipboard-portable, Document-independent copy of a
// node and everything it transitively owns. Zone contents are folded into
// Slots keyed by the bare zone name.
type SerializedNode struct {
	// Type is the component type name
	Type string `json:"type"`
	// Props carries the node's properties, including the reserved "id" key
	Props map[string]interface{} `json:"props"`
	// Slots maps zone names to the serialized children of that zone
	Slots map[string][]SerializedNode `json:"slots,omitempty"`
	// OriginalID records the id the node had when it was copied. Paste
	// never reuses it; it exists for provenance and diagnostics.
	OriginalID string `json:"originalId"`
}

// SourceMetadata identifies where a clipboard payload was copied from.
type SourceMetadata struct {
	// TemplateID is the template the payload originated in
	TemplateID string `json:"templateId,omitempty"`
	// PageID is the page within that template
	PageID string `json:"pageId,omitempty"`
}

// ClipboardPayloadVersion is the current clipboard interchange version.
const ClipboardPayloadVersion = 1

// ClipboardPayload is a serialized, Document-independent copy of one or
// more nodes ready for paste, including paste into a different document.
type ClipboardPayload struct {
	// Version is the payload format version
	Version int `json:"version"`
	// SourceMetadata records the copy origin
	SourceMetadata SourceMetadata `json:"sourceMetadata"`
	// Components holds the copied subtrees in document order
	Components []SerializedNode `json:"components"`
	// CopiedAt is the copy timestamp
	CopiedAt time.Time `json:"copiedAt"`
}

// ZoneKeySeparator joins an owner id and a zone name into a zone key.
const ZoneKeySeparator = ":"

// ZoneKey builds the synthetic key addressing zoneName on the node ownerID.
func ZoneKey(ownerID, zoneName string) string {
	return ownerID + ZoneKeySeparator + zoneName
}

// SplitZoneKey splits a zone key into its owner id and zone name. Zone
// names may themselves contain the separator; only the first occurrence
// delimits the owner. ok is false for keys with no separator.
func SplitZoneKey(key string) (ownerID, zoneName string, ok bool) {
	idx := strings.Index(key, ZoneKeySeparator)
	if idx < 0 {
		return "", "", false
	}
	return key[:idx], key[idx+1:], true
}

// ZoneOwner returns the owner id segment of a zone key, or "" if the key
// is malformed.
func ZoneOwner(key string) string {
	owner, _, ok := SplitZoneKey(key)
	if !ok {
		return ""
	}
	return owner
}

// CloneProps returns a shallow copy of a props map. Callers that need to
// change props on an otherwise-shared node copy first.
func CloneProps(props map[string]interface{}) map[string]interface{} {
	if props == nil {
		return nil
	}
	clone := make(map[string]interface{}, len(props))
	for k, v := range props {
		clone[k] = v
	}
	return clone
}

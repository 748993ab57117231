// Package docfile is the host-side persistence seam of the Pressroom
// tooling: it loads and saves template documents as YAML and clipboard
// payloads as JSON, and validates document structure. The editing core
// never touches files; everything here serves the CLI and the watcher.
package docfile

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
	"github.com/rafaelfne/pressroom-sub002/internal/errors"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// LoadDocument reads a YAML template document from path.
func LoadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("DOC_READ_FAILED", "cannot read document", err).WithFile(path)
	}

	var doc types.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewDocumentError("DOC_PARSE_FAILED", "cannot parse document", err).WithFile(path)
	}

	return &doc, nil
}

// SaveDocument writes a template document to path as YAML.
func SaveDocument(path string, doc *types.Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.NewDocumentError("DOC_ENCODE_FAILED", "cannot encode document", err).WithFile(path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIOError("DOC_WRITE_FAILED", "cannot write document", err).WithFile(path)
	}
	return nil
}

// LoadClipboard reads a JSON clipboard payload from path.
func LoadClipboard(path string) (*types.ClipboardPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("CLIP_READ_FAILED", "cannot read clipboard payload", err).WithFile(path)
	}

	var payload types.ClipboardPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.NewClipboardError("CLIP_PARSE_FAILED", "cannot parse clipboard payload", err).WithFile(path)
	}

	if payload.Version != types.ClipboardPayloadVersion {
		return nil, errors.NewClipboardError(
			"CLIP_BAD_VERSION",
			fmt.Sprintf("unsupported clipboard payload version %d", payload.Version),
			nil,
		).WithFile(path).WithContext("version", payload.Version)
	}

	return &payload, nil
}

// SaveClipboard writes a clipboard payload to path as indented JSON.
func SaveClipboard(path string, payload *types.ClipboardPayload) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.NewClipboardError("CLIP_ENCODE_FAILED", "cannot encode clipboard payload", err).WithFile(path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIOError("CLIP_WRITE_FAILED", "cannot write clipboard payload", err).WithFile(path)
	}
	return nil
}

// Severity grades a validation diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one structural finding in a document.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// Subject is the node id or zone key the finding points at
	Subject string
}

// Validate checks a document's structural invariants: id uniqueness,
// zone-key ownership, well-formed zone keys, and the mirrored "id" prop.
// A document with only warnings is still editable; the engine treats
// orphaned zones as absent.
func Validate(doc *types.Document) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]bool)
	checkNode := func(node types.Node, where string) {
		if node.ID == "" {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     "EMPTY_ID",
				Message:  fmt.Sprintf("node in %s has an empty id", where),
				Subject:  where,
			})
			return
		}
		if seen[node.ID] {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     "DUPLICATE_ID",
				Message:  fmt.Sprintf("node id %q appears more than once", node.ID),
				Subject:  node.ID,
			})
		}
		seen[node.ID] = true

		if node.Props != nil {
			if mirrored, ok := node.Props["id"]; ok && mirrored != node.ID {
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Code:     "ID_PROP_MISMATCH",
					Message:  fmt.Sprintf("node %q carries a mismatched id prop %v", node.ID, mirrored),
					Subject:  node.ID,
				})
			}
		}
	}

	for _, node := range doc.Content {
		checkNode(node, "content")
	}
	for key, children := range doc.Zones {
		for _, child := range children {
			checkNode(child, key)
		}
	}

	reachable := make(map[string]bool)
	for _, id := range doctree.CollectIDsDeep(doc) {
		reachable[id] = true
	}

	for key := range doc.Zones {
		owner, _, ok := types.SplitZoneKey(key)
		if !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     "MALFORMED_ZONE_KEY",
				Message:  fmt.Sprintf("zone key %q is not of the form ownerId:zoneName", key),
				Subject:  key,
			})
			continue
		}
		if !reachable[owner] {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "ORPHANED_ZONE",
				Message:  fmt.Sprintf("zone %q has no live owner and will be ignored", key),
				Subject:  key,
			})
		}
	}

	return diags
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

package docfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

func testDoc() *types.Document {
	return &types.Document{
		Content: []types.Node{
			{ID: "section-1", Type: "Section", Props: map[string]interface{}{"id": "section-1"}},
			{ID: "text-1", Type: "Text", Props: map[string]interface{}{"id": "text-1", "value": "Hello"}},
		},
		Zones: map[string][]types.Node{
			"section-1:body": {
				{ID: "text-2", Type: "Text", Props: map[string]interface{}{"id": "text-2"}},
			},
		},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, SaveDocument(path, testDoc()))
	loaded, err := LoadDocument(path)

	require.NoError(t, err)
	assert.Len(t, loaded.Content, 2)
	assert.Equal(t, "section-1", loaded.Content[0].ID)
	assert.Equal(t, "Hello", loaded.Content[1].Props["value"])
	assert.Len(t, loaded.Zones["section-1:body"], 1)
}

func TestLoadDocument_MissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadDocument_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: {nope"), 0644))

	_, err := LoadDocument(path)

	assert.Error(t, err)
}

func TestClipboardRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.json")
	payload := &types.ClipboardPayload{
		Version:        types.ClipboardPayloadVersion,
		SourceMetadata: types.SourceMetadata{TemplateID: "tpl-1", PageID: "page-2"},
		Components: []types.SerializedNode{{
			Type:       "Text",
			Props:      map[string]interface{}{"id": "text-1"},
			OriginalID: "text-1",
		}},
		CopiedAt: time.Now().UTC(),
	}

	require.NoError(t, SaveClipboard(path, payload))
	loaded, err := LoadClipboard(path)

	require.NoError(t, err)
	assert.Equal(t, "tpl-1", loaded.SourceMetadata.TemplateID)
	assert.Len(t, loaded.Components, 1)
	assert.Equal(t, "text-1", loaded.Components[0].OriginalID)
}

func TestLoadClipboard_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99, "components": []}`), 0644))

	_, err := LoadClipboard(path)

	assert.Error(t, err)
}

func TestValidate_CleanDocument(t *testing.T) {
	diags := Validate(testDoc())

	assert.Empty(t, diags)
	assert.False(t, HasErrors(diags))
}

func TestValidate_DuplicateID(t *testing.T) {
	doc := testDoc()
	doc.Content = append(doc.Content, types.Node{ID: "text-1", Type: "Text"})

	diags := Validate(doc)

	require.Len(t, diags, 1)
	assert.Equal(t, "DUPLICATE_ID", diags[0].Code)
	assert.True(t, HasErrors(diags))
}

func TestValidate_OrphanedZoneIsWarning(t *testing.T) {
	doc := testDoc()
	doc.Zones["ghost:body"] = []types.Node{{ID: "text-9", Type: "Text"}}

	diags := Validate(doc)

	require.Len(t, diags, 1)
	assert.Equal(t, "ORPHANED_ZONE", diags[0].Code)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.False(t, HasErrors(diags))
}

func TestValidate_MalformedZoneKey(t *testing.T) {
	doc := testDoc()
	doc.Zones["no-separator"] = []types.Node{}

	diags := Validate(doc)

	require.Len(t, diags, 1)
	assert.Equal(t, "MALFORMED_ZONE_KEY", diags[0].Code)
}

func TestValidate_IDPropMismatch(t *testing.T) {
	doc := testDoc()
	doc.Content[0].Props = map[string]interface{}{"id": "other"}

	diags := Validate(doc)

	require.Len(t, diags, 1)
	assert.Equal(t, "ID_PROP_MISMATCH", diags[0].Code)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
}

func TestValidate_EmptyID(t *testing.T) {
	doc := &types.Document{Content: []types.Node{{Type: "Text"}}}

	diags := Validate(doc)

	require.Len(t, diags, 1)
	assert.Equal(t, "EMPTY_ID", diags[0].Code)
}

package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelfne/pressroom-sub002/internal/docfile"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// execute runs the root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// writeTestDoc creates a small document on disk and returns its path.
func writeTestDoc(t *testing.T) string {
	t.Helper()
	doc := &types.Document{
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
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, docfile.SaveDocument(path, doc))
	return path
}

func TestListCommand(t *testing.T) {
	path := writeTestDoc(t)
	listDeep = false

	out, err := execute(t, "list", path)

	require.NoError(t, err)
	assert.Contains(t, out, "section-1  (Section)")
	assert.Contains(t, out, "text-1  (Text)")
	assert.NotContains(t, out, "text-2")
}

func TestListCommandDeep(t *testing.T) {
	path := writeTestDoc(t)
	listDeep = true
	defer func() { listDeep = false }()

	out, err := execute(t, "list", path, "--deep")

	require.NoError(t, err)
	assert.Contains(t, out, "[body]")
	assert.Contains(t, out, "text-2  (Text)")
}

func TestRemoveCommand(t *testing.T) {
	path := writeTestDoc(t)
	removeDryRun = false

	out, err := execute(t, "remove", path, "section-1")

	require.NoError(t, err)
	assert.Contains(t, out, "removed 2 component(s)")

	doc, err := docfile.LoadDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Content, 1)
	assert.Equal(t, "text-1", doc.Content[0].ID)
	assert.Empty(t, doc.Zones)
}

func TestRemoveCommandUnknownID(t *testing.T) {
	path := writeTestDoc(t)
	removeDryRun = false

	out, err := execute(t, "remove", path, "no-such-id")

	require.NoError(t, err)
	assert.Contains(t, out, "nothing to remove")

	doc, err := docfile.LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Content, 2)
}

func TestRemoveCommandDryRun(t *testing.T) {
	path := writeTestDoc(t)

	out, err := execute(t, "remove", path, "text-1", "--dry-run")
	defer func() { removeDryRun = false }()

	require.NoError(t, err)
	assert.Contains(t, out, "would remove 1 component(s)")

	doc, err := docfile.LoadDocument(path)
	require.NoError(t, err)
	assert.Len(t, doc.Content, 2)
}

func TestDuplicateCommand(t *testing.T) {
	path := writeTestDoc(t)

	out, err := execute(t, "duplicate", path, "text-1")

	require.NoError(t, err)
	assert.NotEmpty(t, out)

	doc, err := docfile.LoadDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Content, 3)
	assert.Equal(t, "Text", doc.Content[2].Type)
	assert.NotEqual(t, "text-1", doc.Content[2].ID)
}

func TestCopyPasteCommands(t *testing.T) {
	path := writeTestDoc(t)
	clipPath := filepath.Join(t.TempDir(), "clip.json")
	defer func() {
		copyOut = "clipboard.json"
		pasteFrom = "clipboard.json"
		pasteZone = ""
		pasteAfter = ""
	}()

	out, err := execute(t, "copy", path, "section-1", "--out", clipPath, "--template-id", "tpl-1")
	require.NoError(t, err)
	assert.Contains(t, out, "copied 1 component(s)")

	payload, err := docfile.LoadClipboard(clipPath)
	require.NoError(t, err)
	assert.Equal(t, "tpl-1", payload.SourceMetadata.TemplateID)
	require.Len(t, payload.Components, 1)
	assert.Equal(t, "section-1", payload.Components[0].OriginalID)

	_, err = execute(t, "paste", path, "--from", clipPath)
	require.NoError(t, err)

	doc, err := docfile.LoadDocument(path)
	require.NoError(t, err)
	require.Len(t, doc.Content, 3)
	assert.Equal(t, "Section", doc.Content[2].Type)
	assert.NotEqual(t, "section-1", doc.Content[2].ID)
}

func TestCopyCommandNoMatch(t *testing.T) {
	path := writeTestDoc(t)
	clipPath := filepath.Join(t.TempDir(), "clip.json")
	defer func() { copyOut = "clipboard.json" }()

	_, err := execute(t, "copy", path, "no-such-id", "--out", clipPath)

	assert.Error(t, err)
	assert.NoFileExists(t, clipPath)
}

func TestValidateCommandClean(t *testing.T) {
	path := writeTestDoc(t)

	out, err := execute(t, "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}

func TestValidateCommandDuplicateID(t *testing.T) {
	path := writeTestDoc(t)
	doc, err := docfile.LoadDocument(path)
	require.NoError(t, err)
	doc.Content = append(doc.Content, types.Node{ID: "text-1", Type: "Text"})
	require.NoError(t, docfile.SaveDocument(path, doc))

	out, err := execute(t, "validate", path)

	assert.Error(t, err)
	assert.Contains(t, out, "DUPLICATE_ID")
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := execute(t, "validate", filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	versionFormat = "text"
	versionDetailed = false

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "pressroom")
}

func TestVersionCommandJSON(t *testing.T) {
	defer func() {
		versionFormat = "text"
		versionDetailed = false
	}()

	out, err := execute(t, "version", "--format", "json", "--detailed")

	require.NoError(t, err)
	assert.Contains(t, out, `"version"`)
	assert.Contains(t, out, `"platform"`)
}

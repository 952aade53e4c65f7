package manifest

import (
	"encoding/json"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFS is an in-memory FileSystem for document round-trips.
type mockFS struct {
	files    map[string][]byte
	writeErr error
}

func newMockFS() *mockFS {
	return &mockFS{files: map[string][]byte{}}
}

func (m *mockFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *mockFS) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	return nil
}

func TestLoad_ParsesDocument(t *testing.T) {
	fs := newMockFS()
	fs.files["package.json"] = []byte(`{"name":"x","dependencies":{"react":"^19.0.0"}}`)

	doc, err := Load(fs, "package.json")
	require.NoError(t, err)
	assert.Equal(t, "x", doc.GetString("name"))
	assert.Equal(t, "^19.0.0", doc.NestedString("dependencies", "react"))
}

func TestLoad_MissingFileAndMalformedJSON(t *testing.T) {
	fs := newMockFS()

	_, err := Load(fs, "missing.json")
	assert.Error(t, err)

	fs.files["bad.json"] = []byte(`{not json`)
	_, err = Load(fs, "bad.json")
	assert.Error(t, err)
}

func TestSave_RoundTripsAndEndsWithNewline(t *testing.T) {
	fs := newMockFS()
	fs.files["package.json"] = []byte(`{"name":"x"}`)

	doc, err := Load(fs, "package.json")
	require.NoError(t, err)
	doc.Set("name", "demo")
	require.NoError(t, doc.Save(fs, "package.json"))

	raw := fs.files["package.json"]
	assert.Equal(t, byte('\n'), raw[len(raw)-1])

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "demo", parsed["name"])
}

func TestMergeMap_PreservesExistingEntriesWithoutOverwrite(t *testing.T) {
	fs := newMockFS()
	fs.files["package.json"] = []byte(`{"dependencies":{"react":"^19.0.0"}}`)

	doc, err := Load(fs, "package.json")
	require.NoError(t, err)

	err = doc.MergeMap("dependencies", map[string]string{
		"react":                "^18.0.0", // existing: must survive
		"@langchain/anthropic": "^0.3.15",
	}, false)
	require.NoError(t, err)

	assert.Equal(t, "^19.0.0", doc.NestedString("dependencies", "react"))
	assert.Equal(t, "^0.3.15", doc.NestedString("dependencies", "@langchain/anthropic"))
}

func TestMergeMap_OverwriteReplacesExistingEntries(t *testing.T) {
	doc := New()
	require.NoError(t, doc.MergeMap("resolutions", map[string]string{"@langchain/core": "^0.3.0"}, true))
	require.NoError(t, doc.MergeMap("resolutions", map[string]string{"@langchain/core": "^0.3.42"}, true))

	assert.Equal(t, "^0.3.42", doc.NestedString("resolutions", "@langchain/core"))
}

func TestMergeMap_CreatesMissingObject(t *testing.T) {
	doc := New()
	require.NoError(t, doc.MergeMap("graphs", map[string]string{"agent": "./react/src/graph.ts:graph"}, true))

	keys, err := doc.NestedKeys("graphs")
	require.NoError(t, err)
	assert.Equal(t, []string{"agent"}, keys)
}

func TestMergeMap_NonObjectKeyErrors(t *testing.T) {
	fs := newMockFS()
	fs.files["package.json"] = []byte(`{"dependencies":"oops"}`)

	doc, err := Load(fs, "package.json")
	require.NoError(t, err)

	err = doc.MergeMap("dependencies", map[string]string{"a": "1"}, false)
	assert.Error(t, err)
}

func TestDeleteAndHas(t *testing.T) {
	fs := newMockFS()
	fs.files["package.json"] = []byte(`{"workspaces":["apps/*"],"name":"x"}`)

	doc, err := Load(fs, "package.json")
	require.NoError(t, err)
	assert.True(t, doc.Has("workspaces"))

	doc.Delete("workspaces")
	assert.False(t, doc.Has("workspaces"))
	assert.True(t, doc.Has("name"))
}

func TestNestedKeys_AbsentKeyIsNil(t *testing.T) {
	doc := New()
	keys, err := doc.NestedKeys("graphs")
	require.NoError(t, err)
	assert.Nil(t, keys)
}

func sortedKeys(t *testing.T, doc *Document, key string) []string {
	t.Helper()
	keys, err := doc.NestedKeys(key)
	require.NoError(t, err)
	sort.Strings(keys)
	return keys
}

func TestMergeMap_UnionAcrossCalls(t *testing.T) {
	doc := New()
	require.NoError(t, doc.MergeMap("graphs", map[string]string{"a": "1"}, true))
	require.NoError(t, doc.MergeMap("graphs", map[string]string{"b": "2"}, true))

	assert.Equal(t, []string{"a", "b"}, sortedKeys(t, doc, "graphs"))
}

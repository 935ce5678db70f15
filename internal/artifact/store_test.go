package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore()

	path := filepath.Join(dir, "product_specs.json")
	in := &Artifact{Name: "product_specs.json", Kind: KindJSON, Content: `{"title": "Test"}`}

	require.NoError(t, store.Save(path, in))

	out, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, KindJSON, out.Kind)
	assert.Equal(t, in.Content, out.Content)
}

func TestFSStore_Save_MissingParentDir(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore()

	path := filepath.Join(dir, "does", "not", "exist", "out.md")
	err := store.Save(path, NewMarkdown("out.md", "# Report"))

	require.Error(t, err)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
}

func TestFSStore_Save_ParentIsFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFSStore()

	blocker := filepath.Join(dir, "reports")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0644))

	err := store.Save(filepath.Join(blocker, "out.md"), NewMarkdown("out.md", "# Report"))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	require.NotNil(t, ioErr.Cause)
	assert.Contains(t, ioErr.Cause.Error(), "not a directory")
}

func TestFSStore_Load_MissingFile(t *testing.T) {
	store := NewFSStore()

	_, err := store.Load(filepath.Join(t.TempDir(), "nope.json"))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
}

func TestKindFromPath(t *testing.T) {
	assert.Equal(t, KindJSON, kindFromPath("a/b/plan.json"))
	assert.Equal(t, KindMarkdown, kindFromPath("a/b/architecture.md"))
	assert.Equal(t, KindMarkdown, kindFromPath("notes.txt"))
}

func TestArtifact_JSONRoundTrip(t *testing.T) {
	type record struct {
		Name  string   `json:"name"`
		Goals []string `json:"goals"`
	}

	orig := record{Name: "Dana", Goals: []string{"ship", "learn"}}
	a, err := NewJSON("persona.json", orig)
	require.NoError(t, err)

	var decoded record
	require.NoError(t, a.Decode(&decoded))
	assert.Equal(t, orig, decoded)

	// Re-serializing the decoded record yields an equivalent artifact
	b, err := NewJSON("persona.json", decoded)
	require.NoError(t, err)
	assert.Equal(t, a.Content, b.Content)
}

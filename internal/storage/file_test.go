package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := testRecord{Name: "example", Count: 3}
	assert.True(t, store.Set("record", in))

	var out testRecord
	assert.True(t, store.Get("record", &out))
	assert.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out testRecord
	assert.False(t, store.Get("absent", &out))
	assert.Equal(t, testRecord{}, out)
}

func TestFileStoreCorruptValue(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o660))

	var out testRecord
	assert.False(t, store.Get("broken", &out))
}

func TestFileStoreRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.True(t, store.Set("record", testRecord{Name: "x"}))
	assert.True(t, store.Remove("record"))

	var out testRecord
	assert.False(t, store.Get("record", &out))

	// removing an absent key is not a failure
	assert.True(t, store.Remove("record"))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	assert.True(t, first.Set("record", testRecord{Name: "kept", Count: 1}))

	second, err := NewFileStore(dir)
	require.NoError(t, err)

	var out testRecord
	assert.True(t, second.Get("record", &out))
	assert.Equal(t, "kept", out.Name)
}

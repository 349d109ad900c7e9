package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAssignsFilename(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("jpeg bytes"), "mug.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, "mug.jpg", name, "assigned name must not reuse the client filename")

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestDiskStoreSaveUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		name, err := store.Save(strings.NewReader("x"), "a.png")
		require.NoError(t, err)
		assert.False(t, seen[name], "duplicate filename %s", name)
		seen[name] = true
	}
}

func TestDiskStoreRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, statErr := os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(statErr))

	// Removing again must not fail: missing files are tolerated.
	assert.NoError(t, store.Remove(name))
}

func TestDiskStoreRemoveRejectsPathTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Remove("../etc/passwd"))
	assert.Error(t, store.Remove(""))
}

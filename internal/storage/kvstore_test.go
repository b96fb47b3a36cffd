package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoreSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")

	store, err := NewKVStore(path)
	require.NoError(t, err)

	_, ok := store.Get("vault_goals_v2")
	assert.False(t, ok)

	require.NoError(t, store.Set("vault_goals_v2", `[{"id":"a"}]`))

	value, ok := store.Get("vault_goals_v2")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, value)
}

func TestKVStoreReloadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")

	store, err := NewKVStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("vault_memories_v1", `[]`))
	require.NoError(t, store.Set("vault_goals_v2", `[{"id":"g"}]`))

	reloaded, err := NewKVStore(path)
	require.NoError(t, err)

	value, ok := reloaded.Get("vault_goals_v2")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"g"}]`, value)
}

func TestKVStoreStartsEmptyOnCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	store, err := NewKVStore(path)
	require.NoError(t, err)

	_, ok := store.Get("vault_goals_v2")
	assert.False(t, ok)
}

func TestKVStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "vault.json")

	store, err := NewKVStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("vault_goals_v2", "[]"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestKVStoreConcurrentAccess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.json")

	store, err := NewKVStore(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				key := fmt.Sprintf("key-%d", n)
				assert.NoError(t, store.Set(key, fmt.Sprintf("value-%d", j)))
				store.Get(key)
				store.Get("key-0")
			}
		}(i)
	}
	wg.Wait()

	value, ok := store.Get("key-0")
	require.True(t, ok)
	assert.Equal(t, "value-19", value)
}

package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitStoreGetSet(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())

	k, v := []byte("roses"), []byte("red")
	assert.Nil(t, kv.Get(k))
	assert.False(t, kv.Has(k))

	// writes in a cache wrap are not visible until Write
	cache := kv.CacheWrap()
	cache.Set(k, v)
	assert.Nil(t, kv.Get(k))
	cache.Write()
	assert.Equal(t, v, kv.Get(k))
	assert.True(t, kv.Has(k))

	// a discarded wrap leaves no trace
	c2 := kv.CacheWrap()
	c2.Set([]byte("violets"), []byte("blue"))
	c2.Discard()
	assert.Nil(t, kv.Get([]byte("violets")))
}

func TestCommitStoreCommit(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())
	assert.Equal(t, int64(0), kv.LatestVersion().Version)

	cache := kv.CacheWrap()
	cache.Set([]byte("a"), []byte("1"))
	cache.Write()

	id := kv.Commit()
	assert.Equal(t, int64(1), id.Version)
	assert.NotEmpty(t, id.Hash)
	assert.Equal(t, id.Version, kv.LatestVersion().Version)

	// state survives the commit
	assert.Equal(t, []byte("1"), kv.Get([]byte("a")))

	// another commit advances the version and changes the hash
	c2 := kv.CacheWrap()
	c2.Set([]byte("b"), []byte("2"))
	c2.Write()
	id2 := kv.Commit()
	assert.Equal(t, int64(2), id2.Version)
	assert.NotEqual(t, id.Hash, id2.Hash)
}

func TestCommitStoreReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "iavl-reload")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	kv := NewCommitStore(dir, "demo")
	require.NoError(t, kv.LoadLatestVersion())
	kv.Set([]byte("k"), []byte("v"))
	id := kv.Commit()
	kv.Close()

	// a fresh handle on the same directory sees the committed state
	kv2 := NewCommitStore(dir, "demo")
	defer kv2.Close()
	require.NoError(t, kv2.LoadLatestVersion())
	assert.Equal(t, id.Version, kv2.LatestVersion().Version)
	assert.Equal(t, []byte("v"), kv2.Get([]byte("k")))
}

func TestCommitStoreIterator(t *testing.T) {
	kv := MockCommitStore()
	require.NoError(t, kv.LoadLatestVersion())

	kv.Set([]byte("a"), []byte("1"))
	kv.Set([]byte("b"), []byte("2"))
	kv.Set([]byte("c"), []byte("3"))

	iter := kv.Iterator(nil, nil)
	var keys []string
	for ; iter.Valid(); iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	iter.Close()
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	rev := kv.ReverseIterator([]byte("b"), nil)
	keys = nil
	for ; rev.Valid(); rev.Next() {
		keys = append(keys, string(rev.Key()))
	}
	rev.Close()
	assert.Equal(t, []string{"c", "b"}, keys)
}

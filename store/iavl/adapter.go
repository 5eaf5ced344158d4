/*
Package iavl provides a committed state backed by a merkleized
iavl tree, persisted in a leveldb database.

The CommitStore keeps the canonical state. All transaction
processing happens on BTreeCacheWrap layers on top of it, which
batch their writes into the tree on Write. Commit saves the
current tree as the next version and returns the root hash.
*/
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/handoff/store"
)

// cache size of the iavl tree nodes held in memory
const nodeCacheSize = 10000

// CommitStore manages an iavl committed state
type CommitStore struct {
	tree *iavl.MutableTree
	db   dbm.DB
}

var _ store.CommitKVStore = CommitStore{}
var _ store.CacheableKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing under the
// given directory. The name is used for the database file.
func NewCommitStore(dir, name string) CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, dir)
	tree := iavl.NewMutableTree(db, nodeCacheSize)
	return CommitStore{tree: tree, db: db}
}

// MockCommitStore returns a store with no disk persistence,
// useful for tests
func MockCommitStore() CommitStore {
	db := dbm.NewMemDB()
	tree := iavl.NewMutableTree(db, nodeCacheSize)
	return CommitStore{tree: tree, db: db}
}

// Close releases the database handle, so the same directory can
// be opened again
func (s CommitStore) Close() {
	s.db.Close()
}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (s CommitStore) Get(key []byte) []byte {
	_, value := s.tree.Get(key)
	return value
}

// Has checks if a key exists. Panics on nil key.
func (s CommitStore) Has(key []byte) bool {
	return s.tree.Has(key)
}

// Set adds the value to the working tree. It is not persisted
// until the next Commit.
func (s CommitStore) Set(key, value []byte) {
	s.tree.Set(key, value)
}

// Delete removes the key from the working tree
func (s CommitStore) Delete(key []byte) {
	s.tree.Remove(key)
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (s CommitStore) Iterator(start, end []byte) store.Iterator {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	s.tree.IterateRange(start, end, true, add)
	return store.NewSliceIterator(res)
}

// ReverseIterator over a domain of keys in descending order. End is exclusive.
func (s CommitStore) ReverseIterator(start, end []byte) store.Iterator {
	var res []store.Model
	add := func(key []byte, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	}
	s.tree.IterateRange(start, end, false, add)
	return store.NewSliceIterator(res)
}

// NewBatch returns a batch that can write multiple ops to the tree later
func (s CommitStore) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(s)
}

// CacheWrap gives us a savepoint to perform actions on top of the
// working tree. Call Write to push the changes down, or Discard to
// drop them.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return store.NewBTreeCacheWrap(s, s.NewBatch(), nil)
}

// Commit saves the working tree as the next version to disk,
// and returns the version and the merkle root
func (s CommitStore) Commit() store.CommitID {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		panic(err)
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}
}

// LoadLatestVersion loads the latest persisted version.
// If there was a crash during the last commit, it is guaranteed
// to return a stable state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk
func (s CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

package store

import "github.com/iov-one/handoff"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = handoff.ReadOnlyKVStore
type KVStore = handoff.KVStore
type SetDeleter = handoff.SetDeleter
type Batch = handoff.Batch
type Iterator = handoff.Iterator
type Model = handoff.Model
type CacheableKVStore = handoff.CacheableKVStore
type KVCacheWrap = handoff.KVCacheWrap
type CommitKVStore = handoff.CommitKVStore
type CommitID = handoff.CommitID

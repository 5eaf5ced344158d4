package handofftest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func CommitKVStore(t testing.TB) (db handoff.CommitKVStore, cleanup func()) {
	dbpath, err := ioutil.TempDir("", t.Name())
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}

	kv := iavl.NewCommitStore(dbpath, "db")
	return kv, func() {
		kv.Close()
		os.RemoveAll(dbpath)
	}
}

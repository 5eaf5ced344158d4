package orm

import (
	"testing"

	"github.com/iov-one/handoff/errors"
	"github.com/iov-one/handoff/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketName(t *testing.T) {
	assert.Panics(t, func() { NewBucket("l", NewSimpleObj(nil, new(counter))) })
	assert.Panics(t, func() { NewBucket("Bad", NewSimpleObj(nil, new(counter))) })
	assert.NotPanics(t, func() { NewBucket("good", NewSimpleObj(nil, new(counter))) })
}

func TestBucketPrefixIsolation(t *testing.T) {
	// same key in two buckets must never collide
	one := NewBucket("one", NewSimpleObj(nil, new(counter)))
	two := NewBucket("twos", NewSimpleObj(nil, new(counter)))

	db := store.MemStore()
	key := []byte("shared")

	require.NoError(t, one.Save(db, NewSimpleObj(key, &counter{Count: 5})))

	obj, err := two.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)

	obj, err = one.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, int64(5), obj.Value().(*counter).Count)
}

func TestBucketSaveGetDelete(t *testing.T) {
	bucket := NewBucket("cnts", NewSimpleObj(nil, new(counter)))
	db := store.MemStore()
	key := []byte("key")

	// missing returns nil, nil
	obj, err := bucket.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)
	assert.False(t, bucket.Has(db, key))

	// an invalid object must not be written
	err = bucket.Save(db, NewSimpleObj(key, &counter{Count: -3}))
	require.Error(t, err)
	assert.False(t, bucket.Has(db, key))
	if fe := errors.FieldErrors(err, "Value"); len(fe) == 0 {
		t.Error("expected a field error for Value")
	}

	// save and read back
	require.NoError(t, bucket.Save(db, NewSimpleObj(key, &counter{Count: 22})))
	assert.True(t, bucket.Has(db, key))
	obj, err = bucket.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, key, obj.Key())
	assert.Equal(t, int64(22), obj.Value().(*counter).Count)

	// delete and it is gone
	require.NoError(t, bucket.Delete(db, key))
	assert.False(t, bucket.Has(db, key))
	obj, err = bucket.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestSimpleObjClone(t *testing.T) {
	obj := NewSimpleObj([]byte("fud"), &counter{Count: 3})
	cpy := obj.Clone()

	// mutating the copy leaves the original untouched
	cpy.SetKey([]byte("dub"))
	cpy.Value().(*counter).Count = 9

	assert.Equal(t, []byte("fud"), obj.Key())
	assert.Equal(t, int64(3), obj.Value().(*counter).Count)
}

package orm

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
)

// SlotBucket is a bucket that holds at most one object per address.
// The address is the only key, there is no sequence and no index.
//
// Insert fails if the slot is already occupied and Remove fails if
// it is empty, so a successful Remove proves the caller extracted
// the one and only object that was stored there.
type SlotBucket struct {
	Bucket
}

// NewSlotBucket creates a single-occupancy bucket with this name
func NewSlotBucket(name string, proto Cloneable) SlotBucket {
	return SlotBucket{
		Bucket: NewBucket(name, proto),
	}
}

// Has checks if the slot under this address is occupied
func (b SlotBucket) Has(db handoff.ReadOnlyKVStore, addr handoff.Address) bool {
	return b.Bucket.Has(db, addr)
}

// Get returns the object stored under this address, or a
// not found error on an empty slot
func (b SlotBucket) Get(db handoff.ReadOnlyKVStore, addr handoff.Address) (Object, error) {
	obj, err := b.Bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "slot %s", addr)
	}
	return obj, nil
}

// Insert stores the object under this address. It fails with a
// duplicate error if the slot is already occupied, without touching
// the stored object.
func (b SlotBucket) Insert(db handoff.KVStore, addr handoff.Address, value CloneableData) error {
	if err := addr.Validate(); err != nil {
		return err
	}
	if b.Has(db, addr) {
		return errors.Wrapf(errors.ErrDuplicate, "slot %s", addr)
	}
	obj := NewSimpleObj(addr, value)
	return b.Save(db, obj)
}

// Remove extracts the object stored under this address and clears
// the slot, so a second Remove returns a not found error.
func (b SlotBucket) Remove(db handoff.KVStore, addr handoff.Address) (Object, error) {
	obj, err := b.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if err := b.Delete(db, addr); err != nil {
		return nil, err
	}
	return obj, nil
}

package orm

import (
	"testing"

	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
	"github.com/iov-one/handoff/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSlotBucket(t *testing.T) {
	Convey("Given a slot bucket over an empty store", t, func() {
		db := store.MemStore()
		bucket := NewSlotBucket("slots", NewSimpleObj(nil, new(counter)))

		owner := handoff.NewCondition("sigs", "ed25519", []byte("owner-key")).Address()
		other := handoff.NewCondition("sigs", "ed25519", []byte("other-key")).Address()

		Convey("An empty slot reports as such", func() {
			So(bucket.Has(db, owner), ShouldBeFalse)

			_, err := bucket.Get(db, owner)
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)

			_, err = bucket.Remove(db, owner)
			So(errors.ErrNotFound.Is(err), ShouldBeTrue)
		})

		Convey("Insert rejects an invalid address", func() {
			err := bucket.Insert(db, []byte("short"), &counter{Count: 1})
			So(err, ShouldNotBeNil)
		})

		Convey("When a value is inserted", func() {
			So(bucket.Insert(db, owner, &counter{Count: 77}), ShouldBeNil)

			Convey("It can be read back", func() {
				So(bucket.Has(db, owner), ShouldBeTrue)
				obj, err := bucket.Get(db, owner)
				So(err, ShouldBeNil)
				So(obj.Value().(*counter).Count, ShouldEqual, 77)
			})

			Convey("A second insert for the same address fails", func() {
				err := bucket.Insert(db, owner, &counter{Count: 1})
				So(errors.ErrDuplicate.Is(err), ShouldBeTrue)

				// the stored value is untouched
				obj, err := bucket.Get(db, owner)
				So(err, ShouldBeNil)
				So(obj.Value().(*counter).Count, ShouldEqual, 77)
			})

			Convey("Another address is an independent slot", func() {
				So(bucket.Has(db, other), ShouldBeFalse)
				So(bucket.Insert(db, other, &counter{Count: 1}), ShouldBeNil)
			})

			Convey("Remove extracts exactly once", func() {
				obj, err := bucket.Remove(db, owner)
				So(err, ShouldBeNil)
				So(obj.Value().(*counter).Count, ShouldEqual, 77)
				So(bucket.Has(db, owner), ShouldBeFalse)

				_, err = bucket.Remove(db, owner)
				So(errors.ErrNotFound.Is(err), ShouldBeTrue)
			})

			Convey("The slot can be reused after removal", func() {
				_, err := bucket.Remove(db, owner)
				So(err, ShouldBeNil)
				So(bucket.Insert(db, owner, &counter{Count: 5}), ShouldBeNil)
			})
		})
	})
}

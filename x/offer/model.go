package offer

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
	"github.com/iov-one/handoff/orm"
)

var _ orm.CloneableData = (*Offer)(nil)

// Validate ensures the Offer is valid
func (o *Offer) Validate() error {
	if err := o.Recipient.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if len(o.Payload) == 0 {
		return errors.Wrap(errors.ErrEmpty, "payload")
	}
	if len(o.Memo) > maxMemoSize {
		return errors.Wrapf(errors.ErrInput, "memo %s", o.Memo)
	}
	return nil
}

// Copy makes a new offer
func (o *Offer) Copy() orm.CloneableData {
	return &Offer{
		Recipient: o.Recipient.Clone(),
		Payload:   append([]byte(nil), o.Payload...),
		Memo:      o.Memo,
	}
}

// Unpack deserializes the parked payload into dest. The payload was
// serialized from the exact destination type when the offer was
// created, so a mismatch here is a programming error, not bad input.
func (o *Offer) Unpack(dest handoff.Persistent) error {
	if err := dest.Unmarshal(o.Payload); err != nil {
		return errors.Wrapf(errors.ErrHuman, "payload is no %T", dest)
	}
	return nil
}

// AsOffer extracts an *Offer value or nil from the object
// Must be called on a Bucket result that is an *Offer,
// will panic on bad type.
func AsOffer(obj orm.Object) *Offer {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Offer)
}

// Bucket is a type-safe wrapper around the single-occupancy slots.
//
// Each payload kind gets its own bucket, created with a distinct
// name, so offers of different kinds under the same owner address
// never collide.
type Bucket struct {
	orm.SlotBucket
}

// NewBucket creates the slot bucket for one payload kind
func NewBucket(kind string) Bucket {
	return Bucket{
		SlotBucket: orm.NewSlotBucket(kind, orm.NewSimpleObj(nil, &Offer{})),
	}
}

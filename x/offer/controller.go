package offer

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
)

// Controller drives all state transitions on the offer slots.
// The handlers translate transactions into controller calls, but the
// controller can also be used directly by other extensions that
// park values of their own kind.
type Controller struct {
	bucket Bucket
}

func NewController(bucket Bucket) Controller {
	return Controller{bucket: bucket}
}

// Create parks the offer under the owner address. It fails with a
// duplicate error when the owner already has an offer in this bucket,
// leaving the existing offer untouched.
func (c Controller) Create(db handoff.KVStore, owner handoff.Address, offer *Offer) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return c.bucket.Insert(db, owner, offer)
}

// Redeem extracts the offer parked under the owner address and clears
// the slot. hasAddress reports which addresses the caller controls:
// the offer is released only to its recipient or to the owner.
//
// Either every check passes and the slot is cleared, or the state is
// left untouched.
func (c Controller) Redeem(db handoff.KVStore, owner handoff.Address, hasAddress func(handoff.Address) bool) (*Offer, error) {
	obj, err := c.bucket.Get(db, owner)
	if err != nil {
		return nil, err
	}
	offer := AsOffer(obj)

	if !hasAddress(offer.Recipient) && !hasAddress(owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized,
			"neither recipient %s nor owner %s", offer.Recipient, owner)
	}

	if _, err := c.bucket.Remove(db, owner); err != nil {
		return nil, err
	}
	return offer, nil
}

// Park is a convenience over Create that serializes the value itself.
// This is the entry point for other extensions that park typed values
// rather than raw payload bytes.
func (c Controller) Park(db handoff.KVStore, owner, recipient handoff.Address, value handoff.Marshaller, memo string) error {
	payload, err := value.Marshal()
	if err != nil {
		return errors.Wrap(err, "payload")
	}
	offer := &Offer{
		Recipient: recipient,
		Payload:   payload,
		Memo:      memo,
	}
	return c.Create(db, owner, offer)
}

// RedeemInto redeems the offer parked under the owner address and
// deserializes its payload into dest. All checks, including that the
// payload is a valid encoding of dest, run before the slot is
// cleared, so a failing call leaves the state untouched.
func (c Controller) RedeemInto(db handoff.KVStore, owner handoff.Address, hasAddress func(handoff.Address) bool, dest handoff.Persistent) error {
	obj, err := c.bucket.Get(db, owner)
	if err != nil {
		return err
	}
	offer := AsOffer(obj)

	if !hasAddress(offer.Recipient) && !hasAddress(owner) {
		return errors.Wrapf(errors.ErrUnauthorized,
			"neither recipient %s nor owner %s", offer.Recipient, owner)
	}

	if err := offer.Unpack(dest); err != nil {
		return err
	}

	_, err = c.bucket.Remove(db, owner)
	return err
}

// ExistsAt checks if the owner has an offer parked in this bucket
func (c Controller) ExistsAt(db handoff.ReadOnlyKVStore, owner handoff.Address) bool {
	return c.bucket.Has(db, owner)
}

// AddressOf returns the recipient of the offer parked under the owner
// address, or a not found error on an empty slot.
func (c Controller) AddressOf(db handoff.ReadOnlyKVStore, owner handoff.Address) (handoff.Address, error) {
	obj, err := c.bucket.Get(db, owner)
	if err != nil {
		return nil, err
	}
	return AsOffer(obj).Recipient, nil
}

package offer

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
)

var _ handoff.Initializer = (*Initializer)(nil)

// Initializer fulfils the Initializer interface to load data from the genesis file
type Initializer struct {
	// Kind names the bucket the offers are loaded into,
	// defaults to "offer" when empty.
	Kind string
}

// FromGenesis will parse initial offers from genesis and save them in
// the database. Payloads are raw base64 bytes, addresses can be given
// in hex or the "cond:" format.
func (i *Initializer) FromGenesis(opts handoff.Options, db handoff.KVStore) error {
	var offers []struct {
		Owner     handoff.Address `json:"owner"`
		Recipient handoff.Address `json:"recipient"`
		Payload   []byte          `json:"payload"`
		Memo      string          `json:"memo"`
	}

	if err := opts.ReadOptions("offer", &offers); err != nil {
		return err
	}

	kind := i.Kind
	if kind == "" {
		kind = "offer"
	}

	ctrl := NewController(NewBucket(kind))
	for j, o := range offers {
		offer := &Offer{
			Recipient: o.Recipient,
			Payload:   o.Payload,
			Memo:      o.Memo,
		}
		if err := offer.Validate(); err != nil {
			return errors.Wrapf(err, "invalid offer at position: %d", j)
		}
		if err := ctrl.Create(db, o.Owner, offer); err != nil {
			return errors.Wrapf(err, "cannot park offer at position: %d", j)
		}
	}
	return nil
}

package offer

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
)

const (
	pathCreateOffer = "offer/create"
	pathRedeemOffer = "offer/redeem"

	maxMemoSize int = 128
)

var _ handoff.Msg = (*CreateOfferMsg)(nil)
var _ handoff.Msg = (*RedeemOfferMsg)(nil)

// ROUTING, Path method fulfills handoff.Msg interface to allow routing

func (CreateOfferMsg) Path() string {
	return pathCreateOffer
}

func (RedeemOfferMsg) Path() string {
	return pathRedeemOffer
}

// VALIDATION, Validate method makes sure basic rules are enforced
// upon input data and fulfills handoff.Msg interface

func (m *CreateOfferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if len(m.Payload) == 0 {
		errs = errors.AppendField(errs, "Payload", errors.ErrEmpty)
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo",
			errors.Wrapf(errors.ErrInput, "memo %s", m.Memo))
	}
	return errs
}

func (m *RedeemOfferMsg) Validate() error {
	return errors.AppendField(nil, "Owner", m.Owner.Validate())
}

package offer

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
	"github.com/iov-one/handoff/x"
)

const (
	// pay the storage cost up-front
	createOfferCost int64 = 100
	redeemOfferCost int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r handoff.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(pathCreateOffer, CreateOfferHandler{auth, ctrl})
	r.Handle(pathRedeemOffer, RedeemOfferHandler{auth, ctrl})
}

// CreateOfferHandler parks a payload under the main signer address
type CreateOfferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ handoff.Handler = CreateOfferHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateOfferHandler) Check(ctx handoff.Context, db handoff.KVStore, tx handoff.Tx) (*handoff.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}

	return &handoff.CheckResult{GasAllocated: createOfferCost}, nil
}

// Deliver parks the payload if the slot of the signer is free.
func (h CreateOfferHandler) Deliver(ctx handoff.Context, db handoff.KVStore, tx handoff.Tx) (*handoff.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	offer := &Offer{
		Recipient: msg.Recipient,
		Payload:   msg.Payload,
		Memo:      msg.Memo,
	}
	if err := h.ctrl.Create(db, owner, offer); err != nil {
		return nil, err
	}

	handoff.GetLogger(ctx).Info("offer created",
		"owner", owner, "recipient", offer.Recipient)
	return &handoff.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateOfferHandler) validate(ctx handoff.Context, tx handoff.Tx) (*CreateOfferMsg, handoff.Address, error) {
	var msg CreateOfferMsg
	if err := handoff.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	// the owner of the new offer is the main signer
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}

	return &msg, signer.Address(), nil
}

// RedeemOfferHandler extracts a parked payload for the recipient
// or returns it to the owner
type RedeemOfferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ handoff.Handler = RedeemOfferHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h RedeemOfferHandler) Check(ctx handoff.Context, db handoff.KVStore, tx handoff.Tx) (*handoff.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}

	return &handoff.CheckResult{GasAllocated: redeemOfferCost}, nil
}

// Deliver clears the slot and returns the extracted payload as the
// result data. Authorization and existence are checked before any
// write, so a failed redeem leaves the slot untouched.
func (h RedeemOfferHandler) Deliver(ctx handoff.Context, db handoff.KVStore, tx handoff.Tx) (*handoff.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}

	hasAddress := func(addr handoff.Address) bool {
		return h.auth.HasAddress(ctx, addr)
	}
	offer, err := h.ctrl.Redeem(db, msg.Owner, hasAddress)
	if err != nil {
		return nil, err
	}

	handoff.GetLogger(ctx).Info("offer redeemed",
		"owner", msg.Owner, "recipient", offer.Recipient)
	return &handoff.DeliverResult{Data: offer.Payload}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RedeemOfferHandler) validate(ctx handoff.Context, tx handoff.Tx) (*RedeemOfferMsg, error) {
	var msg RedeemOfferMsg
	if err := handoff.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

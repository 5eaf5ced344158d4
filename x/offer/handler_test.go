package offer_test

import (
	"context"
	"testing"

	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
	"github.com/iov-one/handoff/handofftest"
	"github.com/iov-one/handoff/store"
	"github.com/iov-one/handoff/x"
	"github.com/iov-one/handoff/x/offer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// router is the minimal Registry used to dispatch in tests
type router map[string]handoff.Handler

func (r router) Handle(path string, h handoff.Handler) { r[path] = h }

func (r router) Deliver(ctx handoff.Context, db handoff.KVStore, tx handoff.Tx) (*handoff.DeliverResult, error) {
	return r[handoff.GetPath(tx)].Deliver(ctx, db, tx)
}

func (r router) Check(ctx handoff.Context, db handoff.KVStore, tx handoff.Tx) (*handoff.CheckResult, error) {
	return r[handoff.GetPath(tx)].Check(ctx, db, tx)
}

func TestCreateOfferHandler(t *testing.T) {
	alice := handofftest.NewCondition()
	bob := handofftest.NewCondition()

	authenticator := &handofftest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	ctrl := offer.NewController(offer.NewBucket("offer"))

	r := make(router)
	offer.RegisterRoutes(r, auth, ctrl)

	cases := map[string]struct {
		signers        []handoff.Condition
		msg            *offer.CreateOfferMsg
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
	}{
		"happy path": {
			signers: []handoff.Condition{alice},
			msg: &offer.CreateOfferMsg{
				Recipient: bob.Address(),
				Payload:   []byte("a parked value"),
				Memo:      "for bob",
			},
		},
		"missing recipient": {
			signers: []handoff.Condition{alice},
			msg: &offer.CreateOfferMsg{
				Payload: []byte("a parked value"),
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"missing payload": {
			signers: []handoff.Condition{alice},
			msg: &offer.CreateOfferMsg{
				Recipient: bob.Address(),
			},
			wantCheckErr:   errors.ErrEmpty,
			wantDeliverErr: errors.ErrEmpty,
		},
		"no signer": {
			msg: &offer.CreateOfferMsg{
				Recipient: bob.Address(),
				Payload:   []byte("a parked value"),
			},
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctx := handoff.WithHeight(context.Background(), 500)
			ctx = authenticator.SetConditions(ctx, tc.signers...)

			tx := &handofftest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := r.Check(ctx, cache, tx)
			if !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			_, err = r.Deliver(ctx, db, tx)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected: %+v but got %+v", tc.wantDeliverErr, err)
			}

			if tc.wantDeliverErr == nil {
				assert.True(t, ctrl.ExistsAt(db, alice.Address()))
				addr, err := ctrl.AddressOf(db, alice.Address())
				require.NoError(t, err)
				assert.True(t, addr.Equals(bob.Address()))
			}
		})
	}
}

func TestOfferLifecycleOnCommitStore(t *testing.T) {
	alice := handofftest.NewCondition()
	bob := handofftest.NewCondition()

	authenticator := &handofftest.CtxAuth{Key: "auth"}
	ctrl := offer.NewController(offer.NewBucket("offer"))

	r := make(router)
	offer.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl)

	kv, cleanup := handofftest.CommitKVStore(t)
	defer cleanup()
	require.NoError(t, kv.LoadLatestVersion())

	// block one: alice parks a value for bob
	ctx := handoff.WithHeight(context.Background(), 501)
	ctx = authenticator.SetConditions(ctx, alice)
	db := kv.CacheWrap()
	_, err := r.Deliver(ctx, db, &handofftest.Tx{Msg: &offer.CreateOfferMsg{
		Recipient: bob.Address(),
		Payload:   []byte("a parked value"),
	}})
	require.NoError(t, err)
	db.Write()
	kv.Commit()

	// block two: bob claims it from the committed state
	ctx = handoff.WithHeight(context.Background(), 502)
	ctx = authenticator.SetConditions(ctx, bob)
	db = kv.CacheWrap()
	res, err := r.Deliver(ctx, db, &handofftest.Tx{Msg: &offer.RedeemOfferMsg{
		Owner: alice.Address(),
	}})
	require.NoError(t, err)
	assert.Equal(t, []byte("a parked value"), res.Data)
	db.Write()
	kv.Commit()

	assert.False(t, ctrl.ExistsAt(kv.CacheWrap(), alice.Address()))
}

func TestRedeemOfferHandler(t *testing.T) {
	alice := handofftest.NewCondition()
	bob := handofftest.NewCondition()
	carl := handofftest.NewCondition()

	authenticator := &handofftest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	ctrl := offer.NewController(offer.NewBucket("offer"))

	r := make(router)
	offer.RegisterRoutes(r, auth, ctrl)

	payload := []byte("a parked value")

	cases := map[string]struct {
		signers        []handoff.Condition
		owner          handoff.Address
		wantDeliverErr *errors.Error
		wantData       []byte
		wantGone       bool
	}{
		"recipient redeems": {
			signers:  []handoff.Condition{bob},
			owner:    alice.Address(),
			wantData: payload,
			wantGone: true,
		},
		"owner takes it back": {
			signers:  []handoff.Condition{alice},
			owner:    alice.Address(),
			wantData: payload,
			wantGone: true,
		},
		"stranger is rejected": {
			signers:        []handoff.Condition{carl},
			owner:          alice.Address(),
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"empty slot": {
			signers:        []handoff.Condition{bob},
			owner:          carl.Address(),
			wantDeliverErr: errors.ErrNotFound,
		},
		"invalid owner address": {
			signers:        []handoff.Condition{bob},
			owner:          []byte("too-short"),
			wantDeliverErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()

			// park an offer from alice to bob
			parked := &offer.Offer{Recipient: bob.Address(), Payload: payload}
			require.NoError(t, ctrl.Create(db, alice.Address(), parked))

			ctx := handoff.WithHeight(context.Background(), 500)
			ctx = authenticator.SetConditions(ctx, tc.signers...)

			tx := &handofftest.Tx{Msg: &offer.RedeemOfferMsg{Owner: tc.owner}}

			res, err := r.Deliver(ctx, db, tx)
			if !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected: %+v but got %+v", tc.wantDeliverErr, err)
			}

			if tc.wantDeliverErr == nil {
				assert.Equal(t, tc.wantData, res.Data)
			}
			assert.Equal(t, !tc.wantGone, ctrl.ExistsAt(db, alice.Address()))
		})
	}
}

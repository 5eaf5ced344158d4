package offer_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/handofftest"
	"github.com/iov-one/handoff/handofftest/assert"
	"github.com/iov-one/handoff/store"
	"github.com/iov-one/handoff/x/offer"
)

func TestGenesisInitializer(t *testing.T) {
	alice := handofftest.NewCondition()
	bob := handofftest.NewCondition()

	genesis := fmt.Sprintf(`[
		{
			"owner": "%s",
			"recipient": "%s",
			"payload": "cGFya2VkIGdvb2Rz",
			"memo": "from genesis"
		}
	]`, alice.Address(), bob.Address())

	opts := handoff.Options{"offer": json.RawMessage(genesis)}

	db := store.MemStore()
	var ini offer.Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	ctrl := offer.NewController(offer.NewBucket("offer"))
	assert.Equal(t, true, ctrl.ExistsAt(db, alice.Address()))

	redeemed, err := ctrl.Redeem(db, alice.Address(), bob.Address().Equals)
	assert.Nil(t, err)
	assert.Equal(t, []byte("parked goods"), redeemed.Payload)
	assert.Equal(t, "from genesis", redeemed.Memo)
}

func TestGenesisInitializerRejectsBadOffer(t *testing.T) {
	genesis := `[{"owner": "0011", "recipient": "2233", "payload": "eA=="}]`
	opts := handoff.Options{"offer": json.RawMessage(genesis)}

	db := store.MemStore()
	var ini offer.Initializer
	if err := ini.FromGenesis(opts, db); err == nil {
		t.Fatal("expected invalid genesis offer to be rejected")
	}
}

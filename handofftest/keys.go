package handofftest

import (
	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/crypto"
)

func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

func NewCondition() handoff.Condition {
	return NewKey().PublicKey().Condition()
}

package handoff_test

import (
	"testing"

	"github.com/iov-one/handoff"
	"github.com/iov-one/handoff/errors"
	"github.com/iov-one/handoff/handofftest"
	"github.com/stretchr/testify/assert"
)

func TestGetPath(t *testing.T) {
	tx := &handofftest.Tx{Msg: &handofftest.Msg{RoutePath: "test/good"}}
	assert.Equal(t, "test/good", handoff.GetPath(tx))

	broken := &handofftest.Tx{Err: errors.ErrState}
	assert.Equal(t, "(missing)", handoff.GetPath(broken))
}

func TestLoadMsg(t *testing.T) {
	msg := &handofftest.Msg{RoutePath: "test/good", Serialized: []byte("payload")}
	tx := &handofftest.Tx{Msg: msg}

	var dest handofftest.Msg
	assert.NoError(t, handoff.LoadMsg(tx, &dest))
	assert.Equal(t, msg.RoutePath, dest.RoutePath)
	assert.Equal(t, msg.Serialized, dest.Serialized)
}

func TestLoadMsgErrors(t *testing.T) {
	var dest handofftest.Msg

	// a transaction that cannot produce its message
	broken := &handofftest.Tx{Err: errors.ErrState}
	assert.Error(t, handoff.LoadMsg(broken, &dest))

	// a message that does not validate
	invalid := &handofftest.Tx{Msg: &handofftest.Msg{Err: errors.ErrInput}}
	assert.True(t, errors.ErrInput.Is(handoff.LoadMsg(invalid, &dest)))

	// destination of another type than the carried message
	tx := &handofftest.Tx{Msg: &handofftest.Msg{RoutePath: "test/good"}}
	var other otherMsg
	assert.True(t, errors.ErrType.Is(handoff.LoadMsg(tx, &other)))
}

type otherMsg struct{ handofftest.Msg }

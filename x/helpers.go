package x

import (
	"github.com/iov-one/handoff"
)

// Validater is any struct that can be validated.
// Not the same as a Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// MustValidate panics if the object is not valid
func MustValidate(obj Validater) {
	if err := obj.Validate(); err != nil {
		panic(err)
	}
}

// MustMarshal will succeed or panic
func MustMarshal(obj handoff.Marshaller) []byte {
	bz, err := obj.Marshal()
	if err != nil {
		panic(err)
	}
	return bz
}

// MustUnmarshal will succeed or panic
func MustUnmarshal(obj handoff.Persistent, bz []byte) {
	if err := obj.Unmarshal(bz); err != nil {
		panic(err)
	}
}

// MarshalValidater is something that can be validated and
// serialized
type MarshalValidater interface {
	handoff.Marshaller
	Validater
}

// MustMarshalValid marshals the object, but panics
// if the object is not valid or has trouble marshalling
func MustMarshalValid(obj MarshalValidater) []byte {
	MustValidate(obj)
	return MustMarshal(obj)
}

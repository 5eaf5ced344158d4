package orm

import (
	"encoding/binary"

	"github.com/iov-one/handoff/errors"
)

// counter is a minimal CloneableData used to exercise the buckets
type counter struct {
	Count int64
}

var _ CloneableData = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(c.Count))
	return bz, nil
}

func (c *counter) Unmarshal(bz []byte) error {
	if len(bz) != 8 {
		return errors.Wrapf(errors.ErrInput, "expected 8 bytes, got %d", len(bz))
	}
	c.Count = int64(binary.BigEndian.Uint64(bz))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrState, "count must never be negative")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{Count: c.Count}
}

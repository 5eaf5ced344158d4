/*
Package handoff defines the common interfaces of a capability-gated
resource handoff: one account deposits an exclusively owned, storable
value into a per-address escrow slot, and exactly one of two parties
(the designated recipient, or the depositor reclaiming) may later
extract it.

The root package holds only types and interfaces shared by the
subpackages: addresses and conditions for authorization, the KVStore
family backing all state, the Persistent constraint for storable
values, and the message/handler conventions used to drive state
transitions. The protocol itself lives in x/offer, on top of the
slot storage in orm.
*/
package handoff

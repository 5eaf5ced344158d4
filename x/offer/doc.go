/*

Package offer implements a two-party resource handoff.

An offer parks a value under the address of its owner, earmarked for
exactly one recipient. There is at most one offer per owner address
and bucket, so the pair (owner, bucket) fully identifies a slot.
Creating a second offer under an occupied slot fails, and redeeming
extracts the value exactly once: the slot is cleared in the same
transaction, a second redeem finds nothing.

The recipient named in the offer may redeem it, and so may the owner,
which is how an offer is cancelled before pickup.

*/
package offer

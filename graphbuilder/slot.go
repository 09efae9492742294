package graphbuilder

import "github.com/lovelyyoshino/bron-kerbosch/core"

// noSlot is the sentinel "no slot" / "no match" value. Named and checked
// explicitly rather than left as an unadorned -1 so that no legitimate
// index — always >= 0 by construction — can ever collide with it.
const noSlot = -1

// slot is one persisted cache entry, keyed externally by core.IdPair and
// addressed internally by its position in Builder.slots.
type slot struct {
	// candidates holds other live slot indices this slot was, at last
	// write, within the loose (2*tau) threshold of. Symmetric by
	// construction: s' is in this list iff this slot is in s''s list.
	candidates []int32

	// centroids is the PointPair observed when this slot was last written.
	centroids core.PointPair

	// live is false for slots sitting in the free list.
	live bool

	// id is the IdPair currently owning this slot while live; meaningless
	// once live is false.
	id core.IdPair
}

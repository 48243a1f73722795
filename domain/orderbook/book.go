package orderbook

import "sync/atomic"

// OrderBook holds the two resting sides of a single instrument.
// It is single-writer and deterministic: callers serialize access.
//
// The book owns every resting Order. Anything handed out by Best or
// the walk helpers is a borrowed reference and must not be retained
// across a mutation.
type OrderBook struct {
	Bids *RBTree
	Asks *RBTree

	LastSeq atomic.Uint64
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		Bids: NewRBTree(),
		Asks: NewRBTree(),
	}
}

func (b *OrderBook) side(s Side) *RBTree {
	if s == Bid {
		return b.Bids
	}
	return b.Asks
}

// Insert rests a limit order on its own side, appended after any
// orders already queued at the same price.
func (b *OrderBook) Insert(o *Order) {
	b.side(o.Side).UpsertLevel(o.Price).Enqueue(o)
}

// Best returns the highest-priority resting order on the given side:
// the oldest order at the max price for bids, at the min price for asks.
// Returns nil when the side is empty.
func (b *OrderBook) Best(s Side) *Order {
	var lvl *PriceLevel
	if s == Bid {
		lvl = b.Bids.MaxLevel()
	} else {
		lvl = b.Asks.MinLevel()
	}
	if lvl == nil {
		return nil
	}
	return lvl.Head()
}

// Remove unlinks a resting order from its level and drops the level
// once it drains. The order's links are cleared; the book no longer
// references it after Remove returns.
func (b *OrderBook) Remove(o *Order) {
	tree := b.side(o.Side)
	lvl := tree.FindLevel(o.Price)
	if lvl == nil {
		return
	}
	lvl.Unlink(o)
	if lvl.Empty() {
		tree.DeleteLevel(lvl.Price)
	}
}

func (b *OrderBook) IsEmpty(s Side) bool {
	return b.side(s).Size() == 0
}

// ---- traversal helpers ----

// BidsWalk visits bid levels best to worst.
func (b *OrderBook) BidsWalk(fn func(*PriceLevel)) {
	b.Bids.ForEachDescending(func(lvl *PriceLevel) bool {
		fn(lvl)
		return true
	})
}

// AsksWalk visits ask levels best to worst.
func (b *OrderBook) AsksWalk(fn func(*PriceLevel)) {
	b.Asks.ForEachAscending(func(lvl *PriceLevel) bool {
		fn(lvl)
		return true
	})
}

package orderbook

type Side int
type OrderType int
type Status int

const (
	Bid Side = iota
	Ask
)

const (
	Limit OrderType = iota
	Market
)

const (
	Active Status = iota
	Inactive
)

// Opposite returns the side an incoming order matches against.
func (s Side) Opposite() Side {
	if s == Bid {
		return Ask
	}
	return Bid
}

func (s Side) String() string {
	if s == Bid {
		return "bid"
	}
	return "ask"
}

func (t OrderType) String() string {
	if t == Market {
		return "market"
	}
	return "limit"
}

// Order is a pure domain entity. ID is caller-assigned and must not be
// reused while the order rests. Qty is the original size and never changes;
// Filled is mutated only by the engine.
type Order struct {
	ID     uint64
	Price  int64
	Qty    int64
	Filled int64
	SeqID  uint64

	Side   Side
	Type   OrderType
	Status Status

	next *Order
	prev *Order
}

// Remaining is the leaves quantity: Qty - Filled.
func (o *Order) Remaining() int64 {
	return o.Qty - o.Filled
}

// Read-only traversal helper.
func (o *Order) Next() *Order {
	return o.next
}

// Clone returns a detached value copy, safe to retain after the book
// mutates. The intrusive links are stripped so the copy cannot reach
// live queue nodes.
func (o *Order) Clone() Order {
	c := *o
	c.next = nil
	c.prev = nil
	return c
}

package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

// OrderEntry carries everything needed to rest the order again,
// including the fill progress of partially matched orders.
type OrderEntry struct {
	ID     uint64
	Side   int
	Type   int
	Price  int64
	Qty    int64
	Filled int64
	SeqID  uint64
}

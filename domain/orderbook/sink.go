package orderbook

// Reject reasons reported through the sink. These are the only
// recoverable error conditions the engine knows about.
const (
	ReasonIDExists    = "Id already exists"
	ReasonIDNotFound  = "Id not found"
	ReasonNoLiquidity = "Not enough liquidity"
)

// Fill reports one side of a matched trade. Two fills are emitted per
// match step: the resting order's first, then the aggressor's.
type Fill struct {
	OrderID uint64
	Qty     int64
	Price   int64
}

type Reject struct {
	OrderID uint64
	Reason  string
}

// Cancel is emitted for explicit cancellation and for the unfilled
// remainder of a market order.
type Cancel struct {
	OrderID uint64
}

// OrderAck is emitted when a limit order rests with remaining quantity
// after initial matching.
type OrderAck struct {
	OrderID uint64
}

// Sink receives every outcome of a Submit or Cancel call, in causal
// order within the call. Delivery order to the final recipient must be
// preserved: a fully filled order gets no terminal event, its fills
// alone describe the outcome.
type Sink interface {
	OnFill(Fill)
	OnReject(Reject)
	OnCancel(Cancel)
	OnAck(OrderAck)
}

// NopSink discards everything. Used during WAL replay and snapshot
// restore, where notifications were already delivered in a past life.
type NopSink struct{}

func (NopSink) OnFill(Fill)     {}
func (NopSink) OnReject(Reject) {}
func (NopSink) OnCancel(Cancel) {}
func (NopSink) OnAck(OrderAck)  {}

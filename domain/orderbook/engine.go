package orderbook

import (
	"fmt"

	"osprey/infra/memory"
)

// Engine runs price/time priority matching over one OrderBook.
//
// It is stateless apart from the book and the id index: every call is a
// deterministic function of current book state plus the input. Calls run
// to completion; all notifications for a call reach the sink before the
// call returns. The engine itself does no locking — the service layer
// serializes access.
type Engine struct {
	book *OrderBook
	ids  map[uint64]*Order
	sink Sink
	ring *memory.RetireRing
}

// NewEngine wires the engine. ring may be nil; terminal orders are then
// simply dropped instead of recycled.
func NewEngine(book *OrderBook, sink Sink, ring *memory.RetireRing) *Engine {
	return &Engine{
		book: book,
		ids:  make(map[uint64]*Order),
		sink: sink,
		ring: ring,
	}
}

func (e *Engine) Book() *OrderBook { return e.book }

// SetSink swaps the notification sink and returns the previous one.
// Used once at startup: replay runs against a NopSink, then the live
// sink is installed before traffic is accepted.
func (e *Engine) SetSink(s Sink) Sink {
	old := e.sink
	e.sink = s
	return old
}

// Resting reports whether id currently rests in the book.
func (e *Engine) Resting(id uint64) bool {
	_, ok := e.ids[id]
	return ok
}

// Restore rests an order directly, bypassing matching and emitting
// nothing. Snapshot load only: the order already rested once and its
// notifications were delivered in a past life.
func (e *Engine) Restore(o *Order) {
	o.Status = Active
	e.book.Insert(o)
	e.ids[o.ID] = o
}

// Submit processes a new order. Outcomes are observable only through
// the sink. The engine takes ownership of o in every path.
func (e *Engine) Submit(o *Order) {
	if _, ok := e.ids[o.ID]; ok {
		e.sink.OnReject(Reject{OrderID: o.ID, Reason: ReasonIDExists})
		e.retire(o)
		return
	}

	o.Filled = 0
	o.Status = Active
	e.book.LastSeq.Store(o.SeqID)

	// A market order against an empty opposite side is never processed.
	// Any liquidity at all, however thin, and it trades then cancels
	// the remainder instead.
	if o.Type == Market && e.book.IsEmpty(o.Side.Opposite()) {
		e.sink.OnReject(Reject{OrderID: o.ID, Reason: ReasonNoLiquidity})
		e.retire(o)
		return
	}

	for e.matchOne(o) {
	}

	if o.Remaining() == 0 {
		// Fully filled in the loop: the fills already describe the
		// outcome, no terminal event.
		e.retire(o)
		return
	}

	switch o.Type {
	case Limit:
		e.book.Insert(o)
		e.ids[o.ID] = o
		e.sink.OnAck(OrderAck{OrderID: o.ID})
	case Market:
		e.sink.OnCancel(Cancel{OrderID: o.ID})
		e.retire(o)
	}
}

// Cancel removes a resting order. Only limit orders with remaining
// quantity can be cancelled; market orders never rest.
func (e *Engine) Cancel(id uint64) {
	o, ok := e.ids[id]
	if !ok {
		e.sink.OnReject(Reject{OrderID: id, Reason: ReasonIDNotFound})
		return
	}

	e.book.Remove(o)
	delete(e.ids, id)

	e.sink.OnCancel(Cancel{OrderID: id})
	e.retire(o)
}

// matchOne attempts a single match step: the incoming order against the
// best resting order on the opposite side. Reports whether a trade
// happened; the loop in Submit terminates on the first false.
func (e *Engine) matchOne(o *Order) bool {
	if o.Remaining() == 0 {
		return false
	}

	resting := e.book.Best(o.Side.Opposite())
	if resting == nil {
		return false
	}

	if o.Type == Limit && !crosses(o.Side, o.Price, resting.Price) {
		return false
	}

	// Trade at the resting order's price: the order that was first in
	// the book sets the execution price, the aggressor gets any
	// improvement.
	qty := min64(o.Remaining(), resting.Remaining())
	lvl := e.book.side(resting.Side).FindLevel(resting.Price)
	lvl.ReduceQty(qty)

	e.fill(resting, qty, resting.Price)
	e.fill(o, qty, resting.Price)

	if resting.Remaining() == 0 {
		e.book.Remove(resting)
		delete(e.ids, resting.ID)
		e.retire(resting)
	}
	return true
}

// crosses reports whether an aggressing limit price is at least as good
// as the resting price for the aggressor's side.
func crosses(aggressor Side, limit, resting int64) bool {
	if aggressor == Bid {
		return limit >= resting
	}
	return limit <= resting
}

func (e *Engine) fill(o *Order, qty, price int64) {
	if o.Remaining() < qty {
		panic(fmt.Sprintf("orderbook: fill %d exceeds remaining %d on order %d", qty, o.Remaining(), o.ID))
	}
	o.Filled += qty
	e.sink.OnFill(Fill{OrderID: o.ID, Qty: qty, Price: price})
}

func (e *Engine) retire(o *Order) {
	o.Status = Inactive
	if e.ring != nil {
		_ = e.ring.Enqueue(o)
	}
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

package orderbook

import (
	"testing"

	"osprey/infra/memory"
)

type sinkEvent struct {
	kind   string
	id     uint64
	qty    int64
	price  int64
	reason string
}

// recSink records every notification in arrival order.
type recSink struct {
	events []sinkEvent
}

func (s *recSink) OnFill(f Fill) {
	s.events = append(s.events, sinkEvent{kind: "fill", id: f.OrderID, qty: f.Qty, price: f.Price})
}

func (s *recSink) OnReject(r Reject) {
	s.events = append(s.events, sinkEvent{kind: "reject", id: r.OrderID, reason: r.Reason})
}

func (s *recSink) OnCancel(c Cancel) {
	s.events = append(s.events, sinkEvent{kind: "cancel", id: c.OrderID})
}

func (s *recSink) OnAck(a OrderAck) {
	s.events = append(s.events, sinkEvent{kind: "ack", id: a.OrderID})
}

func newTestEngine() (*Engine, *recSink) {
	sink := &recSink{}
	return NewEngine(NewOrderBook(), sink, nil), sink
}

func submit(e *Engine, id uint64, side Side, otype OrderType, price, qty int64) *Order {
	o := &Order{ID: id, Side: side, Type: otype, Price: price, Qty: qty, SeqID: id}
	e.Submit(o)
	return o
}

func wantEvents(t *testing.T, got, want []sinkEvent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLimitOrderRestsWithAck(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Bid, Limit, 100, 5)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "ack", id: 1},
	})
	if !e.Resting(1) {
		t.Error("order 1 should rest in the book")
	}
	if e.Book().Bids.Size() != 1 {
		t.Error("expected one bid level")
	}
}

func TestExactCross(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Bid, Limit, 50, 100)
	submit(e, 2, Ask, Limit, 50, 100)

	// Resting side fills first; a fully filled aggressor gets no
	// terminal event of its own.
	wantEvents(t, sink.events, []sinkEvent{
		{kind: "ack", id: 1},
		{kind: "fill", id: 1, qty: 100, price: 50},
		{kind: "fill", id: 2, qty: 100, price: 50},
	})
	if e.Resting(1) || e.Resting(2) {
		t.Error("both orders should be gone")
	}
	if e.Book().Bids.Size() != 0 || e.Book().Asks.Size() != 0 {
		t.Error("book should be empty after exact cross")
	}
}

func TestTradeAtRestingPrice(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 50, 10)
	submit(e, 2, Bid, Limit, 55, 10)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "ack", id: 1},
		{kind: "fill", id: 1, qty: 10, price: 50},
		{kind: "fill", id: 2, qty: 10, price: 50},
	})
}

func TestPartialFillAggressorRests(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 50, 30)
	o := submit(e, 2, Bid, Limit, 50, 100)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "ack", id: 1},
		{kind: "fill", id: 1, qty: 30, price: 50},
		{kind: "fill", id: 2, qty: 30, price: 50},
		{kind: "ack", id: 2},
	})
	if o.Remaining() != 70 {
		t.Errorf("remaining = %d, want 70", o.Remaining())
	}
	if !e.Resting(2) {
		t.Error("aggressor remainder should rest")
	}
}

func TestMultiLevelSweep(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 2, Ask, Limit, 49, 100)
	submit(e, 1, Ask, Limit, 50, 50)
	sink.events = nil

	o := submit(e, 3, Bid, Limit, 50, 200)

	// Best ask first, then the next level, remainder rests.
	wantEvents(t, sink.events, []sinkEvent{
		{kind: "fill", id: 2, qty: 100, price: 49},
		{kind: "fill", id: 3, qty: 100, price: 49},
		{kind: "fill", id: 1, qty: 50, price: 50},
		{kind: "fill", id: 3, qty: 50, price: 50},
		{kind: "ack", id: 3},
	})
	if o.Remaining() != 50 {
		t.Errorf("remaining = %d, want 50", o.Remaining())
	}
	if e.Book().Asks.Size() != 0 {
		t.Error("asks should be swept")
	}
	if e.Book().Bids.Size() != 1 {
		t.Error("remainder should rest as a bid")
	}
}

func TestTimePriorityWithinLevel(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 50, 10)
	submit(e, 2, Ask, Limit, 50, 10)
	sink.events = nil

	submit(e, 3, Bid, Limit, 50, 10)

	// Order 1 arrived first at the level, so it trades first.
	wantEvents(t, sink.events, []sinkEvent{
		{kind: "fill", id: 1, qty: 10, price: 50},
		{kind: "fill", id: 3, qty: 10, price: 50},
	})
	if !e.Resting(2) {
		t.Error("order 2 should still rest")
	}
}

func TestNoCrossNoTrade(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 60, 10)
	submit(e, 2, Bid, Limit, 50, 10)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "ack", id: 1},
		{kind: "ack", id: 2},
	})
	if e.Book().Bids.Size() != 1 || e.Book().Asks.Size() != 1 {
		t.Error("both orders should rest untouched")
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 7, Bid, Limit, 50, 10)
	submit(e, 7, Ask, Limit, 60, 10)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "ack", id: 7},
		{kind: "reject", id: 7, reason: ReasonIDExists},
	})
	if e.Book().Asks.Size() != 0 {
		t.Error("rejected order must not touch the book")
	}
}

func TestMarketOrderEmptyBookRejected(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Bid, Market, 0, 10)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "reject", id: 1, reason: ReasonNoLiquidity},
	})
}

func TestMarketOrderPartialThenCancelled(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 50, 30)
	sink.events = nil

	// Thin liquidity still trades; the unfilled remainder is
	// cancelled, never rested and never rejected.
	submit(e, 2, Bid, Market, 0, 100)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "fill", id: 1, qty: 30, price: 50},
		{kind: "fill", id: 2, qty: 30, price: 50},
		{kind: "cancel", id: 2},
	})
	if e.Book().Bids.Size() != 0 {
		t.Error("market remainder must not rest")
	}
}

func TestMarketOrderSweepsAllLevels(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Bid, Limit, 48, 10)
	submit(e, 2, Bid, Limit, 49, 10)
	sink.events = nil

	submit(e, 3, Ask, Market, 0, 20)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "fill", id: 2, qty: 10, price: 49},
		{kind: "fill", id: 3, qty: 10, price: 49},
		{kind: "fill", id: 1, qty: 10, price: 48},
		{kind: "fill", id: 3, qty: 10, price: 48},
	})
}

func TestCancelResting(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Bid, Limit, 50, 10)
	sink.events = nil

	e.Cancel(1)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "cancel", id: 1},
	})
	if e.Resting(1) || e.Book().Bids.Size() != 0 {
		t.Error("cancelled order should be gone")
	}
}

func TestCancelUnknownRejected(t *testing.T) {
	e, sink := newTestEngine()
	e.Cancel(42)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "reject", id: 42, reason: ReasonIDNotFound},
	})
}

func TestDoubleCancelSecondRejected(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 50, 10)
	sink.events = nil

	e.Cancel(1)
	e.Cancel(1)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "cancel", id: 1},
		{kind: "reject", id: 1, reason: ReasonIDNotFound},
	})
}

func TestCancelFullyFilledRejected(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Bid, Limit, 50, 10)
	submit(e, 2, Ask, Limit, 50, 10)
	sink.events = nil

	e.Cancel(1)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "reject", id: 1, reason: ReasonIDNotFound},
	})
}

func TestCancelledOrderNeverTrades(t *testing.T) {
	e, sink := newTestEngine()
	submit(e, 1, Ask, Limit, 50, 10)
	submit(e, 2, Ask, Limit, 50, 10)
	e.Cancel(1)
	sink.events = nil

	submit(e, 3, Bid, Limit, 50, 10)

	wantEvents(t, sink.events, []sinkEvent{
		{kind: "fill", id: 2, qty: 10, price: 50},
		{kind: "fill", id: 3, qty: 10, price: 50},
	})
}

func TestRestoreRestsSilently(t *testing.T) {
	e, sink := newTestEngine()
	e.Restore(&Order{ID: 1, Side: Bid, Type: Limit, Price: 50, Qty: 10, Filled: 4})

	if len(sink.events) != 0 {
		t.Fatalf("restore must emit nothing, got %+v", sink.events)
	}
	if !e.Resting(1) {
		t.Error("restored order should rest")
	}

	// Restored leaves quantity is Qty-Filled.
	submit(e, 2, Ask, Limit, 50, 10)
	wantEvents(t, sink.events, []sinkEvent{
		{kind: "fill", id: 1, qty: 6, price: 50},
		{kind: "fill", id: 2, qty: 6, price: 50},
		{kind: "ack", id: 2},
	})
}

func TestRetiredOrdersReachRing(t *testing.T) {
	ring := memory.NewRetireRing(16)
	sink := &recSink{}
	e := NewEngine(NewOrderBook(), sink, ring)

	o := &Order{ID: 1, Side: Bid, Type: Market, Price: 0, Qty: 10}
	e.Submit(o)

	got := ring.Dequeue()
	if got != o {
		t.Error("rejected market order should be retired to the ring")
	}
	if o.Status != Inactive {
		t.Error("retired order should be inactive")
	}
}

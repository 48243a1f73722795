package service

import (
	"sync"

	"go.uber.org/zap"

	"osprey/domain/orderbook"
	"osprey/infra/memory"
	"osprey/infra/sequence"
	"osprey/infra/wal/entry"
	"osprey/infra/wal/exit"
	"osprey/snapshot"
)

// OrderService is the only write entry point into the system. All
// coordination between the domain (orderbook engine), infra (memory,
// WALs) and snapshots happens here.
//
// One mutex guards the whole book per call: a single submission may
// touch both sides and multiple resting orders, so nothing finer is
// safe.
type OrderService struct {
	mu sync.Mutex

	engine *orderbook.Engine
	pool   *memory.Pool[orderbook.Order]
	ring   *memory.RetireRing
	reader *snapshot.Reader
	seqGen *sequence.Sequencer

	entryWAL *entry.WAL
	exitWAL  *exit.WAL

	fills chan orderbook.Fill
	log   *zap.Logger
}

// NewOrderService wires all dependencies and installs the live
// notification sink on the engine. No globals.
func NewOrderService(
	eng *orderbook.Engine,
	pool *memory.Pool[orderbook.Order],
	ring *memory.RetireRing,
	reader *snapshot.Reader,
	seqGen *sequence.Sequencer,
	entryWAL *entry.WAL,
	exitWAL *exit.WAL,
	log *zap.Logger,
) *OrderService {
	s := &OrderService{
		engine:   eng,
		pool:     pool,
		ring:     ring,
		reader:   reader,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		exitWAL:  exitWAL,
		fills:    make(chan orderbook.Fill, 4096),
		log:      log,
	}

	eng.SetSink(&outboxSink{
		seqGen: seqGen,
		outbox: exitWAL,
		fills:  s.fills,
		log:    log,
	})

	return s
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// PlaceOrder submits a new order into the engine and returns the
// assigned sequence number. Outcomes reach clients through the
// notification stream, not the return value.
func (s *OrderService) PlaceOrder(
	orderID uint64,
	side orderbook.Side,
	otype orderbook.OrderType,
	price int64,
	qty int64,
) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()

	rec := entry.NewRecord(entry.RecordPlace, seq, entry.Place{
		OrderID: orderID,
		Side:    uint8(side),
		Type:    uint8(otype),
		Price:   price,
		Qty:     qty,
	}.Encode())

	// Intent is durable before the book mutates.
	if err := s.entryWAL.Append(rec); err != nil {
		return 0, err
	}

	o := s.pool.Get()
	*o = orderbook.Order{
		ID:    orderID,
		Side:  side,
		Type:  otype,
		Price: price,
		Qty:   qty,
		SeqID: seq,
	}

	s.engine.Submit(o)
	return seq, nil
}

// CancelOrder cancels a resting order by id.
func (s *OrderService) CancelOrder(orderID uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()

	rec := entry.NewRecord(entry.RecordCancel, seq, entry.CancelIntent{
		OrderID: orderID,
	}.Encode())

	if err := s.entryWAL.Append(rec); err != nil {
		return 0, err
	}

	s.engine.Cancel(orderID)
	return seq, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Snapshot returns a consistent view of all active resting orders,
// bids best-to-worst then asks best-to-worst. Entries are detached
// copies taken inside the reader epoch, so the caller may hold them
// for as long as it likes.
func (s *OrderService) Snapshot() []orderbook.Order {
	s.reader.Begin()
	defer s.reader.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]orderbook.Order, 0, 1024)

	collect := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if o.Status == orderbook.Active {
				out = append(out, o.Clone())
			}
		}
	}

	book := s.engine.Book()
	book.BidsWalk(collect)
	book.AsksWalk(collect)

	return out
}

// LastSeq returns the most recently issued sequence number.
func (s *OrderService) LastSeq() uint64 {
	return s.seqGen.Current()
}

// Fills exposes the trade tick stream for the feed publisher.
func (s *OrderService) Fills() <-chan orderbook.Fill {
	return s.fills
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation of retired orders. Called
// periodically by a background job.
func (s *OrderService) AdvanceEpoch() {
	memory.AdvanceEpochAndReclaim(
		s.ring,
		s.pool,
		s.reader.Epoch(),
	)
}

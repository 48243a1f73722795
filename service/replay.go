package service

import (
	"fmt"

	"go.uber.org/zap"

	"osprey/domain/orderbook"
	"osprey/infra/memory"
	"osprey/infra/sequence"
	"osprey/infra/wal/entry"
	"osprey/infra/wal/exit"
)

// ReplayFromWAL rebuilds in-memory state from the entry WAL. Records
// at or below snapSeq are already covered by the loaded snapshot and
// are skipped. Must run before traffic is accepted; the exit WAL is
// never replayed into the engine, only consulted for its sequence
// high-water mark.
//
// Replay runs against a NopSink: every notification was delivered in
// the process's previous life, re-running matching only rebuilds state.
func ReplayFromWAL(
	walDir string,
	snapSeq uint64,
	eng *orderbook.Engine,
	pool *memory.Pool[orderbook.Order],
	seqGen *sequence.Sequencer,
	outbox *exit.WAL,
	log *zap.Logger,
) error {
	old := eng.SetSink(orderbook.NopSink{})
	defer eng.SetSink(old)

	replayed := 0
	lastSeq, err := entry.Replay(walDir, func(rec *entry.Record) error {
		if rec.Seq <= snapSeq {
			return nil
		}

		switch rec.Type {
		case entry.RecordPlace:
			p, err := entry.DecodePlace(rec.Data)
			if err != nil {
				return err
			}
			o := pool.Get()
			*o = orderbook.Order{
				ID:    p.OrderID,
				Side:  orderbook.Side(p.Side),
				Type:  orderbook.OrderType(p.Type),
				Price: p.Price,
				Qty:   p.Qty,
				SeqID: rec.Seq,
			}
			eng.Submit(o)

		case entry.RecordCancel:
			c, err := entry.DecodeCancel(rec.Data)
			if err != nil {
				return err
			}
			eng.Cancel(c.OrderID)

		default:
			return fmt.Errorf("service: unknown WAL record type %d", rec.Type)
		}

		replayed++
		return nil
	})
	if err != nil {
		return err
	}

	// Resume sequencing past everything durable, outbox events
	// included: they share the sequencer with entry records, and a
	// reused event seq would overwrite a still-pending outbox record.
	resume := lastSeq
	if snapSeq > resume {
		resume = snapSeq
	}
	if outbox != nil {
		outSeq, err := outbox.MaxSeq()
		if err != nil {
			return err
		}
		if outSeq > resume {
			resume = outSeq
		}
	}
	seqGen.Reset(resume)

	log.Info("WAL replay completed",
		zap.Int("records", replayed),
		zap.Uint64("last_seq", seqGen.Current()))
	return nil
}

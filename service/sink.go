package service

import (
	"go.uber.org/zap"

	"osprey/domain/orderbook"
	"osprey/infra/sequence"
	"osprey/infra/wal/exit"
)

// outboxSink is the live notification sink: every engine event is
// sequenced and persisted to the exit WAL before the submit or cancel
// call returns, preserving within-call emission order. Fills are also
// tee'd to the trade feed channel.
//
// An outbox write failure cannot unwind a match that already mutated
// the book, so it is logged and the event is dropped from the outbox;
// the entry WAL still allows the stream to be rebuilt by replay.
type outboxSink struct {
	seqGen *sequence.Sequencer
	outbox *exit.WAL
	fills  chan<- orderbook.Fill
	log    *zap.Logger
}

func (s *outboxSink) OnFill(f orderbook.Fill) {
	seq := s.seqGen.Next()
	s.persist(fillEvent(f, seq))

	if s.fills != nil {
		select {
		case s.fills <- f:
		default:
			s.log.Warn("trade feed full, dropping tick",
				zap.Uint64("order_id", f.OrderID))
		}
	}
}

func (s *outboxSink) OnReject(r orderbook.Reject) {
	s.persist(rejectEvent(r, s.seqGen.Next()))
}

func (s *outboxSink) OnCancel(c orderbook.Cancel) {
	s.persist(cancelEvent(c, s.seqGen.Next()))
}

func (s *outboxSink) OnAck(a orderbook.OrderAck) {
	s.persist(ackEvent(a, s.seqGen.Next()))
}

func (s *outboxSink) persist(e Event) {
	if err := s.outbox.Append(e.Seq, e.kind(), e.encode()); err != nil {
		s.log.Error("outbox append failed",
			zap.Uint64("seq", e.Seq),
			zap.String("type", e.Type),
			zap.Uint64("order_id", e.OrderID),
			zap.Error(err))
	}
}

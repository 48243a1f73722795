package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"osprey/snapshot"
)

// StartSnapshotJob periodically captures the resting book, then
// truncates the entry WAL below the snapshot and garbage-collects
// acked outbox records.
func (s *OrderService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *OrderService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.seqGen.Current()
	err := w.Write(seq, s.engine.Book())
	s.mu.Unlock()

	if err != nil {
		s.log.Error("snapshot write failed", zap.Error(err))
		return
	}

	if err := s.entryWAL.TruncateBefore(seq); err != nil {
		s.log.Warn("entry WAL truncate failed", zap.Error(err))
	}
	if err := s.exitWAL.TruncateAckedUpTo(seq); err != nil {
		s.log.Warn("exit WAL truncate failed", zap.Error(err))
	}

	s.log.Info("snapshot written", zap.Uint64("seq", seq))
}

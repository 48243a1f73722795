package snapshot

import "osprey/infra/memory"

// Reader is a thin adapter over memory.ReaderEpoch. Its only job is to
// clearly mark when a consistent read of the book begins and ends;
// epoching and reclamation are handled elsewhere.
type Reader struct {
	epoch *memory.ReaderEpoch
}

func NewReader() *Reader {
	r := &Reader{
		epoch: &memory.ReaderEpoch{},
	}
	r.epoch.Exit() // idle until the first Begin
	return r
}

// Begin marks the start of a consistent snapshot.
func (r *Reader) Begin() {
	r.epoch.Enter()
}

// End marks the end of a snapshot.
func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for reclaimers.
func (r *Reader) Epoch() *memory.ReaderEpoch {
	return r.epoch
}

package exit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// The exit WAL is the notification outbox. Every event emitted by the
// engine is persisted here before anything leaves the process; the
// broadcaster drains it in sequence order. State transitions are
// NEW -> SENT -> ACKED, and replay after a crash is idempotent because
// SENT records are re-published until acked.

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

type Kind uint8

const (
	KindFill Kind = iota
	KindReject
	KindCancel
	KindAck
)

type Record struct {
	Seq         uint64
	State       State
	Kind        Kind
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

// value encoding: [state:1][kind:1][retries:4][lastAttempt:8][payload...]
func encodeValue(r Record) []byte {
	buf := make([]byte, 14+len(r.Payload))
	buf[0] = byte(r.State)
	buf[1] = byte(r.Kind)
	binary.BigEndian.PutUint32(buf[2:6], r.Retries)
	binary.BigEndian.PutUint64(buf[6:14], uint64(r.LastAttempt))
	copy(buf[14:], r.Payload)
	return buf
}

func decodeValue(seq uint64, b []byte) (Record, error) {
	if len(b) < 14 {
		return Record{}, errors.New("exit: invalid record length")
	}
	payload := make([]byte, len(b)-14)
	copy(payload, b[14:])
	return Record{
		Seq:         seq,
		State:       State(b[0]),
		Kind:        Kind(b[1]),
		Retries:     binary.BigEndian.Uint32(b[2:6]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[6:14])),
		Payload:     payload,
	}, nil
}

type WAL struct {
	db *pebble.DB
}

func Open(dir string) (*WAL, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &WAL{db: db}, nil
}

func (w *WAL) Close() error {
	return w.db.Close()
}

// Append inserts a new outbox entry. Called by the service sink, in
// sequence order.
func (w *WAL) Append(seq uint64, kind Kind, payload []byte) error {
	rec := Record{
		Seq:     seq,
		State:   StateNew,
		Kind:    kind,
		Payload: payload,
	}
	return w.db.Set(keyFor(seq), encodeValue(rec), pebble.Sync)
}

func (w *WAL) MarkSent(seq uint64) error {
	return w.transition(seq, StateSent)
}

func (w *WAL) MarkAcked(seq uint64) error {
	return w.transition(seq, StateAcked)
}

func (w *WAL) transition(seq uint64, state State) error {
	rec, err := w.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	rec.Retries++
	rec.LastAttempt = time.Now().UnixNano()
	return w.db.Set(keyFor(seq), encodeValue(rec), pebble.Sync)
}

func (w *WAL) Get(seq uint64) (Record, error) {
	val, closer, err := w.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	return decodeValue(seq, val)
}

// ScanPending iterates every record not yet acked, in sequence order.
// The broadcaster drives this.
func (w *WAL) ScanPending(fn func(Record) error) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("evt/"),
		UpperBound: []byte("evt/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}

		rec, err := decodeValue(seq, iter.Value())
		if err != nil {
			return err
		}

		if rec.State == StateAcked {
			continue
		}

		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// MaxSeq returns the highest sequence present in the outbox, or zero
// when it is empty. Recovery resumes the sequencer past it so new
// events can never land on a key that still holds a pending record.
func (w *WAL) MaxSeq() (uint64, error) {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("evt/"),
		UpperBound: []byte("evt/~"),
	})
	if err != nil {
		return 0, err
	}
	defer iter.Close()

	if !iter.Last() {
		return 0, iter.Error()
	}
	return parseKey(iter.Key())
}

// TruncateAckedUpTo deletes acked records with seq <= upTo.
func (w *WAL) TruncateAckedUpTo(upTo uint64) error {
	iter, err := w.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("evt/"),
		UpperBound: []byte("evt/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if seq > upTo {
			break
		}
		if State(iter.Value()[0]) != StateAcked {
			continue
		}
		if err := w.db.Delete(keyFor(seq), pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("evt/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(b), "evt/%d", &seq)
	return seq, err
}

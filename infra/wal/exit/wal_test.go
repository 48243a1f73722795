package exit

import "testing"

func openTestWAL(t *testing.T) *WAL {
	t.Helper()
	w, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestOutboxAppendAndGet(t *testing.T) {
	w := openTestWAL(t)

	if err := w.Append(1, KindFill, []byte("payload")); err != nil {
		t.Fatalf("append: %v", err)
	}

	rec, err := w.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.State != StateNew || rec.Kind != KindFill {
		t.Errorf("got state=%v kind=%v, want NEW/fill", rec.State, rec.Kind)
	}
	if string(rec.Payload) != "payload" {
		t.Errorf("payload = %q", rec.Payload)
	}
}

func TestOutboxStateTransitions(t *testing.T) {
	w := openTestWAL(t)
	w.Append(1, KindAck, nil)

	if err := w.MarkSent(1); err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	rec, _ := w.Get(1)
	if rec.State != StateSent || rec.Retries != 1 {
		t.Errorf("after sent: state=%v retries=%d", rec.State, rec.Retries)
	}

	if err := w.MarkAcked(1); err != nil {
		t.Fatalf("mark acked: %v", err)
	}
	rec, _ = w.Get(1)
	if rec.State != StateAcked {
		t.Errorf("after acked: state=%v", rec.State)
	}
	if rec.LastAttempt == 0 {
		t.Error("transition should stamp LastAttempt")
	}
}

func TestOutboxScanPendingSkipsAcked(t *testing.T) {
	w := openTestWAL(t)
	for seq := uint64(1); seq <= 5; seq++ {
		w.Append(seq, KindFill, nil)
	}
	w.MarkSent(2)
	w.MarkAcked(2)
	w.MarkSent(4)

	var seqs []uint64
	err := w.ScanPending(func(rec Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []uint64{1, 3, 4, 5}
	if len(seqs) != len(want) {
		t.Fatalf("pending = %v, want %v", seqs, want)
	}
	for i := range want {
		if seqs[i] != want[i] {
			t.Fatalf("pending = %v, want %v", seqs, want)
		}
	}
}

func TestOutboxTruncateAcked(t *testing.T) {
	w := openTestWAL(t)
	for seq := uint64(1); seq <= 4; seq++ {
		w.Append(seq, KindCancel, nil)
		w.MarkSent(seq)
	}
	w.MarkAcked(1)
	w.MarkAcked(2)
	w.MarkAcked(4)

	// Only acked records at or below the cutoff go away.
	if err := w.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := w.Get(1); err == nil {
		t.Error("seq 1 should be deleted")
	}
	if _, err := w.Get(2); err == nil {
		t.Error("seq 2 should be deleted")
	}
	if _, err := w.Get(3); err != nil {
		t.Error("unacked seq 3 must survive")
	}
	if _, err := w.Get(4); err != nil {
		t.Error("seq 4 is past the cutoff and must survive")
	}
}

func TestOutboxValueRoundTrip(t *testing.T) {
	rec := Record{
		Seq:         9,
		State:       StateSent,
		Kind:        KindReject,
		Retries:     3,
		LastAttempt: 1234567,
		Payload:     []byte{0xDE, 0xAD},
	}

	got, err := decodeValue(9, encodeValue(rec))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.State != rec.State || got.Kind != rec.Kind ||
		got.Retries != rec.Retries || got.LastAttempt != rec.LastAttempt {
		t.Errorf("got %+v, want %+v", got, rec)
	}
	if string(got.Payload) != string(rec.Payload) {
		t.Errorf("payload = %v", got.Payload)
	}

	if _, err := decodeValue(1, []byte{1, 2}); err == nil {
		t.Error("short value should fail to decode")
	}
}

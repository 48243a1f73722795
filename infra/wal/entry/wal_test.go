package entry

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestWAL(t *testing.T, dir string, segSize int64) *WAL {
	t.Helper()
	w, err := Open(Config{Dir: dir, SegmentSize: segSize})
	if err != nil {
		t.Fatalf("open wal: %v", err)
	}
	return w
}

func TestWALAppendAndReplay(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 1<<20)

	const n = 100
	for i := 1; i <= n; i++ {
		p := Place{OrderID: uint64(i), Side: 0, Type: 0, Price: 100, Qty: 5}
		if err := w.Append(NewRecord(RecordPlace, uint64(i), p.Encode())); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var seen []uint64
	lastSeq, err := Replay(dir, func(rec *Record) error {
		if rec.Type != RecordPlace {
			t.Fatalf("unexpected record type %v", rec.Type)
		}
		p, err := DecodePlace(rec.Data)
		if err != nil {
			return err
		}
		if p.OrderID != rec.Seq {
			t.Fatalf("payload order id %d != seq %d", p.OrderID, rec.Seq)
		}
		seen = append(seen, rec.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if lastSeq != n {
		t.Fatalf("lastSeq = %d, want %d", lastSeq, n)
	}
	if len(seen) != n {
		t.Fatalf("replayed %d records, want %d", len(seen), n)
	}
}

func TestWALRotation(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 64) // tiny segments force rotation

	for i := 1; i <= 20; i++ {
		rec := NewRecord(RecordCancel, uint64(i), CancelIntent{OrderID: uint64(i)}.Encode())
		if err := w.Append(rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(files) < 2 {
		t.Fatalf("expected rotation into multiple segments, got %d", len(files))
	}

	count := 0
	if _, err := Replay(dir, func(rec *Record) error {
		count++
		return nil
	}); err != nil {
		t.Fatalf("replay across segments: %v", err)
	}
	if count != 20 {
		t.Fatalf("replayed %d records, want 20", count)
	}
}

func TestWALResumeAppending(t *testing.T) {
	dir := t.TempDir()

	w := openTestWAL(t, dir, 1<<20)
	if err := w.Append(NewRecord(RecordPlace, 1, Place{OrderID: 1, Qty: 1}.Encode())); err != nil {
		t.Fatalf("append: %v", err)
	}
	w.Close()

	w = openTestWAL(t, dir, 1<<20)
	if err := w.Append(NewRecord(RecordPlace, 2, Place{OrderID: 2, Qty: 1}.Encode())); err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	w.Close()

	var seqs []uint64
	if _, err := Replay(dir, func(rec *Record) error {
		seqs = append(seqs, rec.Seq)
		return nil
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
		t.Fatalf("seqs = %v, want [1 2]", seqs)
	}
}

func TestWALAppendDurableBeforeClose(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 1<<20)
	defer w.Close()

	if err := w.Append(NewRecord(RecordPlace, 1, Place{OrderID: 1, Qty: 1}.Encode())); err != nil {
		t.Fatalf("append: %v", err)
	}

	// No Close, no explicit Sync: Append itself must have flushed.
	count := 0
	if _, err := Replay(dir, func(*Record) error {
		count++
		return nil
	}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if count != 1 {
		t.Fatalf("replayed %d records, want 1", count)
	}
}

func TestWALCorruptionDetected(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 1<<20)
	if err := w.Append(NewRecord(RecordPlace, 1, Place{OrderID: 1, Qty: 1}.Encode())); err != nil {
		t.Fatalf("append: %v", err)
	}
	w.Close()

	files, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if len(files) != 1 {
		t.Fatalf("expected one segment, got %d", len(files))
	}

	// Flip a payload byte; the CRC no longer matches.
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	data[22] ^= 0xFF
	if err := os.WriteFile(files[0], data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("expected replay to fail on corrupted record")
	}
}

func TestWALNonMonotonicSeqRejected(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 1<<20)
	w.Append(NewRecord(RecordPlace, 5, Place{OrderID: 5, Qty: 1}.Encode()))
	w.Append(NewRecord(RecordPlace, 5, Place{OrderID: 6, Qty: 1}.Encode()))
	w.Close()

	if _, err := Replay(dir, func(*Record) error { return nil }); err == nil {
		t.Fatal("expected replay to fail on repeated seq")
	}
}

func TestWALTruncateBefore(t *testing.T) {
	dir := t.TempDir()
	w := openTestWAL(t, dir, 64)

	for i := 1; i <= 20; i++ {
		w.Append(NewRecord(RecordPlace, uint64(i), Place{OrderID: uint64(i), Qty: 1}.Encode()))
	}

	before, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err := w.TruncateBefore(20); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	after, _ := filepath.Glob(filepath.Join(dir, "segment-*.wal"))

	if len(after) >= len(before) {
		t.Fatalf("truncate removed nothing: before=%d after=%d", len(before), len(after))
	}
	// The active segment always survives.
	if len(after) == 0 {
		t.Fatal("active segment must not be removed")
	}
	w.Close()
}

func TestPayloadRoundTrip(t *testing.T) {
	p := Place{OrderID: 99, Side: 1, Type: 1, Price: -250, Qty: 42}
	got, err := DecodePlace(p.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != p {
		t.Errorf("got %+v, want %+v", got, p)
	}

	if _, err := DecodePlace([]byte{1, 2, 3}); err == nil {
		t.Error("expected short payload to fail")
	}

	c := CancelIntent{OrderID: 7}
	gotC, err := DecodeCancel(c.Encode())
	if err != nil {
		t.Fatalf("decode cancel: %v", err)
	}
	if gotC != c {
		t.Errorf("got %+v, want %+v", gotC, c)
	}
}

package memory

import "testing"

type thing struct{ id int }

func TestRetireRingBasic(t *testing.T) {
	r := NewRetireRing(4)
	o1 := &thing{id: 1}
	o2 := &thing{id: 2}

	if !r.Enqueue(o1) || !r.Enqueue(o2) {
		t.Fatal("enqueue failed unexpectedly")
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if r.Dequeue() != o1 {
		t.Error("expected first dequeue to be o1")
	}
	if r.Dequeue() != o2 {
		t.Error("expected second dequeue to be o2")
	}
	if r.Dequeue() != nil {
		t.Error("expected empty ring to return nil")
	}
}

func TestRetireRingFull(t *testing.T) {
	r := NewRetireRing(2)
	if !r.Enqueue(&thing{}) || !r.Enqueue(&thing{}) {
		t.Fatal("ring should hold its capacity")
	}
	if r.Enqueue(&thing{}) {
		t.Error("full ring should refuse enqueue")
	}

	r.Dequeue()
	if !r.Enqueue(&thing{}) {
		t.Error("ring should accept after a dequeue")
	}
}

func TestRetireRingWraps(t *testing.T) {
	r := NewRetireRing(4)
	for round := 0; round < 10; round++ {
		for i := 0; i < 4; i++ {
			if !r.Enqueue(&thing{id: i}) {
				t.Fatal("enqueue failed during wrap")
			}
		}
		for i := 0; i < 4; i++ {
			v := r.Dequeue()
			if v == nil || v.(*thing).id != i {
				t.Fatalf("wrap round %d: got %v, want id %d", round, v, i)
			}
		}
	}
}

func TestRetireRingRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non power-of-two size")
		}
	}()
	NewRetireRing(3)
}

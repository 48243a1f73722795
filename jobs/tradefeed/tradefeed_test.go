package tradefeed

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"osprey/domain/orderbook"
)

type captureWriter struct {
	mu       sync.Mutex
	ids      []uint64
	payloads [][]byte
	want     int
	done     chan struct{}
}

func (w *captureWriter) Publish(ctx context.Context, orderID uint64, payload []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ids = append(w.ids, orderID)
	w.payloads = append(w.payloads, payload)
	if w.done != nil && len(w.ids) == w.want {
		close(w.done)
	}
	return nil
}

func TestPublishTickShape(t *testing.T) {
	w := &captureWriter{}
	fills := make(chan orderbook.Fill)
	p := New(w, fills, zap.NewNop())

	p.publish(context.Background(), orderbook.Fill{OrderID: 42, Qty: 7, Price: 101})

	if len(w.payloads) != 1 {
		t.Fatalf("published %d payloads, want 1", len(w.payloads))
	}
	if w.ids[0] != 42 {
		t.Errorf("published key %d, want 42", w.ids[0])
	}

	var tick Tick
	if err := json.Unmarshal(w.payloads[0], &tick); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if tick.OrderID != 42 || tick.Qty != 7 || tick.Price != 101 {
		t.Errorf("tick = %+v, want order 42 qty 7 price 101", tick)
	}
	if tick.Time == 0 {
		t.Error("tick timestamp not set")
	}
}

func TestRunPublishesUntilCancelled(t *testing.T) {
	w := &captureWriter{want: 3, done: make(chan struct{})}
	fills := make(chan orderbook.Fill, 8)
	p := New(w, fills, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	fills <- orderbook.Fill{OrderID: 1, Qty: 1, Price: 10}
	fills <- orderbook.Fill{OrderID: 2, Qty: 2, Price: 20}
	fills <- orderbook.Fill{OrderID: 3, Qty: 3, Price: 30}

	select {
	case <-w.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ticks to publish")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.ids) != 3 || w.ids[0] != 1 || w.ids[1] != 2 || w.ids[2] != 3 {
		t.Errorf("published ids %v, want [1 2 3]", w.ids)
	}
}

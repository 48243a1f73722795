package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"osprey/domain/orderbook"
)

type Writer struct {
	Dir string
}

// Write captures every resting order. Bids first (best to worst), then
// asks; load order does not matter because Restore bypasses matching.
func (w *Writer) Write(seq uint64, book *orderbook.OrderBook) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}

	collect := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			if o.Status != orderbook.Active {
				continue
			}
			s.Orders = append(s.Orders, OrderEntry{
				ID:     o.ID,
				Side:   int(o.Side),
				Type:   int(o.Type),
				Price:  o.Price,
				Qty:    o.Qty,
				Filled: o.Filled,
				SeqID:  o.SeqID,
			})
		}
	}

	book.BidsWalk(collect)
	book.AsksWalk(collect)

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}

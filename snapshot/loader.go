package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"osprey/domain/orderbook"
	"osprey/infra/memory"
)

// Load rebuilds the resting book from the latest snapshot, if any, and
// returns the sequence it covers. A missing snapshot is not an error.
func Load(
	dir string,
	eng *orderbook.Engine,
	pool *memory.Pool[orderbook.Order],
) (uint64, error) {
	f, err := os.Open(filepath.Join(dir, "snapshot.bin"))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		o := pool.Get()
		*o = orderbook.Order{
			ID:     e.ID,
			Side:   orderbook.Side(e.Side),
			Type:   orderbook.OrderType(e.Type),
			Price:  e.Price,
			Qty:    e.Qty,
			Filled: e.Filled,
			SeqID:  e.SeqID,
		}
		eng.Restore(o)
	}

	return s.Seq, nil
}

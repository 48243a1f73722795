package tradefeed

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"osprey/domain/orderbook"
)

// Tick is the public market data shape of one fill.
type Tick struct {
	OrderID uint64 `json:"order_id"`
	Qty     int64  `json:"qty"`
	Price   int64  `json:"price"`
	Time    int64  `json:"ts"`
}

// Writer is what the feed needs from a transport: deliver one payload
// keyed by order id.
type Writer interface {
	Publish(ctx context.Context, orderID uint64, payload []byte) error
}

// Publisher drains the service fill channel to the trades topic.
// Best-effort market data: a failed publish is logged and dropped,
// the authoritative stream is the broadcaster's.
type Publisher struct {
	writer Writer
	fills  <-chan orderbook.Fill
	log    *zap.Logger
}

func New(writer Writer, fills <-chan orderbook.Fill, log *zap.Logger) *Publisher {
	return &Publisher{
		writer: writer,
		fills:  fills,
		log:    log,
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.log.Info("trade feed started")

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-p.fills:
			p.publish(ctx, f)
		}
	}
}

func (p *Publisher) publish(ctx context.Context, f orderbook.Fill) {
	tick := Tick{
		OrderID: f.OrderID,
		Qty:     f.Qty,
		Price:   f.Price,
		Time:    time.Now().UnixNano(),
	}

	value, _ := json.Marshal(tick)

	if err := p.writer.Publish(ctx, f.OrderID, value); err != nil {
		p.log.Warn("trade tick publish failed",
			zap.Uint64("order_id", f.OrderID), zap.Error(err))
	}
}

package kafka

import (
	"context"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// TickWriter publishes market data ticks, keyed by order id so that
// all ticks for one order land on the same partition. The feed is
// best-effort, so it asks for a single broker ack and batches on a
// short timer.
type TickWriter struct {
	writer *kafka.Writer
}

func NewTickWriter(brokers []string, topic string) *TickWriter {
	return &TickWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
			BatchTimeout: 5 * time.Millisecond,
		},
	}
}

func (w *TickWriter) Publish(
	ctx context.Context,
	orderID uint64,
	payload []byte,
) error {
	return w.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(orderID, 10)),
		Value: payload,
	})
}

func (w *TickWriter) Close() error {
	return w.writer.Close()
}

package service

import (
	"encoding/json"

	"osprey/domain/orderbook"
	"osprey/infra/wal/exit"
)

// Event is the versioned wire form of a sink notification, stored in
// the exit WAL and published by the broadcaster.
type Event struct {
	V       int    `json:"v"`
	Type    string `json:"type"`
	OrderID uint64 `json:"order_id"`
	Qty     int64  `json:"qty,omitempty"`
	Price   int64  `json:"price,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Seq     uint64 `json:"seq"`
}

const eventVersion = 1

func fillEvent(f orderbook.Fill, seq uint64) Event {
	return Event{V: eventVersion, Type: "fill", OrderID: f.OrderID, Qty: f.Qty, Price: f.Price, Seq: seq}
}

func rejectEvent(r orderbook.Reject, seq uint64) Event {
	return Event{V: eventVersion, Type: "reject", OrderID: r.OrderID, Reason: r.Reason, Seq: seq}
}

func cancelEvent(c orderbook.Cancel, seq uint64) Event {
	return Event{V: eventVersion, Type: "cancel", OrderID: c.OrderID, Seq: seq}
}

func ackEvent(a orderbook.OrderAck, seq uint64) Event {
	return Event{V: eventVersion, Type: "ack", OrderID: a.OrderID, Seq: seq}
}

func (e Event) kind() exit.Kind {
	switch e.Type {
	case "fill":
		return exit.KindFill
	case "reject":
		return exit.KindReject
	case "ack":
		return exit.KindAck
	default:
		return exit.KindCancel
	}
}

func (e Event) encode() []byte {
	b, _ := json.Marshal(e)
	return b
}

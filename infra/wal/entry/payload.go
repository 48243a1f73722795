package entry

import (
	"encoding/binary"
	"errors"
)

var ErrBadPayload = errors.New("entry: malformed payload")

// Place is the intent logged before a submission reaches the engine.
// Side and type are the domain enum values narrowed to one byte.
type Place struct {
	OrderID uint64
	Side    uint8
	Type    uint8
	Price   int64
	Qty     int64
}

// Payload layout: [id:8][side:1][type:1][price:8][qty:8]
func (p Place) Encode() []byte {
	buf := make([]byte, 26)
	binary.BigEndian.PutUint64(buf[0:8], p.OrderID)
	buf[8] = p.Side
	buf[9] = p.Type
	binary.BigEndian.PutUint64(buf[10:18], uint64(p.Price))
	binary.BigEndian.PutUint64(buf[18:26], uint64(p.Qty))
	return buf
}

func DecodePlace(b []byte) (Place, error) {
	if len(b) != 26 {
		return Place{}, ErrBadPayload
	}
	return Place{
		OrderID: binary.BigEndian.Uint64(b[0:8]),
		Side:    b[8],
		Type:    b[9],
		Price:   int64(binary.BigEndian.Uint64(b[10:18])),
		Qty:     int64(binary.BigEndian.Uint64(b[18:26])),
	}, nil
}

type CancelIntent struct {
	OrderID uint64
}

func (c CancelIntent) Encode() []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, c.OrderID)
	return buf
}

func DecodeCancel(b []byte) (CancelIntent, error) {
	if len(b) != 8 {
		return CancelIntent{}, ErrBadPayload
	}
	return CancelIntent{OrderID: binary.BigEndian.Uint64(b)}, nil
}

package orderbook

// PriceLevel is a FIFO queue of resting orders at a single price.
// Time priority is the link order: head is the oldest order.
type PriceLevel struct {
	Price int64

	head *Order
	tail *Order

	TotalQty   int64
	OrderCount int
}

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.TotalQty += o.Remaining()
	p.OrderCount++
}

// Unlink removes o from the queue wherever it sits.
// The caller owns level cleanup when the queue drains.
func (p *PriceLevel) Unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next = nil
	o.prev = nil

	p.TotalQty -= o.Remaining()
	p.OrderCount--
}

// ReduceQty keeps the level aggregate in step with a partial fill
// of one of its resting orders.
func (p *PriceLevel) ReduceQty(qty int64) {
	p.TotalQty -= qty
}

func (p *PriceLevel) Empty() bool {
	return p.head == nil
}

// Read-only helper.
func (p *PriceLevel) Head() *Order {
	return p.head
}

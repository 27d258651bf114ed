package orderbook

import (
	"github.com/cryptonstudio/orderbook-core/container/avltree"
	"github.com/cryptonstudio/orderbook-core/container/queue"
)

// Order is the minimal record this core needs to reference. It is owned by
// the caller (a matching engine, in a full system) and only borrowed by
// the book for the lifetime of its presence in a level queue.
type Order struct {
	id       uint64
	side     Side
	kind     Kind
	price    Price
	quantity Price // remaining quantity

	// maxVisible caps how much of quantity is displayed; the rest is
	// hidden. maxVisible >= quantity means a fully visible order.
	maxVisible Price

	// level is the back-reference to the Level currently holding this
	// order, nil if the order is unlinked.
	level *avltree.Node[Price, *Level]

	// queued is the intrusive FIFO handle for this order within its
	// level's OrderList, nil if unlinked.
	queued *queue.Element[*Order]
}

// NewOrder constructs an unlinked order. maxVisible should be set to a
// value >= quantity for a fully visible order, to zero for a fully hidden
// ("iceberg with nothing showing") order, or to a value strictly between
// zero and quantity for a partially visible ("iceberg") order.
func NewOrder(id uint64, side Side, kind Kind, price, quantity, maxVisible Price) *Order {
	return &Order{
		id:         id,
		side:       side,
		kind:       kind,
		price:      price,
		quantity:   quantity,
		maxVisible: maxVisible,
	}
}

// ID returns the order's identifier.
func (o *Order) ID() uint64 {
	return o.id
}

// Side returns the order's market side.
func (o *Order) Side() Side {
	return o.side
}

// Kind returns whether this is a limit or stop order.
func (o *Order) Kind() Kind {
	return o.kind
}

// IsBuy reports whether the order is on the buy side.
func (o *Order) IsBuy() bool {
	return o.side == Buy
}

// IsSell reports whether the order is on the sell side.
func (o *Order) IsSell() bool {
	return o.side == Sell
}

// Price returns the order's limit (or trigger-converted) price.
func (o *Order) Price() Price {
	return o.price
}

// Quantity returns the order's remaining quantity.
func (o *Order) Quantity() Price {
	return o.quantity
}

// SetQuantity overwrites the order's remaining quantity. Callers must
// update this before calling ReduceOrder, so the delta between the old and
// new quantity can be applied to the level's aggregates.
func (o *Order) SetQuantity(q Price) {
	o.quantity = q
}

// VisibleQuantity returns the portion of the remaining quantity displayed
// to the market.
func (o *Order) VisibleQuantity() Price {
	return Min(o.quantity, o.maxVisible)
}

// HiddenQuantity returns the portion of the remaining quantity not
// displayed to the market. HiddenQuantity + VisibleQuantity == Quantity.
func (o *Order) HiddenQuantity() Price {
	if o.quantity.Cmp(o.maxVisible) > 0 {
		return o.quantity.Sub(o.maxVisible)
	}
	return Zero()
}

// IsLinked reports whether the order currently sits in a level's queue.
func (o *Order) IsLinked() bool {
	return o.level != nil
}

// Level returns the Level currently holding this order, or nil if unlinked.
func (o *Order) Level() *Level {
	if o.level == nil {
		return nil
	}
	return o.level.Value()
}

package orderbook

import (
	"github.com/tidwall/hashmap"

	"github.com/cryptonstudio/orderbook-core/container/avltree"
)

// OrderBook maintains the bid/ask/buy-stop/sell-stop ladders for a single
// instrument. It is not safe for concurrent use: callers are expected to
// shard books by instrument onto a single goroutine each.
type OrderBook struct {
	pool LevelPool

	bids *ladder
	asks *ladder

	buyStop  *ladder
	sellStop *ladder

	orders *hashmap.Map[uint64, *Order]
}

// NewOrderBook creates an empty OrderBook backed by a default arena-pooled
// LevelPool.
func NewOrderBook() *OrderBook {
	return NewOrderBookWithPool(newArenaLevelPool())
}

// NewOrderBookWithPool creates an empty OrderBook backed by pool. Useful
// for sharing one pool across many books, or for substituting a test
// double for pool exhaustion / release-order assertions.
func NewOrderBookWithPool(pool LevelPool) *OrderBook {
	return &OrderBook{
		pool:     pool,
		bids:     newDescendingLadder(),
		asks:     newAscendingLadder(),
		buyStop:  newAscendingLadder(),
		sellStop: newDescendingLadder(),
		orders:   hashmap.New[uint64, *Order](defaultReservedOrderSlots),
	}
}

// Clean returns every level across all four ladders to the pool and drops
// the order index. Orders themselves are owned by the caller and are not
// touched.
func (ob *OrderBook) Clean() {
	release := func(l *Level) bool {
		ob.pool.Release(l)
		return false
	}
	ob.bids.clean(release)
	ob.asks.clean(release)
	ob.buyStop.clean(release)
	ob.sellStop.clean(release)
	ob.orders = hashmap.New[uint64, *Order](defaultReservedOrderSlots)
}

// IsEmpty reports whether the book currently has no resting orders.
func (ob *OrderBook) IsEmpty() bool {
	return ob.orders.Len() == 0
}

// Size returns the number of resting orders currently indexed by the book.
func (ob *OrderBook) Size() int {
	return ob.orders.Len()
}

// Order returns the resting order with the given id, or nil if none is
// currently linked into the book.
func (ob *OrderBook) Order(id uint64) *Order {
	if o, ok := ob.orders.Get(id); ok {
		return o
	}
	return nil
}

// BestBid returns the highest-price level in the bids ladder, or nil if
// the ladder is empty.
func (ob *OrderBook) BestBid() *Level {
	return levelOf(ob.bids.best())
}

// BestAsk returns the lowest-price level in the asks ladder, or nil if the
// ladder is empty.
func (ob *OrderBook) BestAsk() *Level {
	return levelOf(ob.asks.best())
}

// GetBid returns the bid-side level at price, or nil if none exists.
func (ob *OrderBook) GetBid(price Price) *Level {
	return levelOf(ob.bids.find(price))
}

// GetAsk returns the ask-side level at price, or nil if none exists.
func (ob *OrderBook) GetAsk(price Price) *Level {
	return levelOf(ob.asks.find(price))
}

// AddOrder links a new limit order into the book, creating its price
// level if necessary, and reports how that level changed.
func (ob *OrderBook) AddOrder(order *Order) (LevelUpdate, error) {
	if order == nil {
		return LevelUpdate{}, ErrOrderNotFound
	}
	if order.Kind() != Limit {
		return LevelUpdate{}, ErrInvalidKind
	}
	if _, ok := ob.orders.Get(order.ID()); ok {
		return LevelUpdate{}, ErrOrderDuplicate
	}

	l, levelType, err := ob.limitLadder(order)
	if err != nil {
		return LevelUpdate{}, err
	}

	update, err := ob.addOrder(l, levelType, order)
	if err != nil {
		return LevelUpdate{}, err
	}
	ob.orders.Set(order.ID(), order)
	return update, nil
}

// ReduceOrder applies a partial (or, via zero remaining quantity, full)
// reduction to a linked order and reports how its level changed. The
// caller must have already applied dQty/dHidden/dVisible to the order's
// own counters before calling.
func (ob *OrderBook) ReduceOrder(order *Order, dQty, dHidden, dVisible Price) (LevelUpdate, error) {
	if order == nil {
		return LevelUpdate{}, ErrOrderNotFound
	}
	if order.level == nil {
		return LevelUpdate{}, ErrOrderUnlinked
	}
	l, _, err := ob.limitLadder(order)
	if err != nil {
		return LevelUpdate{}, err
	}
	update, err := ob.reduceOrder(l, order, dQty, dHidden, dVisible)
	if err != nil {
		return LevelUpdate{}, err
	}
	if order.level == nil {
		ob.orders.Delete(order.ID())
	}
	return update, nil
}

// DeleteOrder fully unlinks order from the book, equivalent to reducing it
// by its entire remaining quantity.
func (ob *OrderBook) DeleteOrder(order *Order) (LevelUpdate, error) {
	if order == nil {
		return LevelUpdate{}, ErrOrderNotFound
	}
	if order.level == nil {
		return LevelUpdate{}, ErrOrderUnlinked
	}
	l, _, err := ob.limitLadder(order)
	if err != nil {
		return LevelUpdate{}, err
	}
	update, err := ob.deleteOrder(l, order)
	if err != nil {
		return LevelUpdate{}, err
	}
	ob.orders.Delete(order.ID())
	return update, nil
}

func (ob *OrderBook) limitLadder(order *Order) (*ladder, LevelType, error) {
	switch order.Side() {
	case Buy:
		return ob.bids, Bid, nil
	case Sell:
		return ob.asks, Ask, nil
	default:
		return nil, 0, ErrInvalidSide
	}
}

func (ob *OrderBook) addOrder(l *ladder, levelType LevelType, order *Order) (LevelUpdate, error) {
	kind := Updated

	node := l.find(order.Price())
	if node == nil {
		level := ob.pool.Create(levelType, order.Price())
		var err error
		node, err = l.insert(level)
		if err != nil {
			ob.pool.Release(level)
			return LevelUpdate{}, ErrLevelDuplicate
		}
		kind = Added
	}

	level := node.Value()
	level.addOrder(order)
	order.level = node

	return LevelUpdate{
		Kind:     kind,
		Side:     order.Side(),
		Snapshot: level.snapshot(),
		Top:      l.isTop(node),
	}, nil
}

func (ob *OrderBook) reduceOrder(l *ladder, order *Order, dQty, dHidden, dVisible Price) (LevelUpdate, error) {
	node := order.level
	level := node.Value()
	top := l.isTop(node)

	level.applyDelta(dQty, dHidden, dVisible)

	if order.Quantity().IsZero() {
		if err := level.unlinkOrder(order); err != nil {
			return LevelUpdate{}, err
		}
		order.level = nil
	}

	kind := Updated
	snapshot := level.snapshot()

	if level.TotalVolume().IsZero() {
		if _, err := l.erase(node); err != nil {
			return LevelUpdate{}, err
		}
		ob.pool.Release(level)
		kind = Deleted
	}

	return LevelUpdate{Kind: kind, Side: order.Side(), Snapshot: snapshot, Top: top}, nil
}

func (ob *OrderBook) deleteOrder(l *ladder, order *Order) (LevelUpdate, error) {
	node := order.level
	level := node.Value()
	top := l.isTop(node)

	level.applyDelta(order.Quantity(), order.HiddenQuantity(), order.VisibleQuantity())

	if err := level.unlinkOrder(order); err != nil {
		return LevelUpdate{}, err
	}
	order.level = nil

	kind := Updated
	snapshot := level.snapshot()

	if level.TotalVolume().IsZero() {
		if _, err := l.erase(node); err != nil {
			return LevelUpdate{}, err
		}
		ob.pool.Release(level)
		kind = Deleted
	}

	return LevelUpdate{Kind: kind, Side: order.Side(), Snapshot: snapshot, Top: top}, nil
}

func levelOf(node *avltree.Node[Price, *Level]) *Level {
	if node == nil {
		return nil
	}
	return node.Value()
}

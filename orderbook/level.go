package orderbook

import "github.com/cryptonstudio/orderbook-core/container/queue"

// Level is a single price bucket: a FIFO queue of resting orders at one
// price, plus aggregated volume counters that must stay consistent with
// the queue contents after every mutation.
type Level struct {
	levelType LevelType
	price     Price

	totalVolume   Price
	hiddenVolume  Price
	visibleVolume Price

	orderList *queue.Queue[*Order]
}

func newLevel(levelType LevelType, price Price) *Level {
	return &Level{
		levelType: levelType,
		price:     price,
		orderList: queue.New[*Order](),
	}
}

// NewLevel constructs a ready-to-use Level. Exported for callers writing
// their own LevelPool: Create must return a Level built this way (or
// recycled from one), with a fresh, empty order queue.
func NewLevel(levelType LevelType, price Price) *Level {
	return newLevel(levelType, price)
}

// reset clears a level back to its zero state so it can be safely returned
// to a LevelPool. It does not touch any order still linked to it — the
// caller (OrderBook) is required to have already unlinked every order
// before releasing the level.
func (l *Level) reset() {
	l.levelType = 0
	l.price = Zero()
	l.totalVolume = Zero()
	l.hiddenVolume = Zero()
	l.visibleVolume = Zero()
	l.orderList.Clean()
}

// Type returns the level's semantic tag (inverted relative to the resting
// order's own side on the stop ladders).
func (l *Level) Type() LevelType {
	return l.levelType
}

// Price returns the level's price.
func (l *Level) Price() Price {
	return l.price
}

// TotalVolume returns the sum of every resting order's remaining quantity.
func (l *Level) TotalVolume() Price {
	return l.totalVolume
}

// HiddenVolume returns the sum of every resting order's hidden quantity.
func (l *Level) HiddenVolume() Price {
	return l.hiddenVolume
}

// VisibleVolume returns the sum of every resting order's visible quantity.
func (l *Level) VisibleVolume() Price {
	return l.visibleVolume
}

// Orders returns the number of resting orders at this level.
func (l *Level) Orders() int {
	return l.orderList.Len()
}

// OrderList exposes the FIFO queue of resting orders for read-only
// traversal (time-priority inspection, market-data snapshotting).
func (l *Level) OrderList() *queue.Queue[*Order] {
	return l.orderList
}

func (l *Level) addOrder(o *Order) {
	l.totalVolume = l.totalVolume.Add(o.Quantity())
	l.hiddenVolume = l.hiddenVolume.Add(o.HiddenQuantity())
	l.visibleVolume = l.visibleVolume.Add(o.VisibleQuantity())
	o.queued = l.orderList.PushBack(o)
}

func (l *Level) applyDelta(qty, hidden, visible Price) {
	l.totalVolume = l.totalVolume.Sub(qty)
	l.hiddenVolume = l.hiddenVolume.Sub(hidden)
	l.visibleVolume = l.visibleVolume.Sub(visible)
}

func (l *Level) unlinkOrder(o *Order) error {
	_, err := l.orderList.Remove(o.queued)
	if err != nil {
		return err
	}
	o.queued = nil
	return nil
}

// snapshot copies the level's current aggregates by value: a LevelUpdate
// never exposes the live tree/queue handles to callers.
func (l *Level) snapshot() LevelSnapshot {
	return LevelSnapshot{
		Type:    l.levelType,
		Price:   l.price,
		Volume:  l.totalVolume,
		Hidden:  l.hiddenVolume,
		Visible: l.visibleVolume,
		Orders:  l.Orders(),
	}
}

// LevelSnapshot is a value-type copy of a Level's aggregates, taken either
// after mutation (ADD/UPDATE) or immediately before deletion (DELETE).
type LevelSnapshot struct {
	Type    LevelType
	Price   Price
	Volume  Price
	Hidden  Price
	Visible Price
	Orders  int
}

package orderbook

// Stop orders rest on their own ladders and are never matched by this
// package; a trigger subsystem outside this core decides when to convert
// one into a limit order. The level tag on a stop ladder is inverted
// relative to the stop's own side: a buy-stop level is tagged Ask (it
// names the limit ladder the order will join once triggered), a sell-stop
// level is tagged Bid. Stop mutations never return a LevelUpdate and never
// touch best-of-book, since stops have no notion of "top".

// AddStopOrder links a new stop order into its stop ladder, creating the
// level if necessary.
func (ob *OrderBook) AddStopOrder(order *Order) error {
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Kind() != Stop {
		return ErrInvalidKind
	}
	l, levelType, err := ob.stopLadder(order)
	if err != nil {
		return err
	}

	node := l.find(order.Price())
	if node == nil {
		level := ob.pool.Create(levelType, order.Price())
		node, err = l.insert(level)
		if err != nil {
			ob.pool.Release(level)
			return ErrLevelDuplicate
		}
	}

	node.Value().addOrder(order)
	order.level = node
	return nil
}

// ReduceStopOrder applies a partial (or full) reduction to a linked stop
// order, deleting its level once its volume reaches zero.
func (ob *OrderBook) ReduceStopOrder(order *Order, dQty, dHidden, dVisible Price) error {
	if order == nil {
		return ErrOrderNotFound
	}
	if order.level == nil {
		return ErrOrderUnlinked
	}
	l, _, err := ob.stopLadder(order)
	if err != nil {
		return err
	}

	node := order.level
	level := node.Value()
	level.applyDelta(dQty, dHidden, dVisible)

	if order.Quantity().IsZero() {
		if err := level.unlinkOrder(order); err != nil {
			return err
		}
		order.level = nil
	}

	if level.TotalVolume().IsZero() {
		if _, err := l.erase(node); err != nil {
			return err
		}
		ob.pool.Release(level)
	}
	return nil
}

// DeleteStopOrder fully unlinks a stop order from its ladder.
func (ob *OrderBook) DeleteStopOrder(order *Order) error {
	if order == nil {
		return ErrOrderNotFound
	}
	if order.level == nil {
		return ErrOrderUnlinked
	}
	l, _, err := ob.stopLadder(order)
	if err != nil {
		return err
	}

	node := order.level
	level := node.Value()
	level.applyDelta(order.Quantity(), order.HiddenQuantity(), order.VisibleQuantity())

	if err := level.unlinkOrder(order); err != nil {
		return err
	}
	order.level = nil

	if level.TotalVolume().IsZero() {
		if _, err := l.erase(node); err != nil {
			return err
		}
		ob.pool.Release(level)
	}
	return nil
}

// GetBuyStopLevel returns the buy-stop level at price (tagged Ask), or nil.
func (ob *OrderBook) GetBuyStopLevel(price Price) *Level {
	return levelOf(ob.buyStop.find(price))
}

// GetSellStopLevel returns the sell-stop level at price (tagged Bid), or nil.
func (ob *OrderBook) GetSellStopLevel(price Price) *Level {
	return levelOf(ob.sellStop.find(price))
}

func (ob *OrderBook) stopLadder(order *Order) (*ladder, LevelType, error) {
	switch order.Side() {
	case Buy:
		return ob.buyStop, Ask, nil
	case Sell:
		return ob.sellStop, Bid, nil
	default:
		return nil, 0, ErrInvalidSide
	}
}

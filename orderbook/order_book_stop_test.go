package orderbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newStopOrder(id uint64, side Side, price, qty uint64) *Order {
	p := NewPrice(price)
	q := NewPrice(qty)
	return NewOrder(id, side, Stop, p, q, q)
}

func TestAddStopOrderCreatesLevelWithInvertedType(t *testing.T) {
	book := NewOrderBook()

	buyStop := newStopOrder(1, Buy, 110, 5)
	require.NoError(t, book.AddStopOrder(buyStop))

	level := book.GetBuyStopLevel(NewPrice(110))
	require.NotNil(t, level)
	require.Equal(t, Ask, level.Type())
	require.True(t, level.TotalVolume().Equals(NewPrice(5)))
	require.True(t, buyStop.IsLinked())
}

func TestAddStopOrderRejectsNonStopKind(t *testing.T) {
	book := NewOrderBook()
	o := NewOrder(1, Buy, Limit, NewPrice(100), NewPrice(5), NewPrice(5))
	require.ErrorIs(t, book.AddStopOrder(o), ErrInvalidKind)
}

func TestAddStopOrderDuplicatePriceSharesLevel(t *testing.T) {
	book := NewOrderBook()
	first := newStopOrder(1, Sell, 90, 5)
	second := newStopOrder(2, Sell, 90, 3)

	require.NoError(t, book.AddStopOrder(first))
	require.NoError(t, book.AddStopOrder(second))

	level := book.GetSellStopLevel(NewPrice(90))
	require.NotNil(t, level)
	require.Equal(t, 2, level.Orders())
	require.True(t, level.TotalVolume().Equals(NewPrice(8)))
}

func TestReduceStopOrderPartialPreservesLevel(t *testing.T) {
	book := NewOrderBook()
	o := newStopOrder(1, Buy, 110, 10)
	require.NoError(t, book.AddStopOrder(o))

	o.SetQuantity(NewPrice(6))
	require.NoError(t, book.ReduceStopOrder(o, NewPrice(4), Zero(), NewPrice(4)))

	level := book.GetBuyStopLevel(NewPrice(110))
	require.NotNil(t, level)
	require.True(t, level.TotalVolume().Equals(NewPrice(6)))
	require.True(t, o.IsLinked())
}

func TestReduceStopOrderToZeroDeletesLevel(t *testing.T) {
	book := NewOrderBook()
	o := newStopOrder(1, Sell, 90, 5)
	require.NoError(t, book.AddStopOrder(o))

	o.SetQuantity(Zero())
	require.NoError(t, book.ReduceStopOrder(o, NewPrice(5), Zero(), NewPrice(5)))

	require.Nil(t, book.GetSellStopLevel(NewPrice(90)))
	require.False(t, o.IsLinked())
}

func TestReduceStopOrderUnlinkedErrors(t *testing.T) {
	book := NewOrderBook()
	o := newStopOrder(1, Buy, 110, 5)
	require.ErrorIs(t, book.ReduceStopOrder(o, NewPrice(1), Zero(), NewPrice(1)), ErrOrderUnlinked)
}

func TestDeleteStopOrderRemovesOrderAndKeepsSiblingLevel(t *testing.T) {
	book := NewOrderBook()
	o1 := newStopOrder(1, Buy, 110, 5)
	o2 := newStopOrder(2, Buy, 110, 3)
	require.NoError(t, book.AddStopOrder(o1))
	require.NoError(t, book.AddStopOrder(o2))

	require.NoError(t, book.DeleteStopOrder(o1))

	level := book.GetBuyStopLevel(NewPrice(110))
	require.NotNil(t, level)
	require.Equal(t, 1, level.Orders())
	require.True(t, level.TotalVolume().Equals(NewPrice(3)))
	require.False(t, o1.IsLinked())
}

func TestDeleteStopOrderLastAtPriceDeletesLevel(t *testing.T) {
	book := NewOrderBook()
	o := newStopOrder(1, Sell, 90, 5)
	require.NoError(t, book.AddStopOrder(o))

	require.NoError(t, book.DeleteStopOrder(o))

	require.Nil(t, book.GetSellStopLevel(NewPrice(90)))
}

func TestDeleteStopOrderUnlinkedErrors(t *testing.T) {
	book := NewOrderBook()
	o := newStopOrder(1, Buy, 110, 5)
	require.ErrorIs(t, book.DeleteStopOrder(o), ErrOrderUnlinked)
}

func TestStopOrdersNeverAffectBestOfBook(t *testing.T) {
	book := NewOrderBook()
	_, err := book.AddOrder(newLimitOrder(1, Buy, 100, 5))
	require.NoError(t, err)

	require.NoError(t, book.AddStopOrder(newStopOrder(2, Buy, 150, 1)))
	require.True(t, book.BestBid().Price().Equals(NewPrice(100)))
}

package orderbook

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAscendingLadderBestIsLowestPrice(t *testing.T) {
	l := newAscendingLadder()
	n100, err := l.insert(newLevel(Ask, NewPrice(100)))
	require.NoError(t, err)
	_, err = l.insert(newLevel(Ask, NewPrice(50)))
	require.NoError(t, err)
	n25, err := l.insert(newLevel(Ask, NewPrice(25)))
	require.NoError(t, err)

	require.True(t, l.best().Key().Equals(NewPrice(25)))
	require.True(t, l.isTop(n25))
	require.False(t, l.isTop(n100))
}

func TestDescendingLadderBestIsHighestPrice(t *testing.T) {
	l := newDescendingLadder()
	_, err := l.insert(newLevel(Bid, NewPrice(100)))
	require.NoError(t, err)
	n150, err := l.insert(newLevel(Bid, NewPrice(150)))
	require.NoError(t, err)
	_, err = l.insert(newLevel(Bid, NewPrice(75)))
	require.NoError(t, err)

	require.True(t, l.best().Key().Equals(NewPrice(150)))
	require.True(t, l.isTop(n150))
}

func TestLadderInsertDuplicatePriceErrors(t *testing.T) {
	l := newAscendingLadder()
	_, err := l.insert(newLevel(Ask, NewPrice(100)))
	require.NoError(t, err)
	_, err = l.insert(newLevel(Ask, NewPrice(100)))
	require.Error(t, err)
}

func TestLadderEraseUpdatesBest(t *testing.T) {
	l := newDescendingLadder()
	_, err := l.insert(newLevel(Bid, NewPrice(100)))
	require.NoError(t, err)
	n101, err := l.insert(newLevel(Bid, NewPrice(101)))
	require.NoError(t, err)
	_, err = l.insert(newLevel(Bid, NewPrice(99)))
	require.NoError(t, err)

	require.True(t, l.best().Key().Equals(NewPrice(101)))

	_, err = l.erase(n101)
	require.NoError(t, err)
	require.True(t, l.best().Key().Equals(NewPrice(100)))
}

func TestLadderEmptyHasNoBest(t *testing.T) {
	l := newAscendingLadder()
	require.Nil(t, l.best())
	require.Nil(t, l.find(NewPrice(1)))
}

func TestLadderCleanVisitsEveryLevel(t *testing.T) {
	l := newAscendingLadder()
	_, err := l.insert(newLevel(Ask, NewPrice(1)))
	require.NoError(t, err)
	_, err = l.insert(newLevel(Ask, NewPrice(2)))
	require.NoError(t, err)
	_, err = l.insert(newLevel(Ask, NewPrice(3)))
	require.NoError(t, err)

	var count int
	l.clean(func(*Level) bool {
		count++
		return false
	})
	require.Equal(t, 3, count)
}

package orderbook

import "github.com/cryptonstudio/orderbook-core/container/avltree"

// ladder is a price-ordered tree of Levels, one per side of the limit book
// and one per stop-order queue. Ascending ladders keep the lowest price at
// Best (asks, buy-stops); descending ladders keep the highest price at Best
// (bids, sell-stops).
type ladder struct {
	tree *avltree.Tree[Price, *Level]
}

func newAscendingLadder() *ladder {
	return &ladder{
		tree: avltree.New[Price, *Level](func(a, b Price) int { return a.Cmp(b) }),
	}
}

func newDescendingLadder() *ladder {
	return &ladder{
		tree: avltree.New[Price, *Level](func(a, b Price) int { return -a.Cmp(b) }),
	}
}

// find returns the level node at price, or nil if none exists.
func (l *ladder) find(price Price) *avltree.Node[Price, *Level] {
	return l.tree.Find(price)
}

// insert adds a new level node at price. Callers must have already checked
// find(price) == nil.
func (l *ladder) insert(level *Level) (*avltree.Node[Price, *Level], error) {
	return l.tree.Insert(level.Price(), level)
}

// erase removes node from the ladder by handle and returns its Level.
// Callers always already hold node (order.level, or the node just found by
// find/insert), so this never re-searches by price.
func (l *ladder) erase(node *avltree.Node[Price, *Level]) (*Level, error) {
	return l.tree.EraseNode(node)
}

// best returns the node holding the top-of-book level, or nil if empty.
func (l *ladder) best() *avltree.Node[Price, *Level] {
	return l.tree.Min()
}

// isTop reports whether node is the current best of this ladder.
func (l *ladder) isTop(node *avltree.Node[Price, *Level]) bool {
	best := l.best()
	return best != nil && node != nil && best.Key().Equals(node.Key())
}

// size returns the number of levels currently in the ladder.
func (l *ladder) size() int {
	return l.tree.Size()
}

// clean visits every level in the ladder via f, used to drain a ladder back
// to a LevelPool on close, then resets the ladder's tree to empty so a
// stale node can't still be found by price afterward.
func (l *ladder) clean(f func(*Level) bool) {
	l.tree.IteratePostOrder(f)
	l.tree.Clear()
}

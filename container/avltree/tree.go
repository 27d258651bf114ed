// Package avltree implements a generic, intrusive AVL tree: a self-balancing
// binary search tree guaranteeing O(log n) worst-case insert, find and
// remove. Nodes have stable addresses for their lifetime in the tree, so a
// caller may cache a *Node handle across other tree mutations — this is
// what lets a price level ladder track "the node this order's level lives
// in" without a second lookup.
package avltree

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a generic AVL tree keyed by K, ordered by a caller-supplied
// comparator so both ascending and descending ladders can share the same
// implementation.
type Tree[K, V any] struct {
	compare func(a, b K) int
	pool    *sync.Pool
	root    *Node[K, V]
	min     *Node[K, V]
	max     *Node[K, V]
	size    int
}

// New creates a tree using compare, which must return 0 if a == b, a
// negative number if a < b, and a positive number if a > b.
func New[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{compare: compare}
}

// NewOrderedTree creates a tree over any naturally ordered type (numbers,
// strings) using the standard ascending comparator.
func NewOrderedTree[K typ.Ordered, V any]() *Tree[K, V] {
	return New[K, V](typ.Compare[K])
}

// NewPooled creates a tree that allocates/releases nodes through pool
// instead of the garbage collector, for hot paths that churn nodes at a
// high rate.
func NewPooled[K, V any](compare func(a, b K) int, pool *sync.Pool) *Tree[K, V] {
	return &Tree[K, V]{compare: compare, pool: pool}
}

// Size returns the number of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Find returns the node with the given key, or nil if none exists.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.find(key, t.compare)
}

// Contains reports whether a node with the given key exists.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Insert adds a node with the given key and value. Keys must be unique;
// inserting a duplicate returns ErrDuplicateKey and leaves the tree
// unchanged.
func (t *Tree[K, V]) Insert(key K, value V) (*Node[K, V], error) {
	var node *Node[K, V]
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key, node.value = key, value
	} else {
		node = &Node[K, V]{key: key, value: value}
	}

	if t.root == nil {
		t.root = node
	} else {
		newRoot, err := t.root.insert(node, t.compare)
		if err != nil {
			if t.pool != nil {
				*node = Node[K, V]{}
				t.pool.Put(node)
			}
			return nil, err
		}
		t.root = newRoot
	}
	t.size++

	if t.min == nil || t.compare(node.key, t.min.key) < 0 {
		t.min = node
	}
	if t.max == nil || t.compare(node.key, t.max.key) > 0 {
		t.max = node
	}
	return node, nil
}

// Remove deletes the node with the given key and returns its value.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	if t.root == nil {
		return value, ErrKeyNotFound
	}
	removed, newRoot, err := t.root.remove(key, t.compare)
	if err != nil {
		return value, err
	}
	t.root = newRoot
	if t.root != nil {
		t.root.parent = nil
	}
	value = removed.value
	t.size--

	if t.min == removed {
		t.min = nil
		if t.root != nil {
			t.min = t.root.Min()
		}
	}
	if t.max == removed {
		t.max = nil
		if t.root != nil {
			t.max = t.root.Max()
		}
	}

	if t.pool != nil {
		*removed = Node[K, V]{}
		t.pool.Put(removed)
	}
	return value, nil
}

// EraseNode removes node from the tree. Unlike Remove, it locates the
// splice point via node's own parent/left/right pointers instead of
// re-searching by key — the common case, since a Level always already
// holds the *Node it lives in.
func (t *Tree[K, V]) EraseNode(node *Node[K, V]) (V, error) {
	value := node.value
	t.root = eraseHandle(t.root, node)
	t.size--

	if t.min == node {
		t.min = nil
		if t.root != nil {
			t.min = t.root.Min()
		}
	}
	if t.max == node {
		t.max = nil
		if t.root != nil {
			t.max = t.root.Max()
		}
	}

	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
	return value, nil
}

// Clear resets the tree to empty, returning every node to its pool if one
// is configured. Root, size, and the cached min/max are all reset; a
// caller that only walks the tree via IteratePostOrder (e.g. to release
// each value to its own pool) still needs to call Clear afterward, since
// iteration alone never touches the tree's own bookkeeping fields.
func (t *Tree[K, V]) Clear() {
	if t.pool != nil && t.root != nil {
		t.root.iteratePostOrder(func(n *Node[K, V]) bool {
			*n = Node[K, V]{}
			t.pool.Put(n)
			return false
		})
	}
	t.root = nil
	t.min = nil
	t.max = nil
	t.size = 0
}

// Min returns the smallest-keyed node, or nil if the tree is empty.
func (t *Tree[K, V]) Min() *Node[K, V] {
	return t.min
}

// Max returns the largest-keyed node, or nil if the tree is empty.
func (t *Tree[K, V]) Max() *Node[K, V] {
	return t.max
}

// IterateInOrder visits every value in ascending key order, stopping early
// if f returns true.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(n *Node[K, V]) bool { return f(n.value) })
}

// IteratePostOrder visits every value such that a node's children are
// always visited before the node itself — the order required to safely
// release every node in the tree without touching an already-released one.
func (t *Tree[K, V]) IteratePostOrder(f func(value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(n *Node[K, V]) bool { return f(n.value) })
}

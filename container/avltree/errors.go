package avltree

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key already exists in the tree.
	ErrDuplicateKey = errors.New("avltree: duplicate key")
	// ErrKeyNotFound is returned by Remove when the key does not exist in the tree.
	ErrKeyNotFound = errors.New("avltree: key not found")
)

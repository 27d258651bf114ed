package queue

import "errors"

var (
	// ErrElementNil is returned by Remove when given a nil element.
	ErrElementNil = errors.New("queue: element is nil")
	// ErrElementNotInQueue is returned by Remove when the element does not belong to this queue.
	ErrElementNotInQueue = errors.New("queue: element does not belong to this queue")
)

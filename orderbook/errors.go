package orderbook

import "errors"

// Errors used by the package. Every one of these signals a broken caller
// invariant: this is a synchronous, single-threaded, zero-allocation
// bookkeeping structure, not a service with retryable failure modes.
var (
	ErrOrderDuplicate = errors.New("orderbook: order is duplicated")
	ErrOrderNotFound  = errors.New("orderbook: order is not found")
	ErrOrderUnlinked  = errors.New("orderbook: order is not linked to a level")
	ErrLevelDuplicate = errors.New("orderbook: price level is duplicated")
	ErrLevelNotFound  = errors.New("orderbook: price level is not found")
	ErrInvalidSide    = errors.New("orderbook: invalid order side")
	ErrInvalidKind    = errors.New("orderbook: invalid order kind")
)

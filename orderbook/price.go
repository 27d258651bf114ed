package orderbook

import "lukechampine.com/uint128"

// Price is a 128-bit unsigned scalar used both for order-book prices and
// quantities: this core does integer-tick bookkeeping only, never
// floating-point arithmetic, and never anything beyond addition and
// subtraction on the aggregate counters.
type Price struct {
	v uint128.Uint128
}

// Zero returns the zero price/quantity.
func Zero() Price {
	return Price{}
}

// NewPrice wraps a uint64 tick count as a Price.
func NewPrice(v uint64) Price {
	return Price{v: uint128.From64(v)}
}

// Add returns p + other.
func (p Price) Add(other Price) Price {
	return Price{v: p.v.Add(other.v)}
}

// Sub returns p - other, saturating at zero on underflow rather than
// wrapping around — a broken caller invariant should produce a
// wrong-but-bounded number, never corrupt the aggregate into a huge
// unsigned value.
func (p Price) Sub(other Price) Price {
	if other.v.Cmp(p.v) > 0 {
		return Price{}
	}
	return Price{v: p.v.Sub(other.v)}
}

// Cmp returns -1, 0 or 1 as p is less than, equal to, or greater than other.
func (p Price) Cmp(other Price) int {
	return p.v.Cmp(other.v)
}

// Equals reports whether p and other are numerically equal.
func (p Price) Equals(other Price) bool {
	return p.v.Equals(other.v)
}

// IsZero reports whether p is zero.
func (p Price) IsZero() bool {
	return p.v.IsZero()
}

// String renders p in decimal.
func (p Price) String() string {
	return p.v.String()
}

// Min returns the smaller of a and b.
func Min(a, b Price) Price {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Price) Price {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

package orderbook

const (
	// defaultReservedOrderSlots sizes the initial backing array of the
	// order-by-ID index so common books don't reallocate on their first
	// few hundred inserts.
	defaultReservedOrderSlots = 1024

	// defaultReservedLevelSlots sizes the level arena's initial capacity.
	// Levels churn far less than orders (many orders share one level), so
	// this stays an order of magnitude smaller.
	defaultReservedLevelSlots = 128
)

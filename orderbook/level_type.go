package orderbook

// LevelType is the semantic tag a Level carries. On the limit ladders it
// matches the ladder's own side (bids hold Bid levels, asks hold Ask
// levels). On the stop ladders it is inverted relative to the resting
// stop's own side: a buy-stop level is tagged Ask and a sell-stop level is
// tagged Bid, because the tag names the limit ladder the stop will join
// once triggered, not the stop's own side.
type LevelType uint8

const (
	// Bid tags a level resting in a descending-price ladder.
	Bid LevelType = iota + 1
	// Ask tags a level resting in an ascending-price ladder.
	Ask
)

func (t LevelType) String() string {
	switch t {
	case Bid:
		return "bid"
	case Ask:
		return "ask"
	default:
		return "unknown"
	}
}

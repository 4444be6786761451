package model

// OrderBookRecord is a snapshot of one instrument's visible book at an
// instant. Bids are sorted strictly descending by price (best bid first);
// asks are sorted strictly ascending by price (best ask first). Either side
// may be empty.
type OrderBookRecord struct {
	Bids []Level
	Asks []Level
}

// BestBid returns the top of the bid side, if any.
func (b *OrderBookRecord) BestBid() (Level, bool) {
	if b == nil || len(b.Bids) == 0 {
		return Level{}, false
	}
	return b.Bids[0], true
}

// BestAsk returns the top of the ask side, if any.
func (b *OrderBookRecord) BestAsk() (Level, bool) {
	if b == nil || len(b.Asks) == 0 {
		return Level{}, false
	}
	return b.Asks[0], true
}

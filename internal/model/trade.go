package model

import "github.com/yanun0323/decimal"

// TradeRecord is a single execution.
type TradeRecord struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// TradeRun is the buffered, ordered run of trades accumulated between two
// book snapshots for one instrument. Adjacent trades at the same price are
// coalesced into a single entry; insertion order is preserved otherwise.
type TradeRun struct {
	entries []TradeRecord
}

// Append adds a trade to the run, coalescing it into the last entry when the
// price matches within tolerance.
func (r *TradeRun) Append(t TradeRecord) {
	if n := len(r.entries); n > 0 && Equal(r.entries[n-1].Price, t.Price) {
		r.entries[n-1].Quantity = r.entries[n-1].Quantity.Add(t.Quantity)
		return
	}
	r.entries = append(r.entries, t)
}

// Empty reports whether the run holds no trades.
func (r *TradeRun) Empty() bool {
	return r == nil || len(r.entries) == 0
}

// Reset clears the run, ready for the next interval between snapshots.
func (r *TradeRun) Reset() {
	r.entries = r.entries[:0]
}

// First returns the earliest buffered trade.
func (r *TradeRun) First() TradeRecord {
	return r.entries[0]
}

// Last returns the most recently buffered trade.
func (r *TradeRun) Last() TradeRecord {
	return r.entries[len(r.entries)-1]
}

// Total sums the quantity of every buffered trade.
func (r *TradeRun) Total() decimal.Decimal {
	total := decimal.Decimal{}
	for _, t := range r.entries {
		total = total.Add(t.Quantity)
	}
	return total
}

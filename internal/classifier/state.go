// Package classifier holds the per-instrument diffing and classification
// engine: the stateful core that turns a sequence of book snapshots and
// trades into human-readable PASSIVE/CANCEL/AGGRESSIVE lines.
package classifier

import (
	"strings"

	"orderflow/internal/model"
	"orderflow/internal/model/enum"
)

// State is one instrument's classifier. It owns the last observed book and
// any trades buffered since that book was taken. A State is not safe for
// concurrent use; callers must ensure only one goroutine touches a given
// symbol's State at a time (see internal/scheduler).
type State struct {
	prevBook *model.OrderBookRecord
	trades   model.TradeRun
}

// New creates an empty classifier, ready to receive its first snapshot.
func New() *State {
	return &State{}
}

// RecordTrade buffers a trade into the run since the last snapshot. It
// returns false only when trade is nil; no output is produced.
func (s *State) RecordTrade(trade *model.TradeRecord) bool {
	if trade == nil {
		return false
	}
	s.trades.Append(*trade)
	return true
}

// UpdateBook processes a new snapshot against the stored book and any
// buffered trades, returning the text block to append to the symbol's sink.
func (s *State) UpdateBook(newBook *model.OrderBookRecord) string {
	if newBook == nil {
		return "update invalid book\n"
	}

	if s.prevBook == nil {
		s.prevBook = newBook
		return ""
	}

	var out strings.Builder
	if s.trades.Empty() {
		diffSide(&out, enum.SideBuy, s.prevBook.Bids, newBook.Bids)
		diffSide(&out, enum.SideSell, s.prevBook.Asks, newBook.Asks)
	} else {
		classifyAggressive(&out, s.prevBook, newBook, &s.trades)
	}

	s.prevBook = newBook
	s.trades.Reset()
	return out.String()
}

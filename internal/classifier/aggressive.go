package classifier

import (
	"strings"

	"orderflow/internal/model"
	"orderflow/internal/model/enum"
)

// classifyAggressive classifies one buffered trade run against the old and
// new books, emitting exactly one AGGRESSIVE line, or "invalid trade\n" when
// neither aggression rule fires.
func classifyAggressive(w *strings.Builder, old, newBook *model.OrderBookRecord, trades *model.TradeRun) {
	first := trades.First()
	last := trades.Last()
	qty := trades.Total()
	price := last.Price

	if bestBid, ok := old.BestBid(); ok && first.Price.LessThanOrEqual(bestBid.Price) {
		if bestAsk, ok := newBook.BestAsk(); ok && last.Price.GreaterThanOrEqual(bestAsk.Price) {
			qty = qty.Add(bestAsk.Quantity)
			price = bestAsk.Price
		}
		emit(w, enum.IntentionAggressive, enum.SideSell, qty, price)
		return
	}

	if bestAsk, ok := old.BestAsk(); ok && first.Price.GreaterThanOrEqual(bestAsk.Price) {
		if bestBid, ok := newBook.BestBid(); ok && last.Price.LessThanOrEqual(bestBid.Price) {
			qty = qty.Add(bestBid.Quantity)
			price = bestBid.Price
		}
		emit(w, enum.IntentionAggressive, enum.SideBuy, qty, price)
		return
	}

	w.WriteString("invalid trade\n")
}

package ingest

import (
	"github.com/yanun0323/decimal"

	"orderflow/internal/model"
)

// line is one NDJSON input line: exactly one of Book or Trade is set.
type line struct {
	Book  *bookPayload  `json:"book"`
	Trade *tradePayload `json:"trade"`
}

type levelPayload struct {
	Count    decimal.Decimal `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type bookPayload struct {
	Symbol string         `json:"symbol"`
	Bid    []levelPayload `json:"bid"`
	Ask    []levelPayload `json:"ask"`
}

type tradePayload struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (b *bookPayload) toRecord() *model.OrderBookRecord {
	return &model.OrderBookRecord{
		Bids: toLevels(b.Bid),
		Asks: toLevels(b.Ask),
	}
}

func toLevels(src []levelPayload) []model.Level {
	if len(src) == 0 {
		return nil
	}
	out := make([]model.Level, len(src))
	for i, l := range src {
		out[i] = model.Level{Count: l.Count, Quantity: l.Quantity, Price: l.Price}
	}
	return out
}

func (t *tradePayload) toRecord() *model.TradeRecord {
	return &model.TradeRecord{Price: t.Price, Quantity: t.Quantity}
}

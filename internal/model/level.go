package model

import "github.com/yanun0323/decimal"

// Level is a single price row on one side of an order book. Count is carried
// for input fidelity only; the classifier never reads it.
type Level struct {
	Count    decimal.Decimal
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

package model

import "github.com/yanun0323/decimal"

// tolerance is used for price/quantity equality tests. It sits orders of
// magnitude below 0.01 so it never masks a genuine one-cent price difference
// at typical equity-quote magnitudes, per the numeric semantics this system
// inherits from its originating design.
var tolerance = decimal.NewFromFloat(1e-9)

// Equal reports whether a and b are equal within tolerance.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(tolerance)
}

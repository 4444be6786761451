package classifier

import (
	"strings"

	"github.com/yanun0323/decimal"

	"orderflow/internal/model"
	"orderflow/internal/model/enum"
)

// diffSide performs the side-wise merge diff between two ordered level
// sequences for the same side, emitting PASSIVE/CANCEL lines to w. old and
// new must already be ordered the way the side requires (descending for
// bids, ascending for asks).
func diffSide(w *strings.Builder, side enum.Side, oldLevels, newLevels []model.Level) {
	i, j := 0, 0
	for i < len(oldLevels) || j < len(newLevels) {
		switch {
		case i >= len(oldLevels):
			emit(w, enum.IntentionPassive, side, newLevels[j].Quantity, newLevels[j].Price)
			j++
		case j >= len(newLevels):
			emit(w, enum.IntentionCancel, side, oldLevels[i].Quantity, oldLevels[i].Price)
			i++
		case model.Equal(oldLevels[i].Price, newLevels[j].Price):
			delta := newLevels[j].Quantity.Sub(oldLevels[i].Quantity)
			if !model.Equal(newLevels[j].Quantity, oldLevels[i].Quantity) {
				intention := enum.IntentionPassive
				if delta.IsNegative() {
					intention = enum.IntentionCancel
				}
				emit(w, intention, side, delta, newLevels[j].Price)
			}
			i++
			j++
		case better(side, newLevels[j].Price, oldLevels[i].Price):
			emit(w, enum.IntentionPassive, side, newLevels[j].Quantity, newLevels[j].Price)
			j++
		default:
			emit(w, enum.IntentionCancel, side, oldLevels[i].Quantity, oldLevels[i].Price)
			i++
		}
	}
}

// better reports whether price a is a more aggressive resting price than b
// on the given side: higher on the bid side, lower on the ask side.
func better(side enum.Side, a, b decimal.Decimal) bool {
	if side == enum.SideBuy {
		return a.GreaterThan(b)
	}
	return a.LessThan(b)
}

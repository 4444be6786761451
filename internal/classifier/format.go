package classifier

import (
	"strings"

	"github.com/yanun0323/decimal"

	"orderflow/internal/model/enum"
)

// emit appends one classified-event line in the form
// "<INTENTION> <SIDE> <quantity> @ <price>\n" to w. Quantity and price are
// fixed to two fractional digits; a negative quantity keeps its sign.
func emit(w *strings.Builder, intention enum.Intention, side enum.Side, quantity, price decimal.Decimal) {
	w.WriteString(intention.String())
	w.WriteByte(' ')
	w.WriteString(side.String())
	w.WriteByte(' ')
	w.WriteString(quantity.StringFixed(2))
	w.WriteString(" @ ")
	w.WriteString(price.StringFixed(2))
	w.WriteByte('\n')
}

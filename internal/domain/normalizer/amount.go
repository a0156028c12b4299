package normalizer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// CleanAmount parses a raw cell into a signed decimal amount.
//
// Numeric cells pass through unchanged. String cells may carry currency
// symbols, thousands separators and one of several negativity markers
// (leading or trailing minus, enclosing parentheses); everything except
// digits and the decimal point is stripped before parsing. The second
// return value is false when the cell is empty or unparseable — a missing
// amount must never silently become zero.
func CleanAmount(cell transaction.Cell) (decimal.Decimal, bool) {
	switch cell.Kind {
	case transaction.CellNumber:
		return decimal.NewFromFloat(cell.Number), true
	case transaction.CellEmpty:
		return decimal.Decimal{}, false
	}

	s := strings.TrimSpace(cell.Text)
	if s == "" {
		return decimal.Decimal{}, false
	}

	negative := strings.Contains(s, "-") ||
		(strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"))

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	if negative {
		cleaned = "-" + cleaned
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

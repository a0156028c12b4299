package normalizer

import (
	"github.com/shopspring/decimal"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// dateColumns are the candidate column names for the canonical date, tried
// in order. The first candidate whose value actually parses wins; a date
// column holding garbage does not block a later candidate.
var dateColumns = []string{
	"date", "DATE", "Value Date", "VALUE DATE",
	"transaction_date", "post_date", "Transaction Date", "Date",
}

// rowDate extracts the canonical ISO date for a row, or "" if no candidate
// column parses.
func rowDate(row transaction.RawRow) string {
	for _, col := range dateColumns {
		cell, ok := row.Cell(col)
		if !ok || cell.IsEmpty() {
			continue
		}
		if date, ok := ParseDate(cell.String()); ok {
			return date
		}
	}
	return ""
}

// rowAmount computes the canonical signed amount for a row.
//
// Debit cells contribute their absolute value negatively and credit cells
// positively. Only when neither kind yielded any valid value do the general
// amount columns contribute, signed as-is (a negative general amount stays
// negative). The result is rounded to 2 decimal places; nil means no column
// yielded a valid number.
func rowAmount(row transaction.RawRow, cls ColumnClassification) *float64 {
	total := decimal.Zero
	found := false

	for _, col := range cls.Debit {
		if v, ok := cellAmount(row, col); ok {
			total = total.Sub(v.Abs())
			found = true
		}
	}
	for _, col := range cls.Credit {
		if v, ok := cellAmount(row, col); ok {
			total = total.Add(v.Abs())
			found = true
		}
	}

	if !found {
		for _, col := range cls.General {
			if v, ok := cellAmount(row, col); ok {
				total = total.Add(v)
				found = true
			}
		}
	}

	if !found {
		return nil
	}

	f, _ := total.Round(2).Float64()
	return &f
}

func cellAmount(row transaction.RawRow, col string) (decimal.Decimal, bool) {
	cell, ok := row.Cell(col)
	if !ok || cell.IsEmpty() {
		return decimal.Decimal{}, false
	}
	return CleanAmount(cell)
}

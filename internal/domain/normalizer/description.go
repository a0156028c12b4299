package normalizer

import (
	"strings"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// descriptionColumns are checked first, by exact (case-sensitive) name.
// These are the description headers seen across common bank statement and
// ledger exports.
var descriptionColumns = []string{
	"TRANSACTION DETAILS", "DESCRIPTION", "Description", "NARRATION",
	"PARTICULARS", "Memo", "MEMO", "NARRATIVE", "Details", "TEXT",
}

// chequeColumn holds a check number usable as a last-resort description.
const chequeColumn = "CHQ.NO."

// descriptionKeywords drive the final case-insensitive substring scan over
// all column names.
var descriptionKeywords = []string{
	"detail", "desc", "narr", "memo", "note", "text", "part",
}

// SelectDescription extracts a free-text description from a row.
//
// Three stages, in priority order: the exact allow-list above, then a
// cheque-number fallback rendered as "Check #<value>", then a substring
// scan over every column name in source order. Returns "" when nothing
// matches — an absent description must visibly reduce matching confidence,
// not masquerade as content behind a placeholder.
func SelectDescription(row transaction.RawRow) string {
	for _, col := range descriptionColumns {
		if cell, ok := row.Cell(col); ok {
			if s := cell.String(); strings.TrimSpace(s) != "" {
				return s
			}
		}
	}

	if cell, ok := row.Cell(chequeColumn); ok && !cell.IsEmpty() {
		return "Check #" + cell.String()
	}

	for _, col := range row.Columns {
		lower := strings.ToLower(col)
		if !matchesAny(lower, descriptionKeywords) {
			continue
		}
		if cell, ok := row.Cell(col); ok {
			if s := cell.String(); strings.TrimSpace(s) != "" {
				return s
			}
		}
	}

	return ""
}

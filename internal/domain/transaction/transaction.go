// Package transaction defines the canonical transaction model shared by the
// normalization pipeline and the matching engine.
//
// A Transaction is derived from one raw source row. Its canonical fields
// (date, description, amount) may independently be absent: an empty date or
// description string and a nil amount mean "nothing usable was extracted",
// which downstream code must treat differently from a genuine zero or empty
// value. The original row is carried alongside the canonical fields so the
// API can surface every source column unchanged.
package transaction

// Source labels for the two reconciliation inputs. The pipeline works with
// any pair of labels; these are the conventional ones.
const (
	SourceBank   = "bank"
	SourceLedger = "ledger"
)

// Status is the lifecycle state of a transaction within one reconciliation.
type Status string

const (
	// StatusUnmatched is the initial state and the terminal state of any
	// transaction the matching engine could not pair.
	StatusUnmatched Status = "unmatched"

	// StatusMatched means the transaction was paired with no discrepancies.
	StatusMatched Status = "matched"

	// StatusReview means the transaction was paired but at least one
	// discrepancy was found, so a human should look at it.
	StatusReview Status = "review"
)

// Transaction is the canonical record for one source row.
//
// Only the matching engine mutates a Transaction after creation, and only
// the Status, MatchID and Confidence fields.
type Transaction struct {
	ID       string
	Source   string
	Status   Status
	RowIndex int

	// Date is ISO formatted (YYYY-MM-DD), or "" if no candidate column
	// parsed. Description is "" if no description-bearing column was found.
	// Amount is nil if no amount column yielded a valid number; 0 is a
	// legitimate value and is never used to signal absence.
	Date        string
	Description string
	Amount      *float64

	// MatchID and Confidence are set only once the transaction is matched
	// or flagged for review. Confidence is the fingerprint similarity score
	// (0-100) of the pairing.
	MatchID    string
	Confidence int

	// Raw is the lossless passthrough of the original row, kept for audit
	// display. It is never consulted by the matching engine.
	Raw RawRow
}

// Matchable reports whether the transaction carries at least one canonical
// field the matching engine can work with.
func (t *Transaction) Matchable() bool {
	return t.Date != "" || t.Description != "" || t.Amount != nil
}

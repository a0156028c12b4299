// Package matcher pairs transactions from two sources by fuzzy fingerprint
// similarity and classifies each pairing as clean or needing review.
//
// The engine is greedy and order-dependent by design: bank transactions are
// scanned in source order and each one immediately consumes the best
// still-available ledger partner. That guarantees 1:1 pairings within a pass
// but not a globally optimal assignment — an earlier bank transaction can
// claim the partner a later one fits better.
package matcher

import (
	"strconv"
	"strings"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// Fingerprint derives the comparable text signature for a transaction:
// the space-joined concatenation of its date, description and 2-decimal
// amount, skipping whichever are absent. Pure and deterministic; an empty
// fingerprint marks the transaction as unmatchable.
func Fingerprint(t *transaction.Transaction) string {
	parts := make([]string, 0, 3)

	if t.Date != "" {
		parts = append(parts, t.Date)
	}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	if t.Amount != nil {
		parts = append(parts, strconv.FormatFloat(*t.Amount, 'f', 2, 64))
	}

	return strings.Join(parts, " ")
}

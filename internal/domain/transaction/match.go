package transaction

// Discrepancy types.
const (
	DiscrepancyAmount      = "amount"
	DiscrepancyDescription = "description"
)

// Discrepancy records a disagreement between two otherwise-matched
// transactions. Difference is set for amount discrepancies (signed,
// bank minus ledger), Similarity for description discrepancies.
type Discrepancy struct {
	Type        string   `json:"type"`
	BankValue   any      `json:"bank_value"`
	LedgerValue any      `json:"ledger_value"`
	Difference  *float64 `json:"difference,omitempty"`
	Similarity  *int     `json:"similarity,omitempty"`
}

// NewAmountDiscrepancy builds an amount discrepancy with the signed
// difference (bank minus ledger).
func NewAmountDiscrepancy(bank, ledger, difference float64) Discrepancy {
	return Discrepancy{
		Type:        DiscrepancyAmount,
		BankValue:   bank,
		LedgerValue: ledger,
		Difference:  &difference,
	}
}

// NewDescriptionDiscrepancy builds a description discrepancy carrying the
// similarity score that fell below the matching threshold.
func NewDescriptionDiscrepancy(bank, ledger string, similarity int) Discrepancy {
	return Discrepancy{
		Type:        DiscrepancyDescription,
		BankValue:   bank,
		LedgerValue: ledger,
		Similarity:  &similarity,
	}
}

// MatchRecord is produced for every pairing that carries at least one
// discrepancy. It is surfaced separately from the main transaction list so
// review cases can be listed on their own.
type MatchRecord struct {
	MatchID           string
	BankTransaction   *Transaction
	LedgerTransaction *Transaction
	Discrepancies     []Discrepancy
	MatchScore        int
}

// Package dto defines the JSON shapes the API exposes. Transactions are
// flattened: canonical fields and the original source columns live side by
// side in one object, matching what the reconciliation dashboard renders.
package dto

import (
	"github.com/clearline/recon-backend/internal/application/service"
	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// ReconcileResponse is the envelope for POST /reconcile.
type ReconcileResponse struct {
	Success      bool                  `json:"success"`
	Transactions []TransactionResponse `json:"transactions"`
	Mismatches   []MatchRecordResponse `json:"mismatches"`
}

// TransactionResponse is a flattened transaction: every original column
// under its original name plus the canonical fields. Absent values are
// explicit nulls, never fabricated defaults.
type TransactionResponse map[string]any

// MatchRecordResponse is one needs-review pairing.
type MatchRecordResponse struct {
	MatchID           string                    `json:"match_id"`
	BankTransaction   TransactionResponse       `json:"bank_transaction"`
	LedgerTransaction TransactionResponse       `json:"ledger_transaction"`
	Discrepancies     []transaction.Discrepancy `json:"discrepancies"`
	MatchScore        int                       `json:"match_score"`
}

// NewReconcileResponse converts a service result into the wire envelope.
func NewReconcileResponse(result *service.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{
		Success:      true,
		Transactions: make([]TransactionResponse, 0, len(result.Transactions)),
		Mismatches:   make([]MatchRecordResponse, 0, len(result.Mismatches)),
	}

	for _, tx := range result.Transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(tx))
	}
	for _, mm := range result.Mismatches {
		resp.Mismatches = append(resp.Mismatches, MatchRecordResponse{
			MatchID:           mm.MatchID,
			BankTransaction:   toTransactionResponse(mm.BankTransaction),
			LedgerTransaction: toTransactionResponse(mm.LedgerTransaction),
			Discrepancies:     mm.Discrepancies,
			MatchScore:        mm.MatchScore,
		})
	}

	return resp
}

func toTransactionResponse(tx *transaction.Transaction) TransactionResponse {
	m := make(TransactionResponse, len(tx.Raw.Columns)+8)

	// Original columns first so canonical fields win any name collision.
	for _, col := range tx.Raw.Columns {
		m[col] = tx.Raw.Cells[col].Value()
	}

	m["id"] = tx.ID
	m["source"] = tx.Source
	m["status"] = tx.Status
	m["row_index"] = tx.RowIndex

	m["date"] = nullable(tx.Date)
	m["description"] = nullable(tx.Description)
	if tx.Amount != nil {
		m["amount"] = *tx.Amount
	} else {
		m["amount"] = nil
	}

	if tx.MatchID != "" {
		m["matchId"] = tx.MatchID
		m["confidence"] = tx.Confidence
	}

	return m
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

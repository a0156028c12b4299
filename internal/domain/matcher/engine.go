package matcher

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// Config holds matching engine configuration.
type Config struct {
	// Threshold is the minimum similarity score (0-100) for a pairing.
	Threshold int
	// AmountTolerance is the absolute tolerance when comparing matched
	// amounts. Differences at or below it are not discrepancies.
	AmountTolerance float64
}

// DefaultConfig returns the standard matching configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:       80,
		AmountTolerance: 0.01,
	}
}

// Result is the output of one matching pass.
type Result struct {
	// Transactions is every input transaction: each matched pair
	// contributes its two entries first, followed by all transactions that
	// stayed unmatched, bank side then ledger side, in source order.
	Transactions []*transaction.Transaction
	// Mismatches holds one record per pairing that carried discrepancies.
	Mismatches []transaction.MatchRecord
}

// Engine pairs transactions from two sources.
type Engine struct {
	config Config
	logger *slog.Logger
}

// New creates a matching engine.
func New(config Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{config: config, logger: logger}
}

// Match pairs bank transactions against ledger transactions.
//
// Bank transactions are visited in source order. For each one the engine
// scores every still-available ledger fingerprint, keeps the single best
// score at or above the threshold (ties fall to the first-seen ledger
// transaction) and consumes the winner so no later bank transaction can
// claim it. Matched transactions are mutated in place: status, match id and
// confidence only.
func (e *Engine) Match(bank, ledger []*transaction.Transaction) Result {
	bankPrints := fingerprints(bank)
	ledgerPrints := fingerprints(ledger)

	// Available ledger fingerprints are the engine's only mutable state;
	// consuming one zeroes it out for the rest of the scan.
	matched := make([]*transaction.Transaction, 0)
	mismatches := make([]transaction.MatchRecord, 0)

	for i, bankTx := range bank {
		if strings.TrimSpace(bankPrints[i]) == "" {
			continue
		}

		bestIdx := -1
		bestScore := 0
		for j := range ledger {
			if strings.TrimSpace(ledgerPrints[j]) == "" {
				continue
			}
			score := TokenSortRatio(bankPrints[i], ledgerPrints[j])
			if score < e.config.Threshold {
				continue
			}
			if score > bestScore {
				bestIdx = j
				bestScore = score
			}
		}

		if bestIdx < 0 {
			continue
		}

		ledgerTx := ledger[bestIdx]
		ledgerPrints[bestIdx] = ""

		matchID := "match-" + uuid.NewString()
		discrepancies := e.checkDiscrepancies(bankTx, ledgerTx)

		status := transaction.StatusMatched
		if len(discrepancies) > 0 {
			status = transaction.StatusReview
			mismatches = append(mismatches, transaction.MatchRecord{
				MatchID:           matchID,
				BankTransaction:   bankTx,
				LedgerTransaction: ledgerTx,
				Discrepancies:     discrepancies,
				MatchScore:        bestScore,
			})
		}

		for _, tx := range [...]*transaction.Transaction{bankTx, ledgerTx} {
			tx.Status = status
			tx.MatchID = matchID
			tx.Confidence = bestScore
		}
		matched = append(matched, bankTx, ledgerTx)

		e.logger.Debug("paired transactions",
			"bank_id", bankTx.ID,
			"ledger_id", ledgerTx.ID,
			"score", bestScore,
			"status", status,
		)
	}

	out := make([]*transaction.Transaction, 0, len(bank)+len(ledger))
	out = append(out, matched...)
	for _, tx := range bank {
		if tx.Status == transaction.StatusUnmatched {
			out = append(out, tx)
		}
	}
	for _, tx := range ledger {
		if tx.Status == transaction.StatusUnmatched {
			out = append(out, tx)
		}
	}

	e.logger.Info("matching complete",
		"pairs", len(matched)/2,
		"review", len(mismatches),
		"unmatched", len(out)-len(matched),
	)

	return Result{Transactions: out, Mismatches: mismatches}
}

// checkDiscrepancies runs the amount and description checks for a chosen
// pair. A side with an absent amount or description simply skips that check;
// absence never manufactures a discrepancy.
func (e *Engine) checkDiscrepancies(bankTx, ledgerTx *transaction.Transaction) []transaction.Discrepancy {
	var discrepancies []transaction.Discrepancy

	if bankTx.Amount != nil && ledgerTx.Amount != nil {
		bankAmt := decimal.NewFromFloat(*bankTx.Amount)
		ledgerAmt := decimal.NewFromFloat(*ledgerTx.Amount)
		tolerance := decimal.NewFromFloat(e.config.AmountTolerance)

		diff := bankAmt.Sub(ledgerAmt)
		if diff.Abs().GreaterThan(tolerance) {
			difference, _ := diff.Round(2).Float64()
			discrepancies = append(discrepancies,
				transaction.NewAmountDiscrepancy(*bankTx.Amount, *ledgerTx.Amount, difference))
		}
	}

	if bankTx.Description != "" && ledgerTx.Description != "" {
		score := TokenSortRatio(bankTx.Description, ledgerTx.Description)
		if score < e.config.Threshold {
			discrepancies = append(discrepancies,
				transaction.NewDescriptionDiscrepancy(bankTx.Description, ledgerTx.Description, score))
		}
	}

	return discrepancies
}

func fingerprints(txns []*transaction.Transaction) []string {
	prints := make([]string, len(txns))
	for i, tx := range txns {
		prints[i] = Fingerprint(tx)
	}
	return prints
}

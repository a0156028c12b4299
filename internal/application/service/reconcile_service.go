// Package service orchestrates a full reconciliation pass: normalize both
// datasets, run the matching engine, assemble the combined result.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clearline/recon-backend/internal/domain/matcher"
	"github.com/clearline/recon-backend/internal/domain/normalizer"
	"github.com/clearline/recon-backend/internal/domain/transaction"
	"github.com/clearline/recon-backend/internal/infrastructure/config"
)

// ErrInvalidThreshold is returned when the requested similarity threshold is
// outside the 0-100 range.
var ErrInvalidThreshold = errors.New("fuzzy threshold must be between 0 and 100")

// ReconcileRequest holds the inputs for one reconciliation pass.
type ReconcileRequest struct {
	Bank   []transaction.RawRow
	Ledger []transaction.RawRow

	// Threshold is the similarity threshold (0-100). Negative means "use
	// the configured default".
	Threshold int

	// MaxRows truncates each dataset to its first N rows before processing.
	// Zero means no cap.
	MaxRows int
}

// ReconcileResult is the outcome of one reconciliation pass.
type ReconcileResult struct {
	Transactions []*transaction.Transaction
	Mismatches   []transaction.MatchRecord
}

// ReconcileService runs reconciliation passes. Each call owns its own
// transaction instances; nothing is shared between concurrent requests.
type ReconcileService struct {
	cfg       *config.Config
	logger    *slog.Logger
	processor *normalizer.Processor
}

// NewReconcileService creates a reconcile service.
func NewReconcileService(cfg *config.Config, logger *slog.Logger) *ReconcileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileService{
		cfg:       cfg,
		logger:    logger,
		processor: normalizer.NewProcessor(logger),
	}
}

// Reconcile normalizes the two datasets and matches them against each other.
//
// Dataset-level failures (an empty dataset) abort the whole call with a
// typed error naming the offending source; the caller decides how to surface
// it. Row-level and field-level failures never abort — they degrade to
// absent fields inside the pipeline.
func (s *ReconcileService) Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error) {
	start := time.Now()

	threshold := req.Threshold
	if threshold < 0 {
		threshold = s.cfg.Matching.Threshold
	}
	if threshold > 100 {
		return nil, ErrInvalidThreshold
	}

	bankRows := truncate(req.Bank, req.MaxRows)
	ledgerRows := truncate(req.Ledger, req.MaxRows)
	if req.MaxRows > 0 {
		s.logger.Info("applied row cap",
			"max_rows", req.MaxRows,
			"bank_rows", len(bankRows),
			"ledger_rows", len(ledgerRows),
		)
	}

	processStart := time.Now()
	bankTxns, err := s.processor.Process(bankRows, transaction.SourceBank)
	if err != nil {
		return nil, fmt.Errorf("processing bank dataset: %w", err)
	}

	ledgerTxns, err := s.processor.Process(ledgerRows, transaction.SourceLedger)
	if err != nil {
		return nil, fmt.Errorf("processing ledger dataset: %w", err)
	}
	s.logger.Debug("normalization complete", "duration_ms", time.Since(processStart).Milliseconds())

	matchStart := time.Now()
	engine := matcher.New(matcher.Config{
		Threshold:       threshold,
		AmountTolerance: s.cfg.Matching.AmountTolerance,
	}, s.logger)
	result := engine.Match(bankTxns, ledgerTxns)
	s.logger.Debug("matching complete", "duration_ms", time.Since(matchStart).Milliseconds())

	s.logger.Info("reconciliation complete",
		"bank_rows", len(bankTxns),
		"ledger_rows", len(ledgerTxns),
		"transactions", len(result.Transactions),
		"mismatches", len(result.Mismatches),
		"threshold", threshold,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &ReconcileResult{
		Transactions: result.Transactions,
		Mismatches:   result.Mismatches,
	}, nil
}

func truncate(rows []transaction.RawRow, maxRows int) []transaction.RawRow {
	if maxRows > 0 && len(rows) > maxRows {
		return rows[:maxRows]
	}
	return rows
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline/recon-backend/internal/domain/normalizer"
	"github.com/clearline/recon-backend/internal/domain/transaction"
	"github.com/clearline/recon-backend/internal/infrastructure/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Matching.Threshold = 80
	cfg.Matching.AmountTolerance = 0.01
	return cfg
}

func makeRows(columns []string, values ...[]string) []transaction.RawRow {
	rows := make([]transaction.RawRow, 0, len(values))
	for _, vals := range values {
		row := transaction.NewRawRow(columns)
		for i, v := range vals {
			if v == "" {
				row.Cells[columns[i]] = transaction.EmptyCell()
			} else {
				row.Cells[columns[i]] = transaction.TextCell(v)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func TestReconcile_HappyPath(t *testing.T) {
	svc := NewReconcileService(testConfig(), nil)

	columns := []string{"Date", "Description", "Amount"}
	bank := makeRows(columns,
		[]string{"2024-01-15", "Rent Jan", "-100.00"},
		[]string{"2024-01-16", "Coffee shop", "-4.50"},
	)
	ledger := makeRows(columns,
		[]string{"2024-01-15", "Rent January", "-100.00"},
	)

	result, err := svc.Reconcile(context.Background(), ReconcileRequest{
		Bank:      bank,
		Ledger:    ledger,
		Threshold: -1,
	})
	require.NoError(t, err)

	assert.Len(t, result.Transactions, 3)
	assert.Empty(t, result.Mismatches)

	matched := 0
	for _, tx := range result.Transactions {
		if tx.Status == transaction.StatusMatched {
			matched++
		}
	}
	assert.Equal(t, 2, matched)
}

func TestReconcile_HeterogeneousSchemas(t *testing.T) {
	svc := NewReconcileService(testConfig(), nil)

	// The two sides share no column names: the bank export uses a debit
	// column and a Details field, the ledger a signed Amount and NARRATION.
	bank := makeRows([]string{"Date", "Withdrawal", "Details"},
		[]string{"15-Jan-24", "100.00", "Rent Jan"},
	)
	ledger := makeRows([]string{"DATE", "Amount", "NARRATION"},
		[]string{"2024-01-15", "-100.00", "Rent January"},
	)

	result, err := svc.Reconcile(context.Background(), ReconcileRequest{
		Bank:      bank,
		Ledger:    ledger,
		Threshold: -1,
	})
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	assert.Empty(t, result.Mismatches)

	bankTx, ledgerTx := result.Transactions[0], result.Transactions[1]
	assert.Equal(t, transaction.StatusMatched, bankTx.Status)
	assert.Equal(t, transaction.StatusMatched, ledgerTx.Status)
	assert.Equal(t, bankTx.MatchID, ledgerTx.MatchID)

	require.NotNil(t, bankTx.Amount)
	assert.InDelta(t, -100.00, *bankTx.Amount, 0.001, "debit column yields a negative amount")
	assert.Equal(t, "2024-01-15", bankTx.Date)
	assert.Equal(t, "Rent Jan", bankTx.Description)
}

func TestReconcile_ExplicitThresholdOverridesDefault(t *testing.T) {
	svc := NewReconcileService(testConfig(), nil)

	columns := []string{"Date", "Description", "Amount"}
	bank := makeRows(columns, []string{"2024-01-15", "Rent Jan", "-100.00"})
	ledger := makeRows(columns, []string{"2024-01-15", "Rent January", "-100.00"})

	// At 100 the fuzzy pair from the happy path no longer clears the bar.
	result, err := svc.Reconcile(context.Background(), ReconcileRequest{
		Bank:      bank,
		Ledger:    ledger,
		Threshold: 100,
	})
	require.NoError(t, err)

	for _, tx := range result.Transactions {
		assert.Equal(t, transaction.StatusUnmatched, tx.Status)
	}
}

func TestReconcile_ThresholdAbove100Rejected(t *testing.T) {
	svc := NewReconcileService(testConfig(), nil)

	columns := []string{"Date", "Description", "Amount"}
	rows := makeRows(columns, []string{"2024-01-15", "Rent", "-100.00"})

	_, err := svc.Reconcile(context.Background(), ReconcileRequest{
		Bank:      rows,
		Ledger:    rows,
		Threshold: 101,
	})
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestReconcile_EmptyDatasetRejected(t *testing.T) {
	svc := NewReconcileService(testConfig(), nil)

	columns := []string{"Date", "Description", "Amount"}
	ledger := makeRows(columns, []string{"2024-01-15", "Rent", "-100.00"})

	_, err := svc.Reconcile(context.Background(), ReconcileRequest{
		Bank:      nil,
		Ledger:    ledger,
		Threshold: -1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, normalizer.ErrEmptyDataset)
	assert.Contains(t, err.Error(), "bank")
}

func TestReconcile_MaxRowsTruncatesBothDatasets(t *testing.T) {
	svc := NewReconcileService(testConfig(), nil)

	columns := []string{"Date", "Description", "Amount"}
	bank := makeRows(columns,
		[]string{"2024-01-15", "Rent", "-100.00"},
		[]string{"2024-01-16", "Coffee", "-4.50"},
		[]string{"2024-01-17", "Fuel", "-30.00"},
	)
	ledger := makeRows(columns,
		[]string{"2024-01-20", "Insurance", "-75.00"},
		[]string{"2024-01-21", "Internet", "-60.00"},
	)

	result, err := svc.Reconcile(context.Background(), ReconcileRequest{
		Bank:      bank,
		Ledger:    ledger,
		Threshold: -1,
		MaxRows:   1,
	})
	require.NoError(t, err)

	// One row survives per side; nothing pairs.
	assert.Len(t, result.Transactions, 2)
}

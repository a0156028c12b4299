package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

func TestSelectDescription_ExactColumnPriority(t *testing.T) {
	row := makeRow(
		[]string{"Date", "NARRATION", "Details"},
		map[string]transaction.Cell{
			"NARRATION": transaction.TextCell("Salary credit"),
			"Details":   transaction.TextCell("should not win"),
		},
	)

	assert.Equal(t, "Salary credit", SelectDescription(row))
}

func TestSelectDescription_SkipsEmptyValues(t *testing.T) {
	row := makeRow(
		[]string{"DESCRIPTION", "PARTICULARS"},
		map[string]transaction.Cell{
			"DESCRIPTION": transaction.TextCell("   "),
			"PARTICULARS": transaction.TextCell("Invoice 42"),
		},
	)

	assert.Equal(t, "Invoice 42", SelectDescription(row))
}

func TestSelectDescription_ChequeFallback(t *testing.T) {
	row := makeRow(
		[]string{"Date", "CHQ.NO."},
		map[string]transaction.Cell{
			"CHQ.NO.": transaction.NumberCell(532),
		},
	)

	assert.Equal(t, "Check #532", SelectDescription(row))
}

func TestSelectDescription_KeywordScan(t *testing.T) {
	// "txn_notes" is not on the exact allow-list but matches the "note"
	// keyword in the case-insensitive scan.
	row := makeRow(
		[]string{"Date", "txn_notes"},
		map[string]transaction.Cell{
			"txn_notes": transaction.TextCell("ATM withdrawal"),
		},
	)

	assert.Equal(t, "ATM withdrawal", SelectDescription(row))
}

func TestSelectDescription_NoMatchIsAbsent(t *testing.T) {
	row := makeRow(
		[]string{"Date", "Amount"},
		map[string]transaction.Cell{
			"Amount": transaction.NumberCell(10),
		},
	)

	assert.Equal(t, "", SelectDescription(row))
}

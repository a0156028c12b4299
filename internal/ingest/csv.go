package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// ReadCSV parses a CSV stream into raw rows. The first record is the header.
func ReadCSV(r io.Reader) ([]transaction.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	return rowsFromRecords(records)
}

package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// ReadXLSX parses the first sheet of an Excel workbook into raw rows. The
// first row is the header.
func ReadXLSX(r io.Reader) ([]transaction.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyFile
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return rowsFromRecords(records)
}

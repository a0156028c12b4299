package normalizer

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/clearline/recon-backend/internal/domain/transaction"
)

// ErrEmptyDataset is returned when a dataset has no data rows. Dataset-level
// failures are fatal for that dataset: no partial result is produced.
var ErrEmptyDataset = errors.New("dataset contains no rows")

// Processor applies the normalization pipeline across a whole dataset.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates a dataset processor.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// Process turns an ordered dataset into canonical transactions, one per row
// in original order, each stamped with a "<source>-<uuid>" id and unmatched
// status.
//
// Row-level extraction failures never abort the dataset: the affected
// canonical fields stay absent and the row is still emitted with its raw
// columns intact.
func (p *Processor) Process(rows []transaction.RawRow, source string) ([]*transaction.Transaction, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	cls := ClassifyColumns(rows[0].Columns)
	p.logger.Debug("classified amount columns",
		"source", source,
		"debit", cls.Debit,
		"credit", cls.Credit,
		"general", cls.General,
	)

	txns := make([]*transaction.Transaction, 0, len(rows))
	for i, row := range rows {
		tx := &transaction.Transaction{
			ID:       source + "-" + uuid.NewString(),
			Source:   source,
			Status:   transaction.StatusUnmatched,
			RowIndex: i,
			Raw:      row,
		}
		p.normalize(tx, row, cls)

		if tx.Date == "" {
			p.logger.Warn("no parseable date for row", "source", source, "row", i)
		}
		if tx.Amount == nil {
			p.logger.Warn("no parseable amount for row", "source", source, "row", i)
		}

		txns = append(txns, tx)
	}

	p.logger.Info("processed dataset", "source", source, "rows", len(txns))
	return txns, nil
}

// normalize fills the canonical fields on tx. A panic while extracting one
// row (an exotic cell value, a malformed column) is contained here: the row
// keeps whatever fields were already extracted plus its raw passthrough.
func (p *Processor) normalize(tx *transaction.Transaction, row transaction.RawRow, cls ColumnClassification) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warn("row normalization failed, emitting raw fields only",
				"source", tx.Source, "row", tx.RowIndex, "cause", r)
		}
	}()

	tx.Date = rowDate(row)
	tx.Description = SelectDescription(row)
	tx.Amount = rowAmount(row, cls)
}

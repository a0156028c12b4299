package transaction

import "strconv"

// CellKind discriminates the three shapes a raw cell can take after ingest.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is one raw cell value as it appeared in the source file, type-coerced
// once at ingest time: empty/absent cells become CellEmpty, numeric-looking
// values become CellNumber, everything else stays text.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// EmptyCell returns an absent cell.
func EmptyCell() Cell { return Cell{Kind: CellEmpty} }

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// IsEmpty reports whether the cell is absent.
func (c Cell) IsEmpty() bool { return c.Kind == CellEmpty }

// String returns the best-effort textual form of the cell. Empty cells
// render as "".
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Value returns the cell as a JSON-friendly value: nil, string or float64.
func (c Cell) Value() any {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return c.Number
	default:
		return nil
	}
}

// RawRow is an ordered mapping from column name to raw cell value, one per
// source row. Column order matters: the description selector scans columns
// in source order when falling back to keyword matching.
type RawRow struct {
	Columns []string
	Cells   map[string]Cell
}

// NewRawRow returns a row over the given columns with all cells absent.
func NewRawRow(columns []string) RawRow {
	return RawRow{
		Columns: columns,
		Cells:   make(map[string]Cell, len(columns)),
	}
}

// Cell returns the value for a column and whether the column exists in the
// row at all. A present column may still hold an empty cell.
func (r RawRow) Cell(name string) (Cell, bool) {
	c, ok := r.Cells[name]
	return c, ok
}

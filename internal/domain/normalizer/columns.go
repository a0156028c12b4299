// Package normalizer turns heterogeneous tabular rows into canonical
// transactions without a fixed schema.
//
// Source files disagree on column names, date formats and amount encodings,
// so the pipeline works heuristically: amount columns are discovered by
// keyword, dates are tried against a list of known formats, and descriptions
// are picked from a priority list of likely columns. Whenever nothing usable
// is found the canonical field is left absent rather than fabricated.
package normalizer

import "strings"

// ColumnClassification partitions a dataset's amount-bearing columns.
// A column appears in at most one set; columns matching no rule are not
// amount columns at all.
type ColumnClassification struct {
	Debit   []string
	Credit  []string
	General []string
}

// amountRules is the ordered rule table for amount column discovery.
// Evaluation order matters: a column matching both a debit and a general
// keyword (e.g. "Withdrawal Amount") is classified debit. New bank formats
// are supported by extending the keyword lists, not by adding code.
var amountRules = []struct {
	category string
	keywords []string
}{
	{"debit", []string{"withdrawal", "debit", "dr", "dr.", "with"}},
	{"credit", []string{"deposit", "credit", "cr", "cr.", "dep"}},
	{"general", []string{"amt", "amount", "sum", "val", "value"}},
}

// ClassifyColumns tags each column name as debit, credit or general by
// substring keyword match. The classification is computed once per dataset,
// never per row.
func ClassifyColumns(columns []string) ColumnClassification {
	var cls ColumnClassification

	for _, col := range columns {
		lower := strings.ToLower(col)

		for _, rule := range amountRules {
			if !matchesAny(lower, rule.keywords) {
				continue
			}
			switch rule.category {
			case "debit":
				cls.Debit = append(cls.Debit, col)
			case "credit":
				cls.Credit = append(cls.Credit, col)
			case "general":
				cls.General = append(cls.General, col)
			}
			break
		}
	}

	return cls
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

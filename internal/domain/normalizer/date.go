package normalizer

import (
	"strings"
	"time"
)

// isoDate is the canonical output format for all parsed dates.
const isoDate = "2006-01-02"

// dateLayouts are tried in order; the first one that parses wins. The
// day-first layouts come before month-first, so "05/01/2024" reads as
// January 5th, not May 1st.
var dateLayouts = []string{
	"2-Jan-06",
	"2-1-2006",
	"2/1/2006",
	"2006-1-2",
	"1/2/2006",
	"2-Jan-2006",
}

// ParseDate normalizes a raw date string to YYYY-MM-DD. The second return
// value is false when no known layout matches — an unparseable date stays
// absent rather than defaulting to today, which would corrupt both matching
// and the audit trail.
func ParseDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(isoDate), true
		}
	}
	return "", false
}

package matcher

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ratioOptions weights substitutions as a delete plus an insert, so the
// ratio below reduces to shared-character overlap over combined length.
var ratioOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 2,
	Matches: levenshtein.IdenticalRunes,
}

// TokenSortRatio scores the approximate equality of two strings on a 0-100
// scale, insensitive to word order: both inputs are lower-cased, stripped to
// alphanumeric tokens and token-sorted before a Levenshtein ratio is taken.
// "Rent Jan" vs "Jan Rent" scores 100.
func TokenSortRatio(a, b string) int {
	na := tokenSort(a)
	nb := tokenSort(b)

	if na == nb {
		return 100
	}
	if na == "" || nb == "" {
		return 0
	}

	lensum := len([]rune(na)) + len([]rune(nb))
	dist := levenshtein.DistanceForStrings([]rune(na), []rune(nb), ratioOptions)
	return int(math.Round(float64(lensum-dist) / float64(lensum) * 100))
}

// tokenSort normalizes a string for comparison: lower-case, non-alphanumeric
// runes become separators, tokens sorted and re-joined with single spaces.
func tokenSort(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

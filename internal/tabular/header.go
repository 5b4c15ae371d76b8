package tabular

import "unicode"

// Header scoring weights. A positive cumulative score over the first two
// rows means the first row is a header.
const (
	headerTypeShiftWeight = 2 // text above a number
	headerLongerWeight    = 1 // header cell longer than the data cell
	headerLetterWeight    = 1 // letters above a letterless cell
	headerMinCellLength   = 3 // the longer-cell signal needs some length to mean anything
)

// DetectHeader decides whether the first row holds column names rather than
// data by comparing it cell-by-cell against the second row. Fewer than two
// rows can never have a header.
func DetectHeader(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}
	first, second := rows[0], rows[1]
	n := len(first)
	if len(second) < n {
		n = len(second)
	}

	score := 0
	for i := 0; i < n; i++ {
		a, b := first[i], second[i]
		if !isNumeric(a) && isNumeric(b) {
			score += headerTypeShiftWeight
		}
		if len(a) > len(b) && len(a) > headerMinCellLength {
			score += headerLongerWeight
		}
		if hasLetter(a) && !hasLetter(b) {
			score += headerLetterWeight
		}
	}
	return score > 0
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

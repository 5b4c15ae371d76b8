package tabular

// delimiterCandidates is the fixed preference order tried during detection.
// Earlier candidates win score ties.
var delimiterCandidates = []rune{',', ';', '\t', '|', ':'}

// delimiterSampleLines bounds how many lines detection looks at.
const delimiterSampleLines = 10

// DetectDelimiter scores each candidate over the first lines of input and
// returns the best. A candidate scores by how consistently it splits rows
// (low variance in field count) times how plausible the field count is,
// times the mean field count itself. With no usable candidate the first
// preference (comma) is returned.
func DetectDelimiter(lines []string) rune {
	sample := lines
	if len(sample) > delimiterSampleLines {
		sample = sample[:delimiterSampleLines]
	}

	best := delimiterCandidates[0]
	bestScore := 0.0
	for _, cand := range delimiterCandidates {
		if score := delimiterScore(sample, cand); score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}

func delimiterScore(sample []string, delim rune) float64 {
	if len(sample) == 0 {
		return 0
	}

	counts := make([]float64, len(sample))
	var sum float64
	for i, line := range sample {
		counts[i] = float64(len(SplitFields(line, delim)))
		sum += counts[i]
	}
	mean := sum / float64(len(counts))

	var variance float64
	for _, c := range counts {
		d := c - mean
		variance += d * d
	}
	variance /= float64(len(counts))

	consistency := 0.0
	if mean > 1 {
		consistency = 1 / (1 + variance)
	}
	reasonableness := 0.5
	if mean >= 2 && mean <= 50 {
		reasonableness = 1.0
	}
	return consistency * reasonableness * mean
}

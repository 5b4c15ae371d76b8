package tabular

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// typeConfidence is the minimum hit ratio a pattern needs to determine a
// column's type on its own.
const typeConfidence = 0.80

// maxTypeSamples bounds how many non-empty values inference looks at per
// column.
const maxTypeSamples = 100

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	urlPattern   = regexp.MustCompile(`^https?://\S+$`)
	phonePattern = regexp.MustCompile(`^\+?\(?\d[\d\s().-]{5,18}\d$`)
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([ T]\d{2}:\d{2}(:\d{2})?)?$`),
		regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
		regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`),
		regexp.MustCompile(`^[A-Z][a-z]{2,8} \d{1,2}, \d{4}$`),
	}
)

// patternTests lists the value classifiers in priority order: the first
// pattern to clear typeConfidence names the column type.
var patternTests = []struct {
	name  string
	match func(string) bool
}{
	{"email", func(v string) bool { return emailPattern.MatchString(v) }},
	{"url", func(v string) bool { return urlPattern.MatchString(v) }},
	{"phone", isPhone},
	{"boolean", isBoolean},
	{"number", isNumeric},
	{"date", isDate},
}

// inferType classifies a set of sampled values. A single pattern reaching
// the confidence threshold wins, highest priority first. Otherwise, hits
// spread over more than one pattern mean "mixed", and no hits at all mean
// plain "string".
func inferType(samples []string) string {
	if len(samples) == 0 {
		return "string"
	}

	hits := make([]int, len(patternTests))
	for _, v := range samples {
		for i, test := range patternTests {
			if test.match(v) {
				hits[i]++
			}
		}
	}

	for i, test := range patternTests {
		if float64(hits[i])/float64(len(samples)) >= typeConfidence {
			return test.name
		}
	}

	patternsHit := 0
	for _, h := range hits {
		if h > 0 {
			patternsHit++
		}
	}
	if patternsHit > 1 {
		return "mixed"
	}
	return "string"
}

// profileColumn builds the profile of one column from the data rows. A row
// too short to reach the column index counts as a missing (null) value.
func profileColumn(name string, index int, dataRows [][]string) ColumnProfile {
	col := ColumnProfile{Name: name, Index: index, InferredType: "string"}

	var samples []string
	seen := make(map[string]bool)
	unique := make(map[string]bool)

	for _, row := range dataRows {
		if index >= len(row) || row[index] == "" {
			col.Nullable = true
			continue
		}
		v := row[index]
		unique[v] = true
		if len(samples) < maxTypeSamples {
			samples = append(samples, v)
		}
		if !seen[v] && len(col.SampleValues) < maxSampleValues {
			seen[v] = true
			col.SampleValues = append(col.SampleValues, v)
		}
	}
	col.UniqueValueCount = len(unique)

	if len(samples) == 0 {
		return col
	}

	col.InferredType = inferType(samples)

	col.MinLength = len(samples[0])
	var lengthSum int
	for _, v := range samples {
		n := len(v)
		if n < col.MinLength {
			col.MinLength = n
		}
		if n > col.MaxLength {
			col.MaxLength = n
		}
		lengthSum += n
	}
	col.AvgLength = float64(lengthSum) / float64(len(samples))

	if col.InferredType == "number" {
		col.Numeric = numericStats(samples)
	}
	return col
}

// numericStats aggregates the values that parse as numbers.
func numericStats(samples []string) *NumericStats {
	var values []float64
	for _, v := range samples {
		if f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64); err == nil {
			values = append(values, f)
		}
	}
	if len(values) == 0 {
		return nil
	}

	stats := &NumericStats{Min: values[0], Max: values[0]}
	var sum float64
	for _, f := range values {
		if f < stats.Min {
			stats.Min = f
		}
		if f > stats.Max {
			stats.Max = f
		}
		sum += f
	}
	stats.Avg = sum / float64(len(values))
	stats.Median = median(values)
	return stats
}

// median sorts values ascending and returns the middle element, or the mean
// of the two middle elements for an even count.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func isNumeric(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	return err == nil
}

func isBoolean(v string) bool {
	switch strings.ToLower(v) {
	case "true", "false", "yes", "no", "y", "n":
		return true
	}
	return false
}

// isPhone accepts optional leading +, digits and common separators, with
// 7 to 15 digits overall. Short all-digit values stay numbers.
func isPhone(v string) bool {
	if !phonePattern.MatchString(v) {
		return false
	}
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

func isDate(v string) bool {
	for _, p := range datePatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

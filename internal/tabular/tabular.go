// Package tabular infers the structure of delimiter-separated text:
// which delimiter is in use, whether the first row is a header, and what
// kind of data each column holds. Everything is heuristic and threshold
// based; malformed rows degrade the result but never fail an analysis.
package tabular

import (
	"strconv"
	"strings"
)

// Profile is the result of one structural analysis, built once from the
// full in-memory line list and immutable afterwards.
type Profile struct {
	TotalRowCount int             `json:"total_row_count"`
	DataRowCount  int             `json:"data_row_count"`
	ColumnCount   int             `json:"column_count"`
	Delimiter     string          `json:"delimiter"`
	HasHeader     bool            `json:"has_header"`
	Columns       []ColumnProfile `json:"columns"`
}

// ColumnProfile describes one column of the table.
type ColumnProfile struct {
	Name             string        `json:"name"`
	Index            int           `json:"index"`
	InferredType     string        `json:"inferred_type"`
	Nullable         bool          `json:"nullable"`
	UniqueValueCount int           `json:"unique_value_count"`
	SampleValues     []string      `json:"sample_values,omitempty"` // ≤5, de-duplicated, first-seen order
	MinLength        int           `json:"min_length"`
	MaxLength        int           `json:"max_length"`
	AvgLength        float64       `json:"avg_length"`
	Numeric          *NumericStats `json:"numeric,omitempty"` // only for number columns
}

// NumericStats aggregates the parsed values of a number column.
type NumericStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

// maxSampleValues caps ColumnProfile.SampleValues.
const maxSampleValues = 5

// Analyze profiles delimiter-separated content. It never fails: empty or
// malformed input yields a degraded profile, not an error.
func Analyze(content string) *Profile {
	lines := splitLines(content)
	if len(lines) == 0 {
		return &Profile{Delimiter: string(delimiterCandidates[0])}
	}

	delim := DetectDelimiter(lines)
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = SplitFields(line, delim)
	}

	hasHeader := DetectHeader(rows)
	colCount := modalRowLength(rows)
	names := columnNames(rows, hasHeader, colCount)

	dataRows := rows
	if hasHeader {
		dataRows = rows[1:]
	}

	p := &Profile{
		TotalRowCount: len(rows),
		DataRowCount:  len(dataRows),
		ColumnCount:   colCount,
		Delimiter:     string(delim),
		HasHeader:     hasHeader,
	}
	for i := 0; i < colCount; i++ {
		p.Columns = append(p.Columns, profileColumn(names[i], i, dataRows))
	}
	return p
}

// splitLines returns the non-empty trimmed lines of content.
func splitLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// modalRowLength returns the most frequent row length; ties keep the
// first-encountered length with that frequency.
func modalRowLength(rows [][]string) int {
	counts := make(map[int]int)
	var order []int
	for _, row := range rows {
		if counts[len(row)] == 0 {
			order = append(order, len(row))
		}
		counts[len(row)]++
	}
	best, bestCount := 0, 0
	for _, length := range order {
		if counts[length] > bestCount {
			best, bestCount = length, counts[length]
		}
	}
	return best
}

// syntheticColumnName names columns with no header: Column_1, Column_2, ...
func syntheticColumnName(index int) string {
	return "Column_" + strconv.Itoa(index+1)
}

// columnNames takes names from the header row when present, truncated or
// padded to the detected column count; otherwise synthesizes Column_{i}.
func columnNames(rows [][]string, hasHeader bool, colCount int) []string {
	names := make([]string, colCount)
	for i := range names {
		names[i] = syntheticColumnName(i)
	}
	if !hasHeader || len(rows) == 0 {
		return names
	}
	header := rows[0]
	for i := 0; i < colCount && i < len(header); i++ {
		if v := strings.TrimSpace(header[i]); v != "" {
			names[i] = v
		}
	}
	return names
}

package tabular

import (
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Nodes projects a profile into outline form: one table root with a child
// per column, typed "{inferred_type}_column". The projection is stateless;
// the profile is not modified.
func (p *Profile) Nodes(opts outline.Options) []*outline.Node {
	title := "Table"
	if opts.FileName != "" {
		title = strings.TrimSuffix(opts.FileName, ".csv")
	}

	elems := []outline.Element{{
		Name:  title,
		Kind:  "table",
		Depth: 1,
		Line:  1,
		Metadata: map[string]any{
			"total_rows":   p.TotalRowCount,
			"data_rows":    p.DataRowCount,
			"column_count": p.ColumnCount,
			"delimiter":    p.Delimiter,
			"has_header":   p.HasHeader,
		},
	}}

	for _, col := range p.Columns {
		meta := map[string]any{
			"index":         col.Index,
			"nullable":      col.Nullable,
			"unique_values": col.UniqueValueCount,
			"min_length":    col.MinLength,
			"max_length":    col.MaxLength,
			"avg_length":    col.AvgLength,
		}
		if len(col.SampleValues) > 0 {
			meta["sample_values"] = col.SampleValues
		}
		if col.Numeric != nil {
			meta["min"] = col.Numeric.Min
			meta["max"] = col.Numeric.Max
			meta["avg"] = col.Numeric.Avg
			meta["median"] = col.Numeric.Median
		}
		elems = append(elems, outline.Element{
			Name:     col.Name,
			Kind:     col.InferredType + "_column",
			Depth:    2,
			Line:     1,
			Metadata: meta,
		})
	}

	return outline.Assemble(elems, opts)
}

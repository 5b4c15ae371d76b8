package tabular

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestAnalyze_NameAgeScenario(t *testing.T) {
	p := Analyze("Name,Age\nAlice,30\nBob,25\n")

	if !p.HasHeader {
		t.Fatal("expected header to be detected")
	}
	if p.Delimiter != "," {
		t.Fatalf("expected delimiter %q, got %q", ",", p.Delimiter)
	}
	if p.TotalRowCount != 3 || p.DataRowCount != 2 {
		t.Fatalf("expected 3 total / 2 data rows, got %d / %d", p.TotalRowCount, p.DataRowCount)
	}
	if p.ColumnCount != 2 {
		t.Fatalf("expected 2 columns, got %d", p.ColumnCount)
	}

	age := p.Columns[1]
	if age.Name != "Age" {
		t.Fatalf("expected column name Age, got %q", age.Name)
	}
	if age.InferredType != "number" {
		t.Fatalf("expected number column, got %q", age.InferredType)
	}
	if age.Numeric == nil {
		t.Fatal("expected numeric stats for number column")
	}
	if age.Numeric.Min != 25 || age.Numeric.Max != 30 {
		t.Errorf("expected min=25 max=30, got min=%v max=%v", age.Numeric.Min, age.Numeric.Max)
	}
	if age.Numeric.Avg != 27.5 {
		t.Errorf("expected avg=27.5, got %v", age.Numeric.Avg)
	}
	if age.Numeric.Median != 27.5 {
		t.Errorf("expected median=27.5, got %v", age.Numeric.Median)
	}

	name := p.Columns[0]
	if name.InferredType != "string" {
		t.Errorf("expected string column, got %q", name.InferredType)
	}
	if name.Numeric != nil {
		t.Errorf("string column must not carry numeric stats")
	}
}

func TestDetectDelimiter_Comma(t *testing.T) {
	lines := splitLines("a,b,c\n1,2,3\n4,5,6")
	if got := DetectDelimiter(lines); got != ',' {
		t.Fatalf("expected ',', got %q", got)
	}
}

func TestDetectDelimiter_Candidates(t *testing.T) {
	tests := []struct {
		content string
		want    rune
	}{
		{"a;b;c\n1;2;3", ';'},
		{"a\tb\tc\n1\t2\t3", '\t'},
		{"a|b|c\n1|2|3", '|'},
		{"key:value\nname:bob\ncity:york", ':'},
	}
	for _, tt := range tests {
		if got := DetectDelimiter(splitLines(tt.content)); got != tt.want {
			t.Errorf("content %q: expected %q, got %q", tt.content, tt.want, got)
		}
	}
}

func TestDetectDelimiter_NoDelimiterFallsBackToComma(t *testing.T) {
	if got := DetectDelimiter([]string{"single", "words", "only"}); got != ',' {
		t.Fatalf("expected comma fallback, got %q", got)
	}
}

func TestDetectHeader(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want bool
	}{
		{"names over numbers", [][]string{{"Name", "Age"}, {"Alice", "30"}}, true},
		{"all numbers", [][]string{{"1", "2"}, {"3", "4"}}, false},
		{"single row", [][]string{{"Name", "Age"}}, false},
		{"longer labels", [][]string{{"Description", "Identifier"}, {"ab", "cd"}}, true},
	}
	for _, tt := range tests {
		if got := DetectHeader(tt.rows); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSplitFields_Quoting(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{`a,b,c`, []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"say ""hi""",x`, []string{`say "hi"`, "x"}},
		{`a,,c`, []string{"a", "", "c"}},
		{`"unterminated,still one field`, []string{"unterminated,still one field"}},
	}
	for _, tt := range tests {
		if got := SplitFields(tt.line, ','); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitFields(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestInferType(t *testing.T) {
	tests := []struct {
		name    string
		samples []string
		want    string
	}{
		{"emails", []string{"a@x.com", "b@y.com", "c@z.com"}, "email"},
		{"urls", []string{"https://a.io", "http://b.io/p", "https://c.io"}, "url"},
		{"phones", []string{"+1 555-867-5309", "(02) 9374 4000", "555-867-5309"}, "phone"},
		{"booleans", []string{"true", "false", "yes", "no"}, "boolean"},
		{"numbers", []string{"1", "2.5", "-3"}, "number"},
		{"dates", []string{"2024-01-15", "2024-02-20", "2024-03-25"}, "date"},
		{"plain strings", []string{"alpha", "beta", "gamma"}, "string"},
		{"mixed signals", []string{"a@x.com", "a@y.com", "42", "17", "99"}, "mixed"},
		{"one pattern below threshold", []string{"a@x.com", "alpha", "beta", "gamma", "delta"}, "string"},
		{"empty", nil, "string"},
	}
	for _, tt := range tests {
		if got := inferType(tt.samples); got != tt.want {
			t.Errorf("%s: inferType(%v) = %q, want %q", tt.name, tt.samples, got, tt.want)
		}
	}
}

func TestInferType_ThresholdIsEighty(t *testing.T) {
	// 4 of 5 emails is exactly 0.80 and must pass.
	samples := []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "word"}
	if got := inferType(samples); got != "email" {
		t.Fatalf("expected email at exactly 80%%, got %q", got)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		values []float64
		want   float64
	}{
		{[]float64{1, 2, 3, 4}, 2.5},
		{[]float64{1, 2, 3}, 2},
		{[]float64{5}, 5},
		{[]float64{4, 1, 3, 2}, 2.5},
	}
	for _, tt := range tests {
		if got := median(tt.values); got != tt.want {
			t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
		}
	}
}

func TestProfileColumn_NullableAndUnique(t *testing.T) {
	rows := [][]string{
		{"a", "x"},
		{"b", ""},
		{"a"}, // short row: second column missing
	}
	first := profileColumn("First", 0, rows)
	if first.Nullable {
		t.Errorf("first column has no blanks, expected nullable=false")
	}
	if first.UniqueValueCount != 2 {
		t.Errorf("expected 2 unique values, got %d", first.UniqueValueCount)
	}

	second := profileColumn("Second", 1, rows)
	if !second.Nullable {
		t.Errorf("expected second column nullable")
	}
	if second.UniqueValueCount != 1 {
		t.Errorf("expected 1 unique value, got %d", second.UniqueValueCount)
	}
}

func TestProfileColumn_SampleValuesDedupedFirstSeen(t *testing.T) {
	rows := [][]string{{"a"}, {"b"}, {"a"}, {"c"}, {"d"}, {"e"}, {"f"}}
	col := profileColumn("C", 0, rows)
	want := []string{"a", "b", "c", "d", "e"}
	if !reflect.DeepEqual(col.SampleValues, want) {
		t.Fatalf("expected samples %v, got %v", want, col.SampleValues)
	}
}

func TestProfileColumn_Lengths(t *testing.T) {
	rows := [][]string{{"ab"}, {"abcd"}, {"abcdef"}}
	col := profileColumn("C", 0, rows)
	if col.MinLength != 2 || col.MaxLength != 6 {
		t.Errorf("expected lengths 2..6, got %d..%d", col.MinLength, col.MaxLength)
	}
	if col.AvgLength != 4 {
		t.Errorf("expected avg length 4, got %v", col.AvgLength)
	}
}

func TestAnalyze_MalformedRowsDegradeOnly(t *testing.T) {
	// Second line has an unbalanced quote; it becomes a short row instead
	// of failing the analysis.
	p := Analyze("a,b,c\n\"broken\n1,2,3\n4,5,6")
	if p.ColumnCount != 3 {
		t.Fatalf("expected modal column count 3, got %d", p.ColumnCount)
	}
	if p.TotalRowCount != 4 {
		t.Fatalf("expected 4 rows, got %d", p.TotalRowCount)
	}
}

func TestAnalyze_NoHeaderSyntheticNames(t *testing.T) {
	p := Analyze("1,2\n3,4\n5,6")
	if p.HasHeader {
		t.Fatal("numbers-only input must not detect a header")
	}
	if p.Columns[0].Name != "Column_1" || p.Columns[1].Name != "Column_2" {
		t.Fatalf("expected synthetic names, got %q %q", p.Columns[0].Name, p.Columns[1].Name)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	p := Analyze("   \n\n  ")
	if p.TotalRowCount != 0 || len(p.Columns) != 0 {
		t.Fatalf("expected empty profile, got %+v", p)
	}
}

func TestModalRowLength_TieKeepsFirstEncountered(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"x"}, {"a", "b", "c"}, {"y"}}
	if got := modalRowLength(rows); got != 3 {
		t.Fatalf("expected first-encountered tied length 3, got %d", got)
	}
}

func TestProfileNodes(t *testing.T) {
	p := Analyze("Name,Age\nAlice,30\nBob,25")
	forest := p.Nodes(outline.Options{FileName: "people.csv"})

	if len(forest) != 1 {
		t.Fatalf("expected single table root, got %d", len(forest))
	}
	root := forest[0]
	if root.Type != "table" || root.Title != "people" {
		t.Fatalf("expected table root titled people, got %s %q", root.Type, root.Title)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 column nodes, got %d", len(root.Children))
	}
	if root.Children[0].Type != "string_column" {
		t.Errorf("expected string_column, got %q", root.Children[0].Type)
	}
	age := root.Children[1]
	if age.Type != "number_column" {
		t.Errorf("expected number_column, got %q", age.Type)
	}
	if age.Metadata["median"] != 27.5 {
		t.Errorf("expected median metadata 27.5, got %v", age.Metadata["median"])
	}
	if !strings.HasPrefix(age.ID, "number_column-age") {
		t.Errorf("unexpected id %q", age.ID)
	}
}

package analyzer

import (
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func TestTextAnalyzer_Paragraphs(t *testing.T) {
	input := "First paragraph line one.\nLine two.\n\nSecond paragraph.\n\n\nThird.\n"
	forest, err := (&TextAnalyzer{}).Analyze([]byte(input), outline.Options{IncludeLineNumbers: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(forest) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(forest))
	}
	first := forest[0]
	if first.Title != "First paragraph line one." || first.Type != "paragraph" {
		t.Fatalf("unexpected first node: %+v", first)
	}
	if first.Line != 1 {
		t.Errorf("expected first paragraph on line 1, got %d", first.Line)
	}
	if first.Metadata["line_count"] != 2 {
		t.Errorf("expected line_count 2, got %v", first.Metadata["line_count"])
	}
	if forest[1].Line != 4 {
		t.Errorf("expected second paragraph on line 4, got %d", forest[1].Line)
	}
	if forest[2].Line != 7 {
		t.Errorf("expected third paragraph on line 7, got %d", forest[2].Line)
	}
}

func TestTextAnalyzer_LongFirstLineTruncated(t *testing.T) {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'a'
	}
	forest, err := (&TextAnalyzer{}).Analyze(long, outline.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(forest[0].Title); got != 80 {
		t.Fatalf("expected 80-char title, got %d", got)
	}
}

func TestTextAnalyzer_Empty(t *testing.T) {
	forest, err := (&TextAnalyzer{}).Analyze([]byte("\n  \n"), outline.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forest != nil {
		t.Fatalf("expected empty forest, got %+v", forest)
	}
}

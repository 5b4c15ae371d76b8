package analyzer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFAnalyzer outlines PDF documents page by page: each page becomes a
// depth-1 node titled by its first line of text. A page whose text cannot
// be extracted is skipped, not fatal.
type PDFAnalyzer struct{}

func (a *PDFAnalyzer) Formats() []string {
	return []string{"pdf"}
}

func (a *PDFAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &MalformedInputError{Format: "pdf", Err: err}
	}

	var elems []outline.Element
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		elems = append(elems, outline.Element{
			Name:  pageTitle(text, i),
			Kind:  "page",
			Depth: 1,
			Metadata: map[string]any{
				"page": i,
			},
		})
	}

	return outline.Assemble(elems, opts), nil
}

// pageTitle uses the first non-empty line of a page, truncated, falling
// back to "Page N" for blank pages.
func pageTitle(text string, pageNum int) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > 80 {
			line = line[:77] + "..."
		}
		return line
	}
	return fmt.Sprintf("Page %d", pageNum)
}

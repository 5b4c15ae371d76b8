package analyzer

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// TextAnalyzer outlines plain text: each blank-line-separated paragraph
// becomes a depth-1 node titled by its first line.
type TextAnalyzer struct{}

func (a *TextAnalyzer) Formats() []string {
	return []string{"txt", "text"}
}

func (a *TextAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var elems []outline.Element
	lineNo := 0
	startLine := 0
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		title := current[0]
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		elems = append(elems, outline.Element{
			Name:  title,
			Kind:  "paragraph",
			Depth: 1,
			Line:  startLine,
			Metadata: map[string]any{
				"line_count": len(current),
			},
		})
		current = nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(current) == 0 {
			startLine = lineNo
		}
		current = append(current, line)
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, &MalformedInputError{Format: "txt", Err: err}
	}

	return outline.Assemble(elems, opts), nil
}

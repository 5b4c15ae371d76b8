package analyzer

import (
	"bytes"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXAnalyzer outlines .docx documents by their heading-styled paragraphs.
type DOCXAnalyzer struct{}

func (a *DOCXAnalyzer) Formats() []string {
	return []string{"docx"}
}

func (a *DOCXAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	doc, err := docx.Parse(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &MalformedInputError{Format: "docx", Err: err}
	}

	var elems []outline.Element
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		level := docxHeadingLevel(para)
		if level == 0 {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		elems = append(elems, outline.Element{
			Name:  text,
			Kind:  outline.KindHeading,
			Depth: level,
		})
	}

	return outline.AssembleProse(elems, opts), nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch style[len("heading"):] {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

package analyzer

import (
	"bytes"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownAnalyzer outlines Markdown by heading structure using goldmark.
// Fenced code blocks are included as content nodes when IncludeComments is
// set; everything else is skipped.
type MarkdownAnalyzer struct{}

func (a *MarkdownAnalyzer) Formats() []string {
	return []string{"md", "markdown"}
}

func (a *MarkdownAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var elems []outline.Element
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(content))
			if title == "" {
				continue
			}
			elems = append(elems, outline.Element{
				Name:  title,
				Kind:  outline.KindHeading,
				Depth: node.Level,
				Line:  blockLine(content, n),
			})
		case *ast.FencedCodeBlock:
			if !opts.IncludeComments {
				continue
			}
			lang := string(node.Language(content))
			if lang == "" {
				lang = "code"
			}
			elems = append(elems, outline.Element{
				Name:  lang,
				Kind:  "code_block",
				Depth: proseContentDepth(elems),
				Line:  blockLine(content, n),
			})
		}
	}

	return outline.AssembleProse(elems, opts), nil
}

// proseContentDepth places content one level below the innermost open
// heading, which is always the most recent heading element.
func proseContentDepth(elems []outline.Element) int {
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i].Kind == outline.KindHeading {
			return elems[i].Depth + 1
		}
	}
	return 1
}

// blockLine converts a block node's first source segment into a 1-based
// line number.
func blockLine(src []byte, n ast.Node) int {
	if n.Lines().Len() == 0 {
		return 0
	}
	seg := n.Lines().At(0)
	if seg.Start > len(src) {
		return 0
	}
	return 1 + bytes.Count(src[:seg.Start], []byte("\n"))
}

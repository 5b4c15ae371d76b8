package analyzer

import (
	"fmt"

	"github.com/dgallion1/outliner/internal/outline"
	"gopkg.in/yaml.v3"
)

// YAMLAnalyzer projects a YAML document directly into an outline, keeping
// document order and source positions from the yaml.v3 node tree.
type YAMLAnalyzer struct{}

func (a *YAMLAnalyzer) Formats() []string {
	return []string{"yaml", "yml"}
}

func (a *YAMLAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, &MalformedInputError{Format: "yaml", Err: err}
	}

	var elems []outline.Element
	if root.Kind == yaml.DocumentNode {
		for _, doc := range root.Content {
			walkYAMLNode(doc, "", 0, &elems)
		}
	}

	return outline.Assemble(elems, opts), nil
}

func walkYAMLNode(n *yaml.Node, name string, depth int, elems *[]outline.Element) {
	if name != "" {
		*elems = append(*elems, outline.Element{
			Name:   name,
			Kind:   yamlKind(n),
			Depth:  depth,
			Line:   n.Line,
			Column: n.Column,
		})
	}

	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			walkYAMLNode(n.Content[i+1], n.Content[i].Value, depth+1, elems)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			walkYAMLNode(c, fmt.Sprintf("[%d]", i), depth+1, elems)
		}
	}
}

func yamlKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "array"
	case yaml.AliasNode:
		return "alias"
	}
	switch n.Tag {
	case "!!int", "!!float":
		return "number"
	case "!!bool":
		return "boolean"
	case "!!null":
		return "null"
	}
	return "string"
}

package analyzer

import (
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/tabular"
)

// TabularAnalyzer profiles delimiter-separated content. Detection runs on
// the content itself, so csv/tsv/psv all go through the same path; the
// discriminator only routes here.
type TabularAnalyzer struct{}

func (a *TabularAnalyzer) Formats() []string {
	return []string{"csv", "tsv", "psv"}
}

func (a *TabularAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	profile := tabular.Analyze(string(content))
	return profile.Nodes(opts), nil
}

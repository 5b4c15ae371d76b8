// Package analyzer dispatches raw content to format-specific analyzers and
// returns a uniform outline forest.
package analyzer

import (
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// Analyzer turns raw content of one format family into an outline forest.
type Analyzer interface {
	Analyze(content []byte, opts outline.Options) ([]*outline.Node, error)
	Formats() []string
}

// Registry maps format discriminators to analyzers. It is built once at
// setup and only read during analysis; Register must not be called while
// analyses are running.
type Registry struct {
	byFormat map[string]Analyzer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byFormat: make(map[string]Analyzer)}
}

// Default returns a registry with every built-in analyzer registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(&TabularAnalyzer{})
	r.Register(&MarkdownAnalyzer{})
	r.Register(&HTMLAnalyzer{})
	r.Register(&TextAnalyzer{})
	r.Register(&JSONAnalyzer{})
	r.Register(&YAMLAnalyzer{})
	r.Register(&SourceAnalyzer{})
	r.Register(&DOCXAnalyzer{})
	r.Register(&PDFAnalyzer{})
	return r
}

// Register adds an analyzer under each of its formats, replacing any
// previous registration for the same discriminator.
func (r *Registry) Register(a Analyzer) {
	for _, f := range a.Formats() {
		r.byFormat[strings.ToLower(f)] = a
	}
}

// formatAware is implemented by analyzers that serve several discriminators
// and need to know which one routed the call.
type formatAware interface {
	AnalyzeFormat(content []byte, format string, opts outline.Options) ([]*outline.Node, error)
}

// Analyze runs the analyzer registered for format over content.
func (r *Registry) Analyze(content []byte, format string, opts outline.Options) ([]*outline.Node, error) {
	a, ok := r.byFormat[strings.ToLower(format)]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}
	if fa, ok := a.(formatAware); ok {
		return fa.AnalyzeFormat(content, strings.ToLower(format), opts)
	}
	return a.Analyze(content, opts)
}

// IsSupported reports whether an analyzer is registered for format.
func (r *Registry) IsSupported(format string) bool {
	_, ok := r.byFormat[strings.ToLower(format)]
	return ok
}

// Formats lists every registered discriminator, sorted.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.byFormat))
	for f := range r.byFormat {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ForFile maps a file name to a format discriminator by extension. Returns
// "" when the name has no extension.
func ForFile(filename string) string {
	dot := strings.LastIndexByte(filename, '.')
	if dot < 0 {
		return ""
	}
	return strings.ToLower(filename[dot+1:])
}

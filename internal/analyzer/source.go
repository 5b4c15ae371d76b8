package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/outline"
)

// SourceAnalyzer outlines source code by scanning declaration lines with
// per-language regular expressions. It is deliberately shallow: a line that
// matches no pattern is simply skipped, so partial or odd code degrades the
// outline instead of failing it.
type SourceAnalyzer struct{}

// declPattern recognizes one kind of declaration. Group 1 is leading
// indentation, group 2 the name, group 3 (optional) the parameter list.
type declPattern struct {
	kind   string
	re     *regexp.Regexp
	params bool
}

// languageSpec bundles the patterns and conventions of one language.
type languageSpec struct {
	patterns    []declPattern
	comment     string // line-comment prefix
	indentWidth int    // spaces per nesting level
	private     func(name string) bool
	reserved    map[string]bool // keywords the looser patterns would mistake for names
}

var goSpec = languageSpec{
	patterns: []declPattern{
		{kind: "method", re: regexp.MustCompile(`^()func\s+\([^)]+\)\s+(\w+)\s*\(([^)]*)`), params: true},
		{kind: "function", re: regexp.MustCompile(`^()func\s+(\w+)\s*\(([^)]*)`), params: true},
		{kind: "struct", re: regexp.MustCompile(`^()type\s+(\w+)\s+struct\b`)},
		{kind: "interface", re: regexp.MustCompile(`^()type\s+(\w+)\s+interface\b`)},
		{kind: "type", re: regexp.MustCompile(`^()type\s+(\w+)\s+\S`)},
	},
	comment:     "//",
	indentWidth: 4,
	private: func(name string) bool {
		return name != "" && name[0] >= 'a' && name[0] <= 'z'
	},
}

var pythonSpec = languageSpec{
	patterns: []declPattern{
		{kind: "class", re: regexp.MustCompile(`^(\s*)class\s+(\w+)`)},
		{kind: "function", re: regexp.MustCompile(`^(\s*)(?:async\s+)?def\s+(\w+)\s*\(([^)]*)`), params: true},
	},
	comment:     "#",
	indentWidth: 4,
	private: func(name string) bool {
		return strings.HasPrefix(name, "_")
	},
}

var jsSpec = languageSpec{
	patterns: []declPattern{
		{kind: "class", re: regexp.MustCompile(`^(\s*)(?:export\s+)?(?:default\s+)?class\s+(\w+)`)},
		{kind: "function", re: regexp.MustCompile(`^(\s*)(?:export\s+)?(?:async\s+)?function\s*\*?\s*(\w+)\s*\(([^)]*)`), params: true},
		{kind: "function", re: regexp.MustCompile(`^(\s*)(?:export\s+)?(?:const|let|var)\s+(\w+)\s*=\s*(?:async\s+)?\(([^)]*)\)?\s*=>`), params: true},
		{kind: "method", re: regexp.MustCompile(`^(\s+)(?:static\s+)?(?:async\s+)?(\w+)\s*\(([^)]*)\)\s*\{`), params: true},
	},
	comment:     "//",
	indentWidth: 2,
	private: func(name string) bool {
		return strings.HasPrefix(name, "_") || strings.HasPrefix(name, "#")
	},
	reserved: map[string]bool{
		"if": true, "for": true, "while": true, "switch": true,
		"return": true, "catch": true,
	},
}

var cppSpec = languageSpec{
	patterns: []declPattern{
		{kind: "namespace", re: regexp.MustCompile(`^(\s*)namespace\s+(\w+)`)},
		{kind: "class", re: regexp.MustCompile(`^(\s*)(?:template\s*<[^>]*>\s*)?class\s+(\w+)`)},
		{kind: "struct", re: regexp.MustCompile(`^(\s*)(?:template\s*<[^>]*>\s*)?struct\s+(\w+)`)},
		{kind: "enum", re: regexp.MustCompile(`^(\s*)enum\s+(?:class\s+)?(\w+)`)},
		{kind: "function", re: regexp.MustCompile(`^(\s*)(?:[\w:<>~&*,]+\s+)*~?(\w+)\s*\(([^)]*)\)\s*(?:const\s*)?[{:;=]`), params: true},
	},
	comment:     "//",
	indentWidth: 4,
	private:     func(string) bool { return false },
	reserved: map[string]bool{
		"if": true, "for": true, "while": true, "switch": true,
		"return": true, "else": true, "do": true, "catch": true, "sizeof": true,
	},
}

var languageSpecs = map[string]*languageSpec{
	"go":         &goSpec,
	"py":         &pythonSpec,
	"python":     &pythonSpec,
	"js":         &jsSpec,
	"javascript": &jsSpec,
	"ts":         &jsSpec,
	"cpp":        &cppSpec,
	"cc":         &cppSpec,
	"c":          &cppSpec,
	"h":          &cppSpec,
	"hpp":        &cppSpec,
}

func (a *SourceAnalyzer) Formats() []string {
	out := make([]string, 0, len(languageSpecs))
	for f := range languageSpecs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Analyze without a language context falls back to the file extension in
// opts.FileName, defaulting to Go. The registry uses AnalyzeFormat instead.
func (a *SourceAnalyzer) Analyze(content []byte, opts outline.Options) ([]*outline.Node, error) {
	lang := ForFile(opts.FileName)
	if _, ok := languageSpecs[lang]; !ok {
		lang = "go"
	}
	return a.AnalyzeFormat(content, lang, opts)
}

// AnalyzeFormat scans content as the named language.
func (a *SourceAnalyzer) AnalyzeFormat(content []byte, format string, opts outline.Options) ([]*outline.Node, error) {
	spec, ok := languageSpecs[strings.ToLower(format)]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}

	var elems []outline.Element
	var pendingComment []string

	for i, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pendingComment = nil
			continue
		}
		if strings.HasPrefix(trimmed, spec.comment) {
			pendingComment = append(pendingComment, strings.TrimSpace(strings.TrimPrefix(trimmed, spec.comment)))
			continue
		}

		el, ok := matchDecl(spec, line)
		if !ok {
			pendingComment = nil
			continue
		}
		if spec.private(el.Name) && !opts.IncludePrivate {
			pendingComment = nil
			continue
		}
		el.Line = i + 1
		if opts.IncludeComments && len(pendingComment) > 0 {
			el.Docstring = strings.Join(pendingComment, " ")
		}
		pendingComment = nil
		elems = append(elems, el)
	}

	return outline.Assemble(elems, opts), nil
}

// matchDecl tries each pattern in order and builds an element from the
// first match. Depth comes from indentation.
func matchDecl(spec *languageSpec, line string) (outline.Element, bool) {
	for _, p := range spec.patterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if spec.reserved[m[2]] {
			continue
		}
		indent := indentUnits(m[1], spec.indentWidth)
		el := outline.Element{
			Name:   m[2],
			Kind:   p.kind,
			Depth:  indent + 1,
			Column: len(m[1]) + 1,
		}
		if p.params && len(m) > 3 {
			el.Parameters = splitParams(m[3])
		}
		if spec.private(el.Name) {
			el.Visibility = "private"
		} else {
			el.Visibility = "public"
		}
		return el, true
	}
	return outline.Element{}, false
}

func indentUnits(indent string, width int) int {
	cols := 0
	for _, r := range indent {
		if r == '\t' {
			cols += width
		} else {
			cols++
		}
	}
	return cols / width
}

func splitParams(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

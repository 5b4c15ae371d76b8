package outline

// Node is one entry in the outline forest.
type Node struct {
	Title    string         `json:"title"`
	Type     string         `json:"type"` // semantic kind, e.g. "heading", "function", "number_column"
	Depth    int            `json:"depth"`
	Line     int            `json:"line,omitempty"`
	Column   int            `json:"column,omitempty"`
	Children []*Node        `json:"children,omitempty"` // nil (never empty) when childless
	Metadata map[string]any `json:"metadata,omitempty"`
	ID       string         `json:"id,omitempty"`
	Anchor   string         `json:"anchor,omitempty"`
}

// Element is a flat, depth-annotated item discovered by an analyzer,
// consumed once by Assemble and then discarded.
type Element struct {
	Name       string
	Kind       string
	Depth      int
	Line       int // 0 if unknown
	Column     int
	Visibility string
	Parameters []string
	Docstring  string
	Metadata   map[string]any
}

// Options configures outline generation. Passed through, never mutated.
type Options struct {
	MaxDepth           int // prune nodes deeper than this (0 = unlimited)
	IncludeLineNumbers bool
	FileName           string // context only, e.g. for titles
	IncludePrivate     bool
	IncludeComments    bool
}

package outline

// Assemble nests a flat, depth-annotated element sequence into a forest.
//
// It keeps a stack of currently open nodes. Each incoming element closes
// every open scope at equal or greater depth, attaches to whatever remains
// on top (or the top level if nothing does), and then opens a scope of its
// own. Every element is pushed, so siblings and deeper items never become
// each other's ancestors, and a pre-order walk of the result reproduces the
// input order. The result is filtered by opts.MaxDepth before returning.
func Assemble(elems []Element, opts Options) []*Node {
	var forest []*Node
	var stack []*Node

	for _, e := range elems {
		n := e.node(opts)

		for len(stack) > 0 && stack[len(stack)-1].Depth >= n.Depth {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			forest = append(forest, n)
		} else {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, n)
		}
		stack = append(stack, n)
	}

	return FilterByDepth(forest, opts.MaxDepth)
}

// KindHeading is the element kind that opens scope under AssembleProse.
const KindHeading = "heading"

// AssembleProse is the header-aware variant of Assemble used for prose-style
// markup. Only heading elements open scope: a heading closes every open
// heading at equal or greater depth and is pushed, exactly as in Assemble.
// Any other element attaches as the last child of the innermost open heading
// (or the top level when none is open) without popping or pushing, so
// content never ends up nested under other content.
func AssembleProse(elems []Element, opts Options) []*Node {
	var forest []*Node
	var stack []*Node

	attach := func(n *Node) {
		if len(stack) == 0 {
			forest = append(forest, n)
			return
		}
		top := stack[len(stack)-1]
		top.Children = append(top.Children, n)
	}

	for _, e := range elems {
		n := e.node(opts)
		if e.Kind != KindHeading {
			attach(n)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].Depth >= n.Depth {
			stack = stack[:len(stack)-1]
		}
		attach(n)
		stack = append(stack, n)
	}

	return FilterByDepth(forest, opts.MaxDepth)
}

// node projects an element into a Node, deriving id and anchor.
func (e Element) node(opts Options) *Node {
	n := &Node{
		Title:    e.Name,
		Type:     e.Kind,
		Depth:    e.Depth,
		Metadata: e.Metadata,
	}
	if opts.IncludeLineNumbers {
		n.Line = e.Line
		n.Column = e.Column
	}
	if e.Visibility != "" || len(e.Parameters) > 0 || e.Docstring != "" {
		if n.Metadata == nil {
			n.Metadata = make(map[string]any)
		}
		if e.Visibility != "" {
			n.Metadata["visibility"] = e.Visibility
		}
		if len(e.Parameters) > 0 {
			n.Metadata["parameters"] = e.Parameters
		}
		if e.Docstring != "" {
			n.Metadata["docstring"] = e.Docstring
		}
	}
	n.ID = NodeID(e.Name, e.Kind, n.Line)
	n.Anchor = Anchor(e.Name)
	return n
}

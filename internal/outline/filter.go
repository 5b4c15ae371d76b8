package outline

// FilterByDepth returns a forest containing only nodes with depth <= maxDepth,
// applied recursively. A maxDepth of 0 or less means no limit and returns the
// input unchanged. A node whose children were all pruned comes back with a nil
// Children field, not an empty slice — callers observe the difference.
func FilterByDepth(forest []*Node, maxDepth int) []*Node {
	if maxDepth <= 0 {
		return forest
	}

	var out []*Node
	for _, n := range forest {
		if n.Depth > maxDepth {
			continue
		}
		kept := *n
		kept.Children = FilterByDepth(n.Children, maxDepth)
		if len(kept.Children) == 0 {
			kept.Children = nil
		}
		out = append(out, &kept)
	}
	return out
}

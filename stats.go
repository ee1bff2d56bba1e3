package treediff

// Stats holds optional counters collected over a Mapper.Execute run
// when the mapper was built WithStats(): computing stats is opt-in,
// not a forced side effect of every diff.
type Stats struct {
	LeftNodes  int // count of nodes in the left tree
	RightNodes int // count of nodes in the right tree

	Mapped   int // nodes matched between left and right (identical or by-section)
	Inserted int // top-level inserted nodes (subtrees, not their descendants)
	Deleted  int // top-level deleted nodes (subtrees, not their descendants)
	Replaced int // whole-subtree replacements recorded at mismatched roots
}

// NodeChange returns the shift in node count between left and right.
func (s Stats) NodeChange() int { return s.RightNodes - s.LeftNodes }

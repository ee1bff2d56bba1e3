package treediff

// Patch applies pattern — a DiffTree used as a find/replace template —
// to source. Every subtree of source structurally equal (DeepCompare)
// to pattern.GetBefore() is substituted with pattern.GetAfter();
// discovery is top-down and leftmost, and traversal continues past a
// substituted subtree rather than re-scanning its replacement. A
// source with no match anywhere is returned unchanged.
func Patch(source Node, pattern *DiffNode) Node {
	before := pattern.GetBefore()
	after := pattern.GetAfter()
	patched, _ := patchNode(source, before, after)
	return patched
}

// patchNode returns the patched subtree and whether any substitution
// happened within it (including at its own root), so ancestors know
// whether they need to rebuild through their Builder at all.
func patchNode(n, before, after Node) (Node, bool) {
	if n.DeepCompare(before) {
		return after, true
	}

	count := n.ChildCount()
	if count == 0 {
		return n, false
	}

	children := make([]Node, count)
	changed := false
	for i := 0; i < count; i++ {
		child, didChange := patchNode(n.Child(i), before, after)
		children[i] = child
		changed = changed || didChange
	}
	if !changed {
		return n, false
	}

	bld := n.Type().CreateBuilder()
	if bld == nil {
		return n, false
	}
	bld.SetFragment(n.Fragment())
	if !bld.SetData(n.Data()) || !bld.SetChildren(children) || !bld.IsValid() {
		return n, false
	}
	return bld.Build(), true
}

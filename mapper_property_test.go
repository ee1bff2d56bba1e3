package treediff

import (
	"testing"

	"pgregory.net/rapid"
)

// genTree draws a random exprNode tree of bounded depth and fanout,
// from a small alphabet of type names so that structural matches
// across two independently-drawn trees are common enough to exercise
// section-based remapping, not just root replacement.
func genTree(maxDepth int) *rapid.Generator[*exprNode] {
	return rapid.Custom(func(t *rapid.T) *exprNode {
		return drawTree(t, maxDepth)
	})
}

func drawTree(t *rapid.T, depthLeft int) *exprNode {
	typeName := rapid.SampledFrom([]string{"A", "B", "C"}).Draw(t, "type")
	if depthLeft <= 0 || rapid.Bool().Draw(t, "leaf") {
		data := rapid.SampledFrom([]string{"0", "1", "2"}).Draw(t, "data")
		return leaf(typeName, data)
	}

	fanout := rapid.IntRange(0, 3).Draw(t, "fanout")
	children := make([]Node, fanout)
	for i := range children {
		children[i] = drawTree(t, depthLeft-1)
	}
	return branch(typeName, children...)
}

// Every node of both trees appears exactly once as a key of its
// side's map.
func TestPropertyMappingIsComplete(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		left := genTree(3).Draw(t, "left")
		right := genTree(3).Draw(t, "right")

		res, _, err := NewMapper().Execute(left, right)
		if err != nil {
			t.Fatal(err)
		}

		l := BuildExtTree(left)
		r := BuildExtTree(right)
		if len(res.LeftToRight) != countNodes(l) {
			t.Fatalf("expected every left node mapped, got %d of %d", len(res.LeftToRight), countNodes(l))
		}
		if len(res.RightToLeft) != countNodes(r) {
			t.Fatalf("expected every right node mapped, got %d of %d", len(res.RightToLeft), countNodes(r))
		}
	})
}

// Every non-nil mapping is reciprocal.
func TestPropertyMappingIsBijective(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		left := genTree(3).Draw(t, "left")
		right := genTree(3).Draw(t, "right")

		res, _, err := NewMapper().Execute(left, right)
		if err != nil {
			t.Fatal(err)
		}
		for l, r := range res.LeftToRight {
			if r == nil {
				continue
			}
			if res.RightToLeft[r] != l {
				t.Fatalf("RightToLeft[%p] == %p, want %p", r, res.RightToLeft[r], l)
			}
		}
		for r, l := range res.RightToLeft {
			if l == nil {
				continue
			}
			if res.LeftToRight[l] != r {
				t.Fatalf("LeftToRight[%p] == %p, want %p", l, res.LeftToRight[l], r)
			}
		}
	})
}

// An unedited DiffTree's before/after projections always deep-equal
// its own prototype, regardless of shape.
func TestPropertyUneditedProjectionRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(4).Draw(t, "tree")
		d := NewDiffNode(tree)
		if !d.GetBefore().DeepCompare(tree) {
			t.Fatal("GetBefore() diverged from an untouched prototype")
		}
		if !d.GetAfter().DeepCompare(tree) {
			t.Fatal("GetAfter() diverged from an untouched prototype")
		}
	})
}

// Mapping a tree against an exact copy of itself must map every node
// to its counterpart with no inserts, deletes, or replacements.
func TestPropertyIdenticalTreesMapCompletely(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tree := genTree(3).Draw(t, "tree")
		copyOfTree := deepCopyExprNode(tree)

		res, _, err := NewMapper().Execute(tree, copyOfTree)
		if err != nil {
			t.Fatal(err)
		}
		if len(res.Inserted) != 0 || len(res.Replaced) != 0 || len(res.Deleted) != 0 {
			t.Fatalf("expected no edits between a tree and its own copy, got %+v", res)
		}
		for _, r := range res.LeftToRight {
			if r == nil {
				t.Fatal("expected every node of an identical pair to be matched")
			}
		}
	})
}

func deepCopyExprNode(n *exprNode) *exprNode {
	children := make([]Node, len(n.children))
	for i, c := range n.children {
		children[i] = deepCopyExprNode(c.(*exprNode))
	}
	return &exprNode{typeName: n.typeName, data: n.data, children: children}
}

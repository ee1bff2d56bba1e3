package treediff

import "fmt"

// MapperConfig holds configuration for a Mapper.
type MapperConfig struct {
	// ComputeStats has Execute also return node/edit counters.
	ComputeStats bool
}

// MapperOption adjusts a MapperConfig. Zero or more can be passed to
// NewMapper.
type MapperOption func(*MapperConfig)

// WithStats has the mapper compute a Stats summary alongside its
// MappingResult.
func WithStats() MapperOption {
	return func(c *MapperConfig) { c.ComputeStats = true }
}

// Mapper computes a structural mapping between two Node trees: the
// top-down, dual-hash algorithm described in doc.go.
type Mapper struct {
	cfg MapperConfig
}

// NewMapper builds a Mapper from zero or more options.
func NewMapper(opts ...MapperOption) *Mapper {
	cfg := MapperConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mapper{cfg: cfg}
}

// InsertedNode describes one node inserted into the right tree with no
// left-tree counterpart. After is the reference sibling this node
// should be positioned after in an eventual DiffTree — nil means "at
// head" — and chains in right-tree order across a purely-inserted run.
type InsertedNode struct {
	Node   *ExtNode
	Parent *ExtNode
	After  *ExtNode
}

// MappingResult is the edit script Mapper.Execute produces.
//
// Invariants: every ExtNode under the left root appears exactly once
// as a key of LeftToRight (mapped to its counterpart, or to nil if
// acknowledged unmatched — deleted, replaced away, or folded into an
// insert on the other side). Symmetrically for RightToLeft. For every
// non-nil LeftToRight[a] == b, RightToLeft[b] == a.
type MappingResult struct {
	LeftToRight map[*ExtNode]*ExtNode
	RightToLeft map[*ExtNode]*ExtNode

	Inserted []InsertedNode
	Replaced map[*ExtNode]*ExtNode // left root -> right root, for wholesale replacements
	Deleted  map[*ExtNode]bool     // left nodes deleted outright (set)
}

func newMappingResult() *MappingResult {
	return &MappingResult{
		LeftToRight: map[*ExtNode]*ExtNode{},
		RightToLeft: map[*ExtNode]*ExtNode{},
		Replaced:    map[*ExtNode]*ExtNode{},
		Deleted:     map[*ExtNode]bool{},
	}
}

// Execute runs the mapper over left and right, returning the edit
// script (and, if WithStats was set, a Stats summary). The only error
// this can return, ErrMapperStuck aside, is ErrNilNode for a nil
// argument — Execute otherwise always produces a result, per spec: a
// root mismatch degrades to "replace the whole tree" rather than
// failing.
func (m *Mapper) Execute(left, right Node) (*MappingResult, *Stats, error) {
	if left == nil || right == nil {
		return nil, nil, ErrNilNode
	}

	l := BuildExtTree(left)
	r := BuildExtTree(right)

	ex := &execution{result: newMappingResult()}
	if m.cfg.ComputeStats {
		ex.stats = &Stats{LeftNodes: countNodes(l), RightNodes: countNodes(r)}
	}

	if err := ex.run(l, r); err != nil {
		return nil, nil, err
	}
	return ex.result, ex.stats, nil
}

// execution carries the mutable state threaded through one mapping
// run: the result being built and the optional stats accumulator.
type execution struct {
	result *MappingResult
	stats  *Stats
}

// run is TopDownMapper.execute: map the two roots, and if they can't
// be mapped at all (not even by local hash), record the wholesale
// replacement and mark both entire subtrees as acknowledged-unmatched.
func (ex *execution) run(l, r *ExtNode) error {
	mapped, err := ex.mapSubtrees(l, r)
	if err != nil {
		return err
	}
	if !mapped {
		ex.result.Replaced[l] = r
		if ex.stats != nil {
			ex.stats.Replaced++
		}
		ex.markUnmatched(l, true)
		ex.markUnmatched(r, false)
	}
	return nil
}

// markUnmatched records n, and every descendant of n, as acknowledged
// unmatched on the given side (nil in LeftToRight/RightToLeft). Used
// both for whole-subtree replacement at a mismatched root and to cover
// the descendants of a deleted or inserted subtree: an Insert or
// Delete action carries its whole subtree as one Node value, so
// descendants never get their own edit-script entries, but they still
// need to satisfy the "every node appears as a key" invariant.
func (ex *execution) markUnmatched(n *ExtNode, isLeft bool) {
	if isLeft {
		ex.result.LeftToRight[n] = nil
	} else {
		ex.result.RightToLeft[n] = nil
	}
	for _, c := range n.children {
		ex.markUnmatched(c, isLeft)
	}
}

// mapSubtrees is TopDownMapper.mapSubtrees: identical absolute hashes
// map the whole subtree in one step; matching local hashes only fall
// through to section-based matching of the children; anything else
// can't be mapped here at all.
func (ex *execution) mapSubtrees(l, r *ExtNode) (bool, error) {
	if l.absoluteHash == r.absoluteHash {
		ex.mapIdentical(l, r)
		return true, nil
	}
	if l.localHash == r.localHash {
		return true, ex.mapBySection(l, r)
	}
	return false, nil
}

// mapIdentical records l<->r and recurses pairwise over their
// children. Child counts are equal by construction: equal absolute
// hashes imply equal structure (collisions aside).
func (ex *execution) mapIdentical(l, r *ExtNode) {
	ex.result.LeftToRight[l] = r
	ex.result.RightToLeft[r] = l
	if ex.stats != nil {
		ex.stats.Mapped++
	}
	for i := range l.children {
		ex.mapIdentical(l.children[i], r.children[i])
	}
}

// mapBySection is TopDownMapper.mapBySection: l and r themselves match
// (by local hash), but their children need realigning. Children are
// tracked as a queue of Sections; each Section is resolved by either
// declaring its one-sided remainder all-inserted or all-deleted, or
// — when both sides are non-empty — matching the single longest
// common run of identical children and splitting around it.
func (ex *execution) mapBySection(l, r *ExtNode) error {
	ex.result.LeftToRight[l] = r
	ex.result.RightToLeft[r] = l
	if ex.stats != nil {
		ex.stats.Mapped++
	}

	up := newUnprocessed(l, r)
	for !up.Done() {
		sec := up.Next()
		switch {
		case sec.Empty():
			up.Resolve()
		case len(sec.Left) == 0:
			ex.insertAll(l, sec.Right)
			up.Resolve()
		case len(sec.Right) == 0:
			ex.deleteAll(sec.Left)
			up.Resolve()
		default:
			pm := NodePairFinder(sec, (*ExtNode).AbsoluteHash)
			if pm.Count == 0 {
				return fmt.Errorf("%w: section of %d/%d children shares no hash", ErrMapperStuck, len(sec.Left), len(sec.Right))
			}
			for i := 0; i < pm.Count; i++ {
				ex.mapIdentical(sec.Left[pm.Left+i], sec.Right[pm.Right+i])
			}
			leading := Section{Left: sec.Left[:pm.Left], Right: sec.Right[:pm.Right]}
			trailing := Section{
				Left:  sec.Left[pm.Left+pm.Count:],
				Right: sec.Right[pm.Right+pm.Count:],
			}
			up.Resolve(leading, trailing)
		}
	}
	return nil
}

// insertAll marks every node of a purely-inserted run as inserted, in
// right-tree order. Each InsertedNode's After anchor is the node's
// preceding right-tree sibling: that sibling's left-tree counterpart
// when it was mapped, the sibling itself when it was inserted too
// (chaining the run), or nil when the node is its parent's first child.
func (ex *execution) insertAll(parent *ExtNode, nodes []*ExtNode) {
	for _, n := range nodes {
		after := n.left
		if after != nil {
			if counterpart := ex.result.RightToLeft[after]; counterpart != nil {
				after = counterpart
			}
		}
		ex.result.Inserted = append(ex.result.Inserted, InsertedNode{Node: n, Parent: parent, After: after})
		ex.markUnmatched(n, false)
		if ex.stats != nil {
			ex.stats.Inserted++
		}
	}
}

// deleteAll marks every node of a purely-deleted run as deleted, in
// left-tree order.
func (ex *execution) deleteAll(nodes []*ExtNode) {
	for _, n := range nodes {
		ex.result.Deleted[n] = true
		ex.markUnmatched(n, true)
		if ex.stats != nil {
			ex.stats.Deleted++
		}
	}
}

// legacyMatch reproduces the behavior of an earlier, simpler mapper
// kept only as a documented historical artifact (see doc.go and
// DESIGN.md): it matches the first left subtree with an equal
// absolute hash to each right subtree, top-down, but never records an
// acknowledged-unmatched entry for the nodes it skips over. It is
// exercised by exactly one comparison test and must never be reached
// from Mapper.Execute.
func legacyMatch(l, r *ExtNode) map[*ExtNode]*ExtNode {
	matches := map[*ExtNode]*ExtNode{}
	var walk func(n *ExtNode) []*ExtNode
	walk = func(n *ExtNode) []*ExtNode {
		all := []*ExtNode{n}
		for _, c := range n.children {
			all = append(all, walk(c)...)
		}
		return all
	}
	rSubtrees := walk(r)
	lSubtrees := walk(l)

	for _, rn := range rSubtrees {
		for _, ln := range lSubtrees {
			if ln.absoluteHash == rn.absoluteHash {
				matches[ln] = rn
				break
			}
		}
	}
	return matches
}

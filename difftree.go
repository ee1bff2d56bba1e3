package treediff

// itemKind tags which case a DiffTreeItem holds. The set is closed and
// fixed by the algorithm; every consumer switches over it rather than
// extending it.
type itemKind uint8

const (
	itemDiffNode itemKind = iota
	itemInsert
	itemDelete
	itemReplace
)

// DiffTreeItem is a tagged variant over a parent's child slot in a
// difference tree: the recursively-diffed original child (the common
// case, DiffNode), an inserted node, the deletion of an original
// child, or a replacement of one original child by a new node.
type DiffTreeItem struct {
	kind itemKind

	diffNode *DiffNode // itemDiffNode

	insertNode  Node // itemInsert
	insertAfter Node // itemInsert; nil means "at head"

	deleteNode Node // itemDelete

	replaceBefore Node // itemReplace
	replaceAfter  Node // itemReplace
}

// DiffNode reports this item's DiffNode, or nil if this item isn't the
// DiffNode case.
func (it DiffTreeItem) DiffNode() *DiffNode { return it.diffNode }

// IsInsert reports the itemInsert case and returns its inserted node
// and After anchor.
func (it DiffTreeItem) IsInsert() (node, after Node, ok bool) {
	return it.insertNode, it.insertAfter, it.kind == itemInsert
}

// IsDelete reports the itemDelete case and returns the deleted node.
func (it DiffTreeItem) IsDelete() (node Node, ok bool) {
	return it.deleteNode, it.kind == itemDelete
}

// IsReplace reports the itemReplace case and returns both images.
func (it DiffTreeItem) IsReplace() (before, after Node, ok bool) {
	return it.replaceBefore, it.replaceAfter, it.kind == itemReplace
}

// projSide selects which of the two projections (GetBefore/GetAfter) a
// recursive walk is building.
type projSide uint8

const (
	sideBefore projSide = iota
	sideAfter
)

type handle int

const noHandle handle = -1

// diffNodeData is one arena slot: a DiffNode's actual state. DiffNode
// itself is a thin, copyable façade (tree + handle) over a slot, so
// the parent link below is a relation, not an ownership edge — handles
// stay valid for the arena's lifetime regardless of how many DiffNode
// façades point at them.
type diffNodeData struct {
	prototype Node
	parent    handle
	items     []DiffTreeItem
}

// DiffTree is the arena backing one difference tree: every DiffNode
// handed out by NewDiffNode or reached by walking one is a view into
// this same slice, built once and read-only at the structural level
// from then on (only items change, via the mutators on DiffNode).
type DiffTree struct {
	nodes []*diffNodeData
}

// DiffNode is a difference-tree node: the prototype original Node it
// owns, a parent back-link (relation only), and an ordered list of
// DiffTreeItem — initially one per original child, plus one per
// successful InsertAfter.
type DiffNode struct {
	tree   *DiffTree
	handle handle
}

// NewDiffNode builds a fresh DiffTree by recursively wrapping every
// node of prototype as a DiffNode, with every child initially the
// itemDiffNode case. Returns the root DiffNode.
func NewDiffNode(prototype Node) *DiffNode {
	t := &DiffTree{}
	root := t.alloc(prototype, noHandle)
	return &DiffNode{tree: t, handle: root}
}

func (t *DiffTree) alloc(prototype Node, parent handle) handle {
	idx := handle(len(t.nodes))
	data := &diffNodeData{prototype: prototype, parent: parent}
	t.nodes = append(t.nodes, data)

	count := prototype.ChildCount()
	if count > 0 {
		data.items = make([]DiffTreeItem, count)
		for i := 0; i < count; i++ {
			childHandle := t.alloc(prototype.Child(i), idx)
			data.items[i] = DiffTreeItem{kind: itemDiffNode, diffNode: &DiffNode{tree: t, handle: childHandle}}
		}
	}
	return idx
}

func (d *DiffNode) data() *diffNodeData { return d.tree.nodes[d.handle] }

// Prototype is the original Node this DiffNode mirrors.
func (d *DiffNode) Prototype() Node { return d.data().prototype }

// Parent is nil at the difference tree's root.
func (d *DiffNode) Parent() *DiffNode {
	p := d.data().parent
	if p == noHandle {
		return nil
	}
	return &DiffNode{tree: d.tree, handle: p}
}

// ChildCount and Child mirror the Node interface, with Child returning
// a DiffTreeItem rather than a Node — mutations act on item slots, not
// on nodes directly.
func (d *DiffNode) ChildCount() int          { return len(d.data().items) }
func (d *DiffNode) Child(i int) DiffTreeItem { return d.data().items[i] }

// TypeName, Data, Fragment, and Properties pass through to Prototype,
// letting a DiffNode stand in wherever a caller expects a read-only
// view of the original node's identity.
func (d *DiffNode) TypeName() string       { return d.Prototype().TypeName() }
func (d *DiffNode) Data() string           { return d.Prototype().Data() }
func (d *DiffNode) Fragment() Fragment     { return d.Prototype().Fragment() }
func (d *DiffNode) Properties() Properties { return d.Prototype().Properties() }

// InsertAfter inserts node as a new child. after is matched against
// each child's reference identity — a DiffNode child's Prototype, or
// an Insert child's own inserted node — and the new Insert slot lands
// immediately after the first match; after == nil prepends it.
// Reports whether a slot was found (false, with after non-nil and not
// found, makes no change).
func (d *DiffNode) InsertAfter(node, after Node) bool {
	data := d.data()
	item := DiffTreeItem{kind: itemInsert, insertNode: node, insertAfter: after}

	if after == nil {
		data.items = append([]DiffTreeItem{item}, data.items...)
		return true
	}

	for i, existing := range data.items {
		if !anchorMatches(existing, after) {
			continue
		}
		items := make([]DiffTreeItem, 0, len(data.items)+1)
		items = append(items, data.items[:i+1]...)
		items = append(items, item)
		items = append(items, data.items[i+1:]...)
		data.items = items
		return true
	}
	return false
}

func anchorMatches(item DiffTreeItem, after Node) bool {
	switch item.kind {
	case itemDiffNode:
		return identicalNode(item.diffNode.Prototype(), after)
	case itemInsert:
		return identicalNode(item.insertNode, after)
	default:
		return false
	}
}

// findChildIndex locates the itemDiffNode child whose prototype chain
// (chasing PrototypeBasedNode.Prototype()) contains node.
func (d *DiffNode) findChildIndex(node Node) (int, bool) {
	for i, item := range d.data().items {
		if item.kind == itemDiffNode && protoChainContains(item.diffNode.Prototype(), node) {
			return i, true
		}
	}
	return 0, false
}

// ReplaceAt substitutes the child at index — which must currently be
// the itemDiffNode case — with a Replace of its prototype by
// replacement. Reports false, with no change, if index is out of
// range or the slot isn't a DiffNode.
func (d *DiffNode) ReplaceAt(index int, replacement Node) bool {
	data := d.data()
	if index < 0 || index >= len(data.items) || data.items[index].kind != itemDiffNode {
		return false
	}
	before := data.items[index].diffNode.Prototype()
	data.items[index] = DiffTreeItem{kind: itemReplace, replaceBefore: before, replaceAfter: replacement}
	return true
}

// ReplaceNode is ReplaceAt by node lookup via findChildIndex.
func (d *DiffNode) ReplaceNode(node, replacement Node) bool {
	idx, ok := d.findChildIndex(node)
	if !ok {
		return false
	}
	return d.ReplaceAt(idx, replacement)
}

// DeleteAt substitutes the child at index — which must currently be
// the itemDiffNode case — with a Delete of its prototype. Reports
// false, with no change, if index is out of range or the slot isn't a
// DiffNode.
func (d *DiffNode) DeleteAt(index int) bool {
	data := d.data()
	if index < 0 || index >= len(data.items) || data.items[index].kind != itemDiffNode {
		return false
	}
	data.items[index] = DiffTreeItem{kind: itemDelete, deleteNode: data.items[index].diffNode.Prototype()}
	return true
}

// DeleteNode is DeleteAt by node lookup via findChildIndex.
func (d *DiffNode) DeleteNode(node Node) bool {
	idx, ok := d.findChildIndex(node)
	if !ok {
		return false
	}
	return d.DeleteAt(idx)
}

// GetBefore synthesizes the pre-edit projection: Insert contributes
// nothing, Delete and Replace contribute their "before" image,
// DiffNode recurses.
func (d *DiffNode) GetBefore() Node { return d.project(sideBefore) }

// GetAfter synthesizes the post-edit projection: Delete contributes
// nothing, Insert and Replace contribute their "after" image, DiffNode
// recurses.
func (d *DiffNode) GetAfter() Node { return d.project(sideAfter) }

// project rebuilds a Node for the given side through the prototype's
// own Builder: set fragment, set data, compute the child list per
// item, validate, and emit. Any Builder rejection at any stage
// degrades the whole projection to Dummy — partial trees are never
// emitted.
func (d *DiffNode) project(side projSide) Node {
	proto := d.Prototype()
	bld := proto.Type().CreateBuilder()
	if bld == nil {
		return Dummy
	}

	bld.SetFragment(proto.Fragment())
	if !bld.SetData(proto.Data()) {
		return Dummy
	}

	var children []Node
	for _, item := range d.data().items {
		switch item.kind {
		case itemDiffNode:
			children = append(children, item.diffNode.project(side))
		case itemInsert:
			if side == sideAfter {
				children = append(children, item.insertNode)
			}
		case itemDelete:
			if side == sideBefore {
				children = append(children, item.deleteNode)
			}
		case itemReplace:
			if side == sideBefore {
				children = append(children, item.replaceBefore)
			} else {
				children = append(children, item.replaceAfter)
			}
		}
	}

	if !bld.SetChildren(children) {
		return Dummy
	}
	if !bld.IsValid() {
		return Dummy
	}
	return bld.Build()
}

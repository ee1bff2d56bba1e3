package treediff

// This file is test-only fixture infrastructure: a minimal concrete
// Node/Builder/Factory triple standing in for the DSL-driven node
// catalogs the core treats as an out-of-scope external collaborator.
// Real callers bring their own.

// exprNode is a small syntax-tree node: a type name, an optional data
// payload, and ordered children — enough to build trees using the
// shorthand Type(data) / Type[child, ...] seen in this package's tests.
type exprNode struct {
	typeName string
	data     string
	children []Node
	fragment Fragment
	props    Properties
}

func leaf(typeName, data string) *exprNode {
	return &exprNode{typeName: typeName, data: data}
}

func branch(typeName string, children ...Node) *exprNode {
	return &exprNode{typeName: typeName, children: children}
}

func (n *exprNode) TypeName() string        { return n.typeName }
func (n *exprNode) Data() string            { return n.data }
func (n *exprNode) ChildCount() int         { return len(n.children) }
func (n *exprNode) Child(i int) Node        { return n.children[i] }
func (n *exprNode) Fragment() Fragment      { return n.fragment }
func (n *exprNode) Properties() Properties  { return n.props }
func (n *exprNode) Type() NodeType          { return exprNodeType{typeName: n.typeName} }
func (n *exprNode) DeepCompare(o Node) bool { return deepCompareNodes(n, o) }

type exprNodeType struct{ typeName string }

func (t exprNodeType) Name() string          { return t.typeName }
func (t exprNodeType) CreateBuilder() Builder { return &exprBuilder{typeName: t.typeName, valid: true} }

// exprBuilder is the always-succeeding Builder for exprNode: every
// SetData/SetChildren call accepts its argument. See rejectingNode
// below for a builder that exercises the rejection paths.
type exprBuilder struct {
	typeName string
	fragment Fragment
	data     string
	children []Node
	valid    bool
}

func (b *exprBuilder) SetFragment(f Fragment) { b.fragment = f }
func (b *exprBuilder) SetData(data string) bool {
	b.data = data
	return true
}
func (b *exprBuilder) SetChildren(children []Node) bool {
	b.children = children
	return true
}
func (b *exprBuilder) IsValid() bool { return b.valid }
func (b *exprBuilder) Build() Node {
	return &exprNode{
		typeName: b.typeName,
		data:     b.data,
		children: append([]Node(nil), b.children...),
		fragment: b.fragment,
	}
}

// exprFactory resolves a type name to a fresh Builder, for callers
// building nodes with no existing prototype to copy a type from.
type exprFactory struct{}

func (exprFactory) NewBuilder(typeName string) (Builder, bool) {
	return &exprBuilder{typeName: typeName, valid: true}, true
}

// wrappedNode is a minimal PrototypeBasedNode: it delegates every Node
// method to its embedded prototype except where explicitly overridden.
type wrappedNode struct {
	Node
	prototype Node
}

func wrap(prototype Node) *wrappedNode {
	return &wrappedNode{Node: prototype, prototype: prototype}
}

func (w *wrappedNode) Prototype() Node { return w.prototype }

// rejectingNode is an exprNode whose Type().CreateBuilder() returns a
// Builder that rejects data over maxDataLen bytes and more than
// maxChildren children — used to exercise "construction failure
// degrades to Dummy."
type rejectingNode struct {
	*exprNode
	maxDataLen, maxChildren int
}

func reject(n *exprNode, maxDataLen, maxChildren int) *rejectingNode {
	return &rejectingNode{exprNode: n, maxDataLen: maxDataLen, maxChildren: maxChildren}
}

func (n *rejectingNode) Type() NodeType {
	return rejectingNodeType{typeName: n.typeName, maxDataLen: n.maxDataLen, maxChildren: n.maxChildren}
}

func (n *rejectingNode) DeepCompare(o Node) bool { return deepCompareNodes(n, o) }

type rejectingNodeType struct {
	typeName                string
	maxDataLen, maxChildren int
}

func (t rejectingNodeType) Name() string { return t.typeName }
func (t rejectingNodeType) CreateBuilder() Builder {
	return &rejectingBuilder{typeName: t.typeName, maxDataLen: t.maxDataLen, maxChildren: t.maxChildren, valid: true}
}

type rejectingBuilder struct {
	typeName                string
	maxDataLen, maxChildren int
	fragment                Fragment
	data                    string
	children                []Node
	valid                   bool
}

func (b *rejectingBuilder) SetFragment(f Fragment) { b.fragment = f }
func (b *rejectingBuilder) SetData(data string) bool {
	if len(data) > b.maxDataLen {
		return false
	}
	b.data = data
	return true
}
func (b *rejectingBuilder) SetChildren(children []Node) bool {
	if len(children) > b.maxChildren {
		return false
	}
	b.children = children
	return true
}
func (b *rejectingBuilder) IsValid() bool { return b.valid }
func (b *rejectingBuilder) Build() Node {
	return &exprNode{typeName: b.typeName, data: b.data, children: append([]Node(nil), b.children...), fragment: b.fragment}
}

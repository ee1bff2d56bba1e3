package treediff

// Fragment is an opaque source-location descriptor carried by a Node.
// The core never inspects it — it's forwarded unchanged through
// Builder.SetFragment during projection and patching — and it plays no
// part in hashing or DeepCompare.
type Fragment interface{}

// Properties is a node's string-keyed metadata bag. Like Fragment, it
// rides along but never affects hashing or structural equality.
type Properties map[string]string

// NodeType is a handle to a node's own type, letting callers obtain a
// fresh Builder for constructing siblings of the same kind without
// going through a Factory lookup.
type NodeType interface {
	Name() string
	CreateBuilder() Builder
}

// Node is an immutable, ordered tree. Identity is by reference;
// equality for matching purposes is DeepCompare, a deep structural
// comparison that ignores Fragment (location metadata isn't part of a
// node's structural identity, and hashing depends only on TypeName and
// Data — see localHash).
type Node interface {
	TypeName() string
	// Data is the node's optional payload. A node that carries no data
	// returns "".
	Data() string
	ChildCount() int
	Child(i int) Node
	Fragment() Fragment
	Properties() Properties
	Type() NodeType
	DeepCompare(other Node) bool
}

// PrototypeBasedNode is a Node variant that wraps another Node (its
// prototype) and overrides selected behavior. Chains are allowed:
// a PrototypeBasedNode's prototype may itself be a PrototypeBasedNode.
type PrototypeBasedNode interface {
	Node
	Prototype() Node
}

const dummyTypeName = "\x00dummy"

type dummyNode struct{}

// Dummy is the distinguished "no node / empty tree" value. DiffTree
// projections degrade to Dummy whenever a Builder rejects
// construction, rather than propagating an error — partial trees are
// never emitted. (Patch instead keeps the original subtree when a
// rebuild is rejected.)
var Dummy Node = dummyNode{}

func (dummyNode) TypeName() string         { return dummyTypeName }
func (dummyNode) Data() string             { return "" }
func (dummyNode) ChildCount() int          { return 0 }
func (dummyNode) Child(int) Node           { panic("treediff: dummy node has no children") }
func (dummyNode) Fragment() Fragment       { return nil }
func (dummyNode) Properties() Properties   { return nil }
func (dummyNode) Type() NodeType           { return dummyNodeType{} }
func (d dummyNode) DeepCompare(o Node) bool { return isDummy(o) }

type dummyNodeType struct{}

func (dummyNodeType) Name() string          { return dummyTypeName }
func (dummyNodeType) CreateBuilder() Builder { return nil }

func isDummy(n Node) bool {
	_, ok := n.(dummyNode)
	return ok
}

// deepCompareNodes is the structural-equality relation DeepCompare
// implementations should delegate to: same type name, same data, same
// children recursively. Fragment and Properties are metadata and play
// no part, mirroring the fields localHash draws on.
func deepCompareNodes(a, b Node) bool {
	if isDummy(a) || isDummy(b) {
		return isDummy(a) && isDummy(b)
	}
	if a.TypeName() != b.TypeName() || a.Data() != b.Data() {
		return false
	}
	if a.ChildCount() != b.ChildCount() {
		return false
	}
	for i := 0; i < a.ChildCount(); i++ {
		if !deepCompareNodes(a.Child(i), b.Child(i)) {
			return false
		}
	}
	return true
}

// maxPrototypeChainDepth bounds the walk in protoChainContains. Chains
// are contractually acyclic; this is a defensive backstop, not an
// expected code path.
const maxPrototypeChainDepth = 10000

// protoChainContains reports whether target is n or is reachable by
// chasing n's PrototypeBasedNode.Prototype() chain.
func protoChainContains(n, target Node) bool {
	cur := n
	for depth := 0; depth < maxPrototypeChainDepth; depth++ {
		if identicalNode(cur, target) {
			return true
		}
		pb, ok := cur.(PrototypeBasedNode)
		if !ok {
			return false
		}
		cur = pb.Prototype()
	}
	return false
}

// identicalNode reports reference identity between two Nodes. Concrete
// Node implementations are expected to be backed by pointer types (or
// otherwise comparable types) so == reflects reference identity, per
// Node's "identity is by reference" contract; non-comparable dynamic
// types are treated defensively as never identical rather than
// panicking.
func identicalNode(a, b Node) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

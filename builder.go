package treediff

// Builder is a mutable construction interface paired with a single
// node type. SetData and SetChildren report success via bool: a
// builder may reject invalid data or an invalid arity/type of
// children. Callers must check IsValid before calling Build; Build
// itself is never asked to recover from an invalid state.
type Builder interface {
	SetFragment(f Fragment)
	SetData(data string) bool
	SetChildren(children []Node) bool
	IsValid() bool
	Build() Node
}

// Factory maps a type name to a fresh Builder. It may report "no such
// type" by returning ok=false. The core never calls Factory itself —
// every Builder it needs comes from an existing Node's own Type() —
// Factory exists purely as a collaborator external callers (and tests
// constructing nodes from scratch, with no existing prototype to copy
// a type from) use to build new node values.
type Factory interface {
	NewBuilder(typeName string) (b Builder, ok bool)
}

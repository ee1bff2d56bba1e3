package treediff

import "errors"

// ErrNilNode is returned by Mapper.Execute when either argument is nil.
// Nil trees are a programmer error, not a diffable input.
var ErrNilNode = errors.New("treediff: left and right nodes must not be nil")

// ErrMapperStuck signals an internal inconsistency: NodePairFinder
// returned no common pair for a Section whose two sides are both
// non-empty under parents with equal local hashes. The hash invariants
// in hash.go guarantee this can't happen for honest Node
// implementations; seeing it means TypeName/Data/ChildCount disagree
// with what was hashed, which is a bug in the caller's Node, not a
// normal diff outcome.
var ErrMapperStuck = errors.New("treediff: mapper made no progress on a non-empty section")

// Package treediff computes structural differences between two
// immutable syntax trees and applies them back as patches.
//
// Given a left ("before") and right ("after") tree, Mapper builds a
// node-to-node correspondence between them using a top-down, dual-hash
// algorithm adapted from the one described for XML documents in
// Detecting Changes in XML Documents by Grégory Cobéna & Amélie
// Marian. The original algorithm matches whole subtrees by content
// hash, then propagates matches to ancestors by label; this package
// takes a narrower, purely structural cut through the same idea:
//
//  1. Every node gets two hashes: a local hash of its own type and
//     data, and an absolute hash folding in every descendant's
//     absolute hash. Equal absolute hashes mean identical subtrees.
//  2. The mapper walks left and right top-down. Where absolute hashes
//     agree the whole subtree is matched in one step. Where only the
//     local hash agrees, sibling runs under the two matched parents
//     are aligned by the longest common run of identical children
//     (NodePairFinder), and the unmatched remainder on either side
//     becomes inserts or deletes.
//  3. Where even the local hash disagrees at the root, the two trees
//     are recorded as a wholesale replacement and nothing underneath
//     is visited.
//
// The result is materialized as a DiffTree: a read-only mirror of the
// left tree whose child slots are tagged DiffNode (unchanged),
// Insert, Delete, or Replace. A DiffTree answers GetBefore() and
// GetAfter(), synthesizing each projection on demand through the
// original node's own Builder. Patcher then uses a DiffTree as a
// find/replace pattern: it walks an arbitrary target tree looking for
// subtrees structurally equal to the pattern's "before" image and
// swaps in the "after" image.
//
// This package does not parse, serialize, or otherwise know anything
// about any particular tree shape — callers supply Node, Builder, and
// Factory implementations for whatever concrete syntax their trees
// represent.
//
// Historical note: an earlier version of this mapper (kept for
// reference as legacyMatch in mapper.go) matched the first subtree
// with an equal hash without recording a skip on the unmatched side.
// The current mapper records an entry for every node of both trees,
// a nil mapping (acknowledged unmatched) for each one it can't place
// — see the MappingResult doc comment.
package treediff

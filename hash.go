package treediff

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// NewHash returns a fresh 64-bit hash.Hash used to compute both local
// and absolute node hashes. Wrapped behind a package-level var so
// consumers with an unusually large or adversarial value space can
// swap in a stronger mix; defaults to FNV-1a.
var NewHash = func() hash.Hash {
	return fnv.New64a()
}

// localHash is H(n.TypeName(), n.Data()) — a function of the node's
// own type and data only, never its children or Fragment/Properties.
func localHash(n Node) uint64 {
	h := NewHash()
	h.Write([]byte(n.TypeName()))
	h.Write([]byte{0}) // separator: avoids "ab"+"c" colliding with "a"+"bc"
	h.Write([]byte(n.Data()))
	return sumUint64(h)
}

// absoluteHash is H(local, childHashes...). A childless node's
// absolute hash is its local hash unchanged — folding in zero
// children is the identity, not another round through NewHash — so a
// leaf's absolute and local hashes agree exactly. Two subtrees are
// structurally identical iff their absolute hashes are equal
// (collisions aside — see doc.go and the package-level NewHash var).
func absoluteHash(local uint64, childHashes []uint64) uint64 {
	if len(childHashes) == 0 {
		return local
	}
	h := NewHash()
	writeUint64(h, local)
	for _, c := range childHashes {
		writeUint64(h, c)
	}
	return sumUint64(h)
}

func sumUint64(h hash.Hash) uint64 {
	var buf [8]byte
	sum := h.Sum(nil)
	copy(buf[:], sum) // truncates/zero-pads on the right for a Hash.Size() other than 8
	return binary.BigEndian.Uint64(buf[:])
}

func writeUint64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

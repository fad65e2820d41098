// Package basehash computes the election base hash Q_bar and extended
// base hash Q_hat. spec.md §4.7/§9 flags the source's construction of
// both as a stubbed equality against a constant and directs
// implementers not to guess the normative construction without
// consulting ElectionGuard's specification text; no such text survived
// retrieval for this pack. This package adopts the documented
// ElectionGuard 0.85 convention instead — SHA-256 over the byte-tree
// of the public parameters for the base hash, and SHA-256 over the
// byte-tree of (base hash, n, t, trustee commitments) for the extended
// base hash — built entirely from this module's own byte-tree and
// SHA-256 primitives. This is a recorded design decision (see
// DESIGN.md), not a verified transcription.
package basehash

import (
	"crypto/sha256"

	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/bytetree"
	"github.com/takakv/egverify/group"
)

// Hash is a 32-byte SHA-256 digest.
type Hash [32]byte

// Compute returns Q_bar = SHA256(bytetree(p, q, g)).
func Compute(p, q, g *bigint.BigInt) Hash {
	node := bytetree.NewNode(
		bytetree.NewLeaf(p.Bytes()),
		bytetree.NewLeaf(q.Bytes()),
		bytetree.NewLeaf(g.Bytes()),
	)
	return sha256.Sum256(node.Encode())
}

// ComputeExtended returns Q_hat = SHA256(bytetree(Q_bar, n, t, commitments)),
// where commitments is the flattened n*t matrix of trustee coefficient
// commitment group elements in row-major order.
func ComputeExtended(base Hash, n, t int, commitments []group.Elt) Hash {
	children := make([]bytetree.ByteTree, 0, 3+len(commitments))
	children = append(children,
		bytetree.NewLeaf(base[:]),
		bytetree.NewLeaf(bigint.FromUint64(uint64(n)).Bytes()),
		bytetree.NewLeaf(bigint.FromUint64(uint64(t)).Bytes()),
	)
	for _, c := range commitments {
		children = append(children, c.ByteTree())
	}
	node := bytetree.NewNode(children...)
	return sha256.Sum256(node.Encode())
}

// MatchesDecimal reports whether declared — a decimal-string wire
// value, per spec.md §6 — equals h, read as a big-endian integer.
func MatchesDecimal(declared string, h Hash) (bool, error) {
	v, err := bigint.FromDecimalString(declared)
	if err != nil {
		return false, err
	}
	return bigint.Cmp(v, bigint.FromBytes(h[:])) == 0, nil
}

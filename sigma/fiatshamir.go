package sigma

import (
	"crypto/sha256"

	"github.com/takakv/egverify/bytetree"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
)

// Challenge derives the Fiat–Shamir challenge for a sigma protocol:
// label, instance byte-tree and commitment byte-tree are packed as the
// three children of a node, the node is serialized, hashed with
// SHA-256, and the digest is reduced into Fq. Every verifier in this
// package must use exactly this layering — the order, the framing and
// the reduction — or verification fails against any real record
// (spec.md §4.5).
func Challenge(f *field.Field, label string, instance, commitment group.Elt) field.Elt {
	node := bytetree.NewNode(
		bytetree.NewLeaf([]byte(label)),
		instance.ByteTree(),
		commitment.ByteTree(),
	)
	digest := sha256.Sum256(node.Encode())
	return f.EltFromBytes(digest[:])
}

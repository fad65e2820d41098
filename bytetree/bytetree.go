// Package bytetree implements the canonical recursive byte-tree codec
// used as the hash input for every Fiat–Shamir challenge derivation in
// this verifier (spec.md §4.2).
package bytetree

import (
	"encoding/binary"
	"errors"
)

const (
	tagLeaf = 0x01
	tagNode = 0x00
)

// ErrBadTag is returned when a decoded tag byte is neither 0 nor 1.
var ErrBadTag = errors.New("bytetree: tag byte must be 0 (node) or 1 (leaf)")

// ErrBadLength is returned when a decoded length or child count is
// non-positive... sorry, not positive: per spec.md §4.2, zero-length
// leaves and zero-child nodes are both rejected as malformed.
var ErrBadLength = errors.New("bytetree: length or child count must be positive")

// ErrTruncated is returned when the encoded stream ends before the
// declared length is satisfied.
var ErrTruncated = errors.New("bytetree: truncated stream")

// ByteTree is either a Leaf holding raw bytes or a Node holding an
// ordered sequence of children. The zero value is not a valid tree;
// construct with Leaf or NewNode.
type ByteTree struct {
	isLeaf   bool
	leaf     []byte
	children []ByteTree
}

// NewLeaf wraps b as a leaf byte-tree.
func NewLeaf(b []byte) ByteTree {
	return ByteTree{isLeaf: true, leaf: append([]byte(nil), b...)}
}

// NewNode wraps children as a node byte-tree, in order.
func NewNode(children ...ByteTree) ByteTree {
	return ByteTree{isLeaf: false, children: children}
}

// AsByteTree treats x as a leaf if it is a raw byte slice, or returns it
// unchanged if it is already a ByteTree — the uniform acceptance rule at
// proof boundaries described in spec.md §4.2.
func AsByteTree(x any) ByteTree {
	switch v := x.(type) {
	case ByteTree:
		return v
	case []byte:
		return NewLeaf(v)
	default:
		panic("bytetree: AsByteTree: unsupported operand type")
	}
}

// IsLeaf reports whether t is a leaf.
func (t ByteTree) IsLeaf() bool { return t.isLeaf }

// LeafBytes returns the leaf's payload; it panics if t is not a leaf.
func (t ByteTree) LeafBytes() []byte {
	if !t.isLeaf {
		panic("bytetree: LeafBytes: not a leaf")
	}
	return t.leaf
}

// Children returns a node's children; it panics if t is not a node.
func (t ByteTree) Children() []ByteTree {
	if t.isLeaf {
		panic("bytetree: Children: not a node")
	}
	return t.children
}

// Encode serializes t using the fixed binary framing: one tag byte
// (1 = leaf, 0 = node), then a big-endian u32 length (byte count for a
// leaf, child count for a node), then the leaf bytes or the recursive
// child encodings in order.
func (t ByteTree) Encode() []byte {
	var buf []byte
	if t.isLeaf {
		buf = make([]byte, 5+len(t.leaf))
		buf[0] = tagLeaf
		binary.BigEndian.PutUint32(buf[1:5], uint32(len(t.leaf)))
		copy(buf[5:], t.leaf)
		return buf
	}
	buf = make([]byte, 5)
	buf[0] = tagNode
	binary.BigEndian.PutUint32(buf[1:5], uint32(len(t.children)))
	for _, c := range t.children {
		buf = append(buf, c.Encode()...)
	}
	return buf
}

// Decode parses a ByteTree from the front of b, returning the tree and
// the number of bytes consumed. It never reads past the declared
// length, and fails on a tag other than 0/1, a non-positive length, or
// a truncated stream, per spec.md §4.2/§8.
func Decode(b []byte) (ByteTree, int, error) {
	if len(b) < 5 {
		return ByteTree{}, 0, ErrTruncated
	}
	tag := b[0]
	// The length/child-count field is framed as 4 bytes but interpreted
	// as a signed 32-bit quantity so that a high bit set in the wire
	// encoding is rejected as "non-positive" rather than wrapping into
	// an enormous unsigned count (spec.md §4.2/§8).
	n := int(int32(binary.BigEndian.Uint32(b[1:5])))
	if tag != tagLeaf && tag != tagNode {
		return ByteTree{}, 0, ErrBadTag
	}
	if n <= 0 {
		return ByteTree{}, 0, ErrBadLength
	}
	rest := b[5:]

	if tag == tagLeaf {
		if len(rest) < n {
			return ByteTree{}, 0, ErrTruncated
		}
		return NewLeaf(rest[:n]), 5 + n, nil
	}

	children := make([]ByteTree, 0, n)
	consumed := 0
	for i := 0; i < n; i++ {
		child, used, err := Decode(rest[consumed:])
		if err != nil {
			return ByteTree{}, 0, err
		}
		children = append(children, child)
		consumed += used
	}
	return NewNode(children...), 5 + consumed, nil
}

// DecodeExact decodes b as a single ByteTree and requires that the
// entire buffer be consumed.
func DecodeExact(b []byte) (ByteTree, error) {
	t, used, err := Decode(b)
	if err != nil {
		return ByteTree{}, err
	}
	if used != len(b) {
		return ByteTree{}, ErrTruncated
	}
	return t, nil
}

// Equal reports structural and byte-wise equality of two byte-trees.
func Equal(a, b ByteTree) bool {
	if a.isLeaf != b.isLeaf {
		return false
	}
	if a.isLeaf {
		return string(a.leaf) == string(b.leaf)
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}

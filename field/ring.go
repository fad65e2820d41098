package field

import (
	"errors"

	"github.com/takakv/egverify/bytetree"
)

// errBadShape is returned when a byte-tree does not have the expected
// leaf/node shape for the field or ring element being decoded.
var errBadShape = errors.New("field: byte-tree has the wrong shape for this element")

// RingElt is an element of the product ring Fq^k: an ordered sequence
// of field elements of equal length, with elementwise arithmetic
// (spec.md §4.3).
type RingElt struct {
	Components []Elt
}

// NewRingElt wraps components as a product-ring element. It panics if
// the components are not all from the same field — a programming error
// at every call site, not a recoverable predicate outcome.
func NewRingElt(components ...Elt) RingElt {
	for i := 1; i < len(components); i++ {
		components[0].F.sameField(components[i].F)
	}
	return RingElt{Components: components}
}

// Width returns k, the number of components.
func (r RingElt) Width() int { return len(r.Components) }

// Equal reports elementwise equality.
func (r RingElt) Equal(s RingElt) bool {
	if len(r.Components) != len(s.Components) {
		return false
	}
	for i := range r.Components {
		if !r.Components[i].Equal(s.Components[i]) {
			return false
		}
	}
	return true
}

// AddRing returns the elementwise sum of x and y.
func AddRing(x, y RingElt) RingElt {
	out := make([]Elt, len(x.Components))
	for i := range x.Components {
		out[i] = Add(x.Components[i], y.Components[i])
	}
	return RingElt{Components: out}
}

// MulRing returns the elementwise product of x and y.
func MulRing(x, y RingElt) RingElt {
	out := make([]Elt, len(x.Components))
	for i := range x.Components {
		out[i] = Mul(x.Components[i], y.Components[i])
	}
	return RingElt{Components: out}
}

// ByteTree returns a node byte-tree whose children are the component
// byte-trees, in order.
func (r RingElt) ByteTree() bytetree.ByteTree {
	children := make([]bytetree.ByteTree, len(r.Components))
	for i, c := range r.Components {
		children[i] = c.ByteTree()
	}
	return bytetree.NewNode(children...)
}

// RingEltFromNode decodes a product-ring element of the given field and
// width from a node byte-tree; any other shape (wrong child count,
// a leaf, or a malformed component) is rejected.
func RingEltFromNode(f *Field, width int, t bytetree.ByteTree) (RingElt, error) {
	if t.IsLeaf() || len(t.Children()) != width {
		return RingElt{}, errBadShape
	}
	components := make([]Elt, width)
	for i, child := range t.Children() {
		elt, err := f.EltFromLeaf(child)
		if err != nil {
			return RingElt{}, err
		}
		components[i] = elt
	}
	return RingElt{Components: components}, nil
}

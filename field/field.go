// Package field implements the prime-order field Fq and the product
// ring Fq^k that sit beneath the group layer (spec.md §4.3): scalar
// arithmetic modulo the order of the verifier's group, and the fixed
// byte encoding used to feed field elements into the byte-tree codec.
package field

import (
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/bytetree"
)

// Field is a prime field Fq of order Order.
type Field struct {
	Order   *bigint.BigInt
	byteLen int
}

// NewField builds the field of the given prime order, caching the
// fixed byte length B_F = ceil(bitlen(q)/8).
func NewField(order *bigint.BigInt) *Field {
	return &Field{Order: order, byteLen: (order.BitLen() + 7) / 8}
}

// ByteLen returns B_F, the fixed serialized width of an element.
func (f *Field) ByteLen() int { return f.byteLen }

// Elt is a field element: a value v with 0 <= v < q.
type Elt struct {
	F *Field
	V *bigint.BigInt
}

// NewElt reduces v modulo f.Order and wraps the result.
func (f *Field) NewElt(v *bigint.BigInt) Elt {
	return Elt{F: f, V: bigint.Mod(v, f.Order)}
}

// Zero returns the field's additive identity.
func (f *Field) Zero() Elt { return Elt{F: f, V: bigint.Zero()} }

// One returns the field's multiplicative identity.
func (f *Field) One() Elt { return Elt{F: f, V: bigint.Mod(bigint.One(), f.Order)} }

func (f *Field) sameField(g *Field) {
	if f != g && bigint.Cmp(f.Order, g.Order) != 0 {
		panic("field: cross-field operation")
	}
}

// Add returns x + y mod q.
func Add(x, y Elt) Elt {
	x.F.sameField(y.F)
	return x.F.NewElt(bigint.Add(x.V, y.V))
}

// Sub returns x - y mod q.
func Sub(x, y Elt) Elt {
	x.F.sameField(y.F)
	if bigint.Cmp(x.V, y.V) >= 0 {
		return x.F.NewElt(bigint.Sub(x.V, y.V))
	}
	return x.F.NewElt(bigint.Sub(bigint.Add(x.V, x.F.Order), y.V))
}

// Mul returns x * y mod q.
func Mul(x, y Elt) Elt {
	x.F.sameField(y.F)
	return x.F.NewElt(bigint.Mul(x.V, y.V))
}

// Inv returns x^-1 mod q.
func Inv(x Elt) (Elt, error) {
	inv, err := bigint.ModInv(x.V, x.F.Order)
	if err != nil {
		return Elt{}, err
	}
	return Elt{F: x.F, V: inv}, nil
}

// Equal reports whether x and y are the same element of the same field.
func (x Elt) Equal(y Elt) bool {
	return bigint.Cmp(x.F.Order, y.F.Order) == 0 && bigint.Cmp(x.V, y.V) == 0
}

// Bytes encodes x as a fixed-width big-endian byte string of length
// F.ByteLen(), left-padded with zero bytes.
func (x Elt) Bytes() []byte {
	raw := x.V.Bytes()
	out := make([]byte, x.F.byteLen)
	copy(out[len(out)-len(raw):], raw)
	return out
}

// EltFromBytes decodes a fixed-width big-endian byte string, reducing
// it modulo q — spec.md §4.3: "the input is reduced modulo q; no
// rejection sampling is needed at the verification layer."
func (f *Field) EltFromBytes(b []byte) Elt {
	return f.NewElt(bigint.FromBytes(b))
}

// ByteTree returns the leaf byte-tree encoding of x, used as a
// Fiat-Shamir hash input.
func (x Elt) ByteTree() bytetree.ByteTree {
	return bytetree.NewLeaf(x.Bytes())
}

// EltFromLeaf decodes a field element from a leaf byte-tree of length
// F.ByteLen(); any other shape is rejected.
func (f *Field) EltFromLeaf(t bytetree.ByteTree) (Elt, error) {
	if !t.IsLeaf() || len(t.LeafBytes()) != f.byteLen {
		return Elt{}, errBadShape
	}
	return f.EltFromBytes(t.LeafBytes()), nil
}

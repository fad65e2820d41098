package group

import (
	"errors"

	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/bytetree"
)

// PPGroup is a product of k groups, e.g. (g, K) used as the paired
// basis of a Chaum–Pedersen proof over an ElGamal public key K
// (spec.md §4.4). Every factor is required to be the same concrete
// group so that a single scalar exponent broadcasts across components
// unambiguously.
type PPGroup struct {
	factor Group
	width  int
}

// NewPPGroup builds the width-wide product of factor with itself.
func NewPPGroup(factor Group, width int) *PPGroup {
	return &PPGroup{factor: factor, width: width}
}

// PPElt is a PPGroup element: an ordered sequence of elements of the
// factor group.
type PPElt struct {
	group *PPGroup
	parts []Elt
}

func (g *PPGroup) Name() string      { return g.factor.Name() }
func (g *PPGroup) P() *bigint.BigInt { return g.factor.P() }
func (g *PPGroup) Q() *bigint.BigInt { return g.factor.Q() }
func (g *PPGroup) EncodeLen() int    { return g.factor.EncodeLen() }
func (g *PPGroup) Width() int        { return g.width }

func (g *PPGroup) NewElt() Elt {
	parts := make([]Elt, g.width)
	for i := range parts {
		parts[i] = g.factor.NewElt()
	}
	return &PPElt{group: g, parts: parts}
}

func (g *PPGroup) Generator() Elt { return g.Prod(repeat(g.factor.Generator(), g.width)...) }
func (g *PPGroup) Identity() Elt  { return g.Prod(repeat(g.factor.Identity(), g.width)...) }

func repeat(e Elt, n int) []Elt {
	out := make([]Elt, n)
	for i := range out {
		c := e
		out[i] = c
	}
	return out
}

// Prod builds a product element from per-component elements.
func (g *PPGroup) Prod(parts ...Elt) Elt {
	if len(parts) != g.width {
		panic("group: PPGroup.Prod: wrong component count")
	}
	cp := make([]Elt, g.width)
	copy(cp, parts)
	return &PPElt{group: g, parts: cp}
}

// ProdOf broadcasts a single element of the factor group to a
// width-wide product element, per spec.md §4.4 ("prod(x) broadcasts a
// single group element to a k-wide element").
func (g *PPGroup) ProdOf(e Elt) Elt {
	return g.Prod(repeat(e, g.width)...)
}

func (g *PPGroup) EltFromBytes(b []byte) (Elt, error) {
	return nil, errors.New("group: PPGroup.EltFromBytes: product elements decode componentwise, use EltFromByteTree")
}

func (g *PPGroup) EltFromByteTree(t bytetree.ByteTree) (Elt, error) {
	if t.IsLeaf() || len(t.Children()) != g.width {
		return nil, errors.New("group: byte-tree has the wrong shape for a PPGroup element")
	}
	parts := make([]Elt, g.width)
	for i, child := range t.Children() {
		e, err := g.factor.EltFromByteTree(child)
		if err != nil {
			return nil, err
		}
		parts[i] = e
	}
	return &PPElt{group: g, parts: parts}, nil
}

func (g *PPGroup) Encode(msg []byte) (Elt, error) {
	return nil, errors.New("group: PPGroup.Encode: encoding is only defined on the scalar factor group")
}

func (g *PPGroup) Decode(e Elt) ([]byte, error) {
	return nil, errors.New("group: PPGroup.Decode: decoding is only defined on the scalar factor group")
}

func (e *PPElt) check(x Elt) *PPElt {
	ex, ok := x.(*PPElt)
	if !ok || ex.group != e.group {
		panic(ErrCrossGroup)
	}
	return ex
}

func (e *PPElt) Mul(x, y Elt) Elt {
	ex, ey := e.check(x), e.check(y)
	parts := make([]Elt, e.group.width)
	for i := range parts {
		parts[i] = e.group.factor.NewElt().Mul(ex.parts[i], ey.parts[i])
	}
	e.parts = parts
	return e
}

func (e *PPElt) Inv(x Elt) Elt {
	ex := e.check(x)
	parts := make([]Elt, e.group.width)
	for i := range parts {
		parts[i] = e.group.factor.NewElt().Inv(ex.parts[i])
	}
	e.parts = parts
	return e
}

// Exp raises every component to the same shared scalar s — the only
// exponent shape this verifier's predicates ever apply to a product
// element. A per-component product-ring exponent is not supported.
func (e *PPElt) Exp(x Elt, s *bigint.BigInt) Elt {
	ex := e.check(x)
	parts := make([]Elt, e.group.width)
	for i := range parts {
		parts[i] = e.group.factor.NewElt().Exp(ex.parts[i], s)
	}
	e.parts = parts
	return e
}

func (e *PPElt) Set(x Elt) Elt {
	ex := e.check(x)
	parts := make([]Elt, e.group.width)
	for i := range parts {
		parts[i] = e.group.factor.NewElt().Set(ex.parts[i])
	}
	e.parts = parts
	return e
}

func (e *PPElt) Equal(x Elt) bool {
	ex, ok := x.(*PPElt)
	if !ok || ex.group != e.group {
		return false
	}
	for i := range e.parts {
		if !e.parts[i].Equal(ex.parts[i]) {
			return false
		}
	}
	return true
}

func (e *PPElt) IsIdentity() bool {
	for _, p := range e.parts {
		if !p.IsIdentity() {
			return false
		}
	}
	return true
}

func (e *PPElt) Bytes() []byte {
	var out []byte
	for _, p := range e.parts {
		out = append(out, p.Bytes()...)
	}
	return out
}

func (e *PPElt) ByteTree() bytetree.ByteTree {
	children := make([]bytetree.ByteTree, len(e.parts))
	for i, p := range e.parts {
		children[i] = p.ByteTree()
	}
	return bytetree.NewNode(children...)
}

func (e *PPElt) MarshalBinary() ([]byte, error) { return e.Bytes(), nil }

// Part returns the i-th component element.
func (e *PPElt) Part(i int) Elt { return e.parts[i] }

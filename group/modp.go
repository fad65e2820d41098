package group

import (
	"errors"

	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/bytetree"
)

// ModPGroup is the order-q subgroup of Z*p for a safe-structured prime
// p = 2q+1 (or more generally p-1 = r*q for a small cofactor r), with
// encoding = "safe-prime": an element's magnitude v is a member iff
// 1 <= v < p and the Legendre symbol (v|p) = 1 (spec.md §3, "ModPElt").
type ModPGroup struct {
	p, q, g *bigint.BigInt
	name    string
}

// ModPElt is a ModPGroup element, directly adapted from the teacher
// repository's modsafeprime.go: Add/Subtract/Negate/Scale/BaseScale
// become Mul/(Mul with Inv)/Inv/Exp/fixed-base Exp, and the backing
// arithmetic is this module's own bigint package instead of math/big.
type ModPElt struct {
	group *ModPGroup
	val   *bigint.BigInt
	fixed *fixedBaseTable
}

// NewModPGroup constructs the group from its parameters without
// verifying g^q = 1 mod p; that check is the caller's responsibility
// when parameters arrive on the wire (spec.md §4.4) and is performed by
// record.ValidateParameters, not silently here, so that a bad parameter
// set is reported as a named predicate failure rather than a panic.
func NewModPGroup(name string, p, q, g *bigint.BigInt) *ModPGroup {
	return &ModPGroup{p: p, q: q, g: g, name: name}
}

// GeneratorSatisfiesOrder reports whether g^q = 1 mod p, the membership
// check spec.md §4.4 requires the core to perform for wire parameters.
func (grp *ModPGroup) GeneratorSatisfiesOrder() bool {
	r, err := bigint.ModPow(grp.g, grp.q, grp.p)
	return err == nil && r.IsOne()
}

func (grp *ModPGroup) Name() string          { return grp.name }
func (grp *ModPGroup) P() *bigint.BigInt     { return grp.p }
func (grp *ModPGroup) Q() *bigint.BigInt     { return grp.q }
func (grp *ModPGroup) EncodeLen() int        { return grp.byteLen() - 5 }
func (grp *ModPGroup) NewElt() Elt           { return &ModPElt{group: grp, val: bigint.One()} }
func (grp *ModPGroup) Generator() Elt        { return &ModPElt{group: grp, val: grp.g.Clone()} }
func (grp *ModPGroup) Identity() Elt         { return &ModPElt{group: grp, val: bigint.One()} }
func (grp *ModPGroup) byteLen() int          { return (grp.p.BitLen() + 7) / 8 }

func (grp *ModPGroup) equals(h *ModPGroup) bool {
	return grp == h || (bigint.Cmp(grp.p, h.p) == 0 && bigint.Cmp(grp.g, h.g) == 0)
}

// EltFromBytes parses a big-endian magnitude and validates membership:
// 1 <= v < p and (v|p) = 1 — the safe-prime encoding of spec.md §4.4.
// Any other declared encoding is out of scope: this module only
// implements safe-prime, the sole encoding the ElectionGuard v0.85
// record format uses.
func (grp *ModPGroup) EltFromBytes(b []byte) (Elt, error) {
	v := bigint.FromBytes(b)
	return grp.eltFromMagnitude(v)
}

func (grp *ModPGroup) eltFromMagnitude(v *bigint.BigInt) (Elt, error) {
	if v.IsZero() || bigint.Cmp(v, grp.p) >= 0 {
		return nil, ErrNotInGroup
	}
	if bigint.Legendre(v, grp.p) != 1 {
		return nil, ErrNotInGroup
	}
	return &ModPElt{group: grp, val: v}, nil
}

// EltFromByteTree decodes an element from a leaf of the group's fixed
// byte length.
func (grp *ModPGroup) EltFromByteTree(t bytetree.ByteTree) (Elt, error) {
	if !t.IsLeaf() || len(t.LeafBytes()) != grp.byteLen() {
		return nil, errors.New("group: byte-tree has the wrong shape for a ModPGroup element")
	}
	return grp.EltFromBytes(t.LeafBytes())
}

func (e *ModPElt) check(x Elt) *ModPElt {
	ex, ok := x.(*ModPElt)
	if !ok {
		panic(ErrCrossGroup)
	}
	if !e.group.equals(ex.group) {
		panic(ErrCrossGroup)
	}
	return ex
}

func (e *ModPElt) Mul(x, y Elt) Elt {
	ex, ey := e.check(x), e.check(y)
	e.val = bigint.Mod(bigint.Mul(ex.val, ey.val), e.group.p)
	return e
}

func (e *ModPElt) Inv(x Elt) Elt {
	ex := e.check(x)
	inv, err := bigint.ModInv(ex.val, e.group.p)
	if err != nil {
		panic(err)
	}
	e.val = inv
	return e
}

func (e *ModPElt) Exp(x Elt, s *bigint.BigInt) Elt {
	ex := e.check(x)
	if ex.fixed != nil {
		e.val = ex.fixed.exp(s)
		return e
	}
	r, err := bigint.ModPow(ex.val, s, e.group.p)
	if err != nil {
		panic(err)
	}
	e.val = r
	return e
}

func (e *ModPElt) Set(x Elt) Elt {
	ex := e.check(x)
	e.val = ex.val.Clone()
	e.fixed = ex.fixed
	return e
}

func (e *ModPElt) Equal(x Elt) bool {
	ex, ok := x.(*ModPElt)
	if !ok || !e.group.equals(ex.group) {
		return false
	}
	return bigint.Cmp(e.val, ex.val) == 0
}

func (e *ModPElt) IsIdentity() bool { return e.val.IsOne() }

func (e *ModPElt) Bytes() []byte {
	raw := e.val.Bytes()
	out := make([]byte, e.group.byteLen())
	copy(out[len(out)-len(raw):], raw)
	return out
}

func (e *ModPElt) ByteTree() bytetree.ByteTree { return bytetree.NewLeaf(e.Bytes()) }

func (e *ModPElt) MarshalBinary() ([]byte, error) { return e.Bytes(), nil }

// Fix precomputes a fixed-base table for this element, amortizing the
// cost of n subsequent calls to Exp with this element as base (spec.md
// §4.4, "Optional fix(n)"). The table holds base^(2^i) for every bit
// position up to the group order's bit length; its size depends only
// on that bit length, and n does not affect it (see fixedbase.go).
func (e *ModPElt) Fix(n int) {
	e.fixed = newFixedBaseTable(e.val, e.group.p, e.group.q.BitLen(), n)
}

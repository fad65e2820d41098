// Package sigma implements the zero-knowledge verifiers the proof
// records in package proofs adapt to: the exponentiation homomorphism,
// the Schnorr (single-base knowledge) verifier, and the Sigma-OR (CDS)
// composition (spec.md §4.5).
package sigma

import (
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/group"
)

// ExpHom is the homomorphism x -> b^x from a ring of scalars to a
// group, generalized over product groups so that evaluating at x gives
// every component simultaneously (spec.md §3, "Exponentiation
// homomorphism").
type ExpHom struct {
	Basis group.Elt
	Group group.Group
}

// NewExpHom builds the homomorphism with basis b in group g.
func NewExpHom(g group.Group, b group.Elt) ExpHom {
	return ExpHom{Basis: b, Group: g}
}

// Eval returns b^x.
func (h ExpHom) Eval(x *bigint.BigInt) group.Elt {
	return h.Group.NewElt().Exp(h.Basis, x)
}

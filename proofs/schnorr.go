package proofs

import (
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/record"
	"github.com/takakv/egverify/sigma"
)

// SchnorrRecord is the wire shape of a Schnorr proof: three decimal
// strings (spec.md §3, "Proof on the wire").
type SchnorrRecord struct {
	Commitment string `json:"commitment"`
	Challenge  string `json:"challenge"`
	Response   string `json:"response"`
}

// VerifySchnorr parses r against group g / field f, builds the
// instance (hom, y) under Fiat-Shamir label, and invokes the Schnorr
// verifier (spec.md §4.6, "Schnorr-proof record").
func VerifySchnorr(g group.Group, f *field.Field, label string, hom sigma.ExpHom, y group.Elt, r SchnorrRecord) (bool, error) {
	a, err := parseGroupElt(g, r.Commitment, record.CodeSchnorrProof, "commitment")
	if err != nil {
		return false, err
	}
	c, err := parseFieldElt(f, r.Challenge, record.CodeSchnorrProof, "challenge")
	if err != nil {
		return false, err
	}
	z, err := parseFieldElt(f, r.Response, record.CodeSchnorrProof, "response")
	if err != nil {
		return false, err
	}
	inst := sigma.SchnorrInstance{Hom: hom, Image: y}
	proof := sigma.SchnorrProof{Commitment: a, Challenge: c, Response: z}
	return sigma.VerifySchnorr(f, label, inst, proof), nil
}

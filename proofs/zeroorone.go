package proofs

import (
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/record"
	"github.com/takakv/egverify/sigma"
)

// ZeroOrOneRecord is the wire shape of a zero-or-one (CDS) proof: a
// pair of Chaum–Pedersen triples sharing the same (A, B) instance
// structure (spec.md §3, "A Zero-or-One proof is a pair of
// Chaum–Pedersen triples with shared structure").
type ZeroOrOneRecord struct {
	ZeroProof ChaumPedersenRecord `json:"zero_proof"`
	OneProof  ChaumPedersenRecord `json:"one_proof"`
}

// VerifyZeroOrOne builds instance vector [(A,B), (A, B·g⁻¹)] over the
// product group (g, K) and invokes the Sigma-OR verifier with two
// Schnorr verifiers (spec.md §4.6, "Zero-or-One record"): the selection
// ciphertext (A,B) either encrypts 0 under (g,K) directly, or encrypts
// 1 once B is divided by g.
func VerifyZeroOrOne(grp group.Group, f *field.Field, label string, g, k, a, b group.Elt, r ZeroOrOneRecord, failFast bool) (bool, error) {
	pp := group.NewPPGroup(grp, 2)
	hom := sigma.NewExpHom(pp, pp.Prod(g, k))

	bOverG := grp.NewElt().Mul(b, grp.NewElt().Inv(g))
	inst0 := pp.Prod(a, b)
	inst1 := pp.Prod(a, bOverG)

	insts := []sigma.ORInstance{
		{SchnorrInstance: sigma.SchnorrInstance{Hom: hom, Image: inst0}},
		{SchnorrInstance: sigma.SchnorrInstance{Hom: hom, Image: inst1}},
	}

	branch0, err := parseORBranch(grp, pp, f, r.ZeroProof)
	if err != nil {
		return false, err
	}
	branch1, err := parseORBranch(grp, pp, f, r.OneProof)
	if err != nil {
		return false, err
	}

	overall := field.Add(branch0.Challenge, branch1.Challenge)
	proof := sigma.ORProof{
		Branches:  []sigma.ORBranchProof{{SchnorrProof: branch0}, {SchnorrProof: branch1}},
		Challenge: overall,
	}
	return sigma.VerifyOR(f, label, insts, proof, failFast), nil
}

func parseORBranch(grp group.Group, pp *group.PPGroup, f *field.Field, r ChaumPedersenRecord) (sigma.SchnorrProof, error) {
	ca, err := parseGroupElt(grp, r.CommitmentA, record.CodeZeroOrOneProof, "commitment_a")
	if err != nil {
		return sigma.SchnorrProof{}, err
	}
	cb, err := parseGroupElt(grp, r.CommitmentB, record.CodeZeroOrOneProof, "commitment_b")
	if err != nil {
		return sigma.SchnorrProof{}, err
	}
	c, err := parseFieldElt(f, r.Challenge, record.CodeZeroOrOneProof, "challenge")
	if err != nil {
		return sigma.SchnorrProof{}, err
	}
	z, err := parseFieldElt(f, r.Response, record.CodeZeroOrOneProof, "response")
	if err != nil {
		return sigma.SchnorrProof{}, err
	}
	return sigma.SchnorrProof{Commitment: pp.Prod(ca, cb), Challenge: c, Response: z}, nil
}

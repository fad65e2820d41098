package sigma

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/bytetree"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
)

// testSetup is the same small safe-prime group the group package tests
// use: p = 2*11+1 = 23, generator 4 of the order-11 subgroup.
func testSetup() (*group.ModPGroup, *field.Field) {
	g := group.NewModPGroup("test23", bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4))
	return g, field.NewField(bigint.FromUint64(11))
}

func proveSchnorr(t *testing.T, f *field.Field, hom ExpHom, label string, x field.Elt) (SchnorrInstance, SchnorrProof) {
	t.Helper()
	w := f.NewElt(bigint.FromUint64(7))
	y := hom.Eval(x.V)
	a := hom.Eval(w.V)
	inst := SchnorrInstance{Hom: hom, Image: y}
	c := Challenge(f, label, y, a)
	z := field.Add(w, field.Mul(c, x))
	return inst, SchnorrProof{Commitment: a, Challenge: c, Response: z}
}

func TestSchnorrRoundTrip(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	x := f.NewElt(bigint.FromUint64(3))
	inst, proof := proveSchnorr(t, f, hom, "schnorr-test", x)
	require.True(t, VerifySchnorr(f, "schnorr-test", inst, proof))
}

func TestSchnorrRejectsWrongLabel(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	x := f.NewElt(bigint.FromUint64(3))
	inst, proof := proveSchnorr(t, f, hom, "schnorr-test", x)
	require.False(t, VerifySchnorr(f, "other-label", inst, proof))
}

func TestSchnorrRejectsTamperedResponse(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	x := f.NewElt(bigint.FromUint64(3))
	inst, proof := proveSchnorr(t, f, hom, "schnorr-test", x)
	proof.Response = field.Add(proof.Response, f.One())
	require.False(t, VerifySchnorr(f, "schnorr-test", inst, proof))
}

func TestSchnorrRejectsTamperedChallenge(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	x := f.NewElt(bigint.FromUint64(3))
	inst, proof := proveSchnorr(t, f, hom, "schnorr-test", x)
	proof.Challenge = field.Add(proof.Challenge, f.One())
	require.False(t, VerifySchnorr(f, "schnorr-test", inst, proof))
}

// buildORProof constructs a valid Sigma-OR proof over two branches using
// the standard CDS simulation trick: the honest branch (index honestIdx)
// is proved with real witness knowledge, the other is simulated by
// picking its challenge and response first and solving for a matching
// commitment, then the overall challenge binds both branches together.
func buildORProof(t *testing.T, f *field.Field, hom ExpHom, label string, witnesses [2]field.Elt, honestIdx int) ([]ORInstance, ORProof) {
	t.Helper()
	other := 1 - honestIdx

	ys := make([]group.Elt, 2)
	for i := range witnesses {
		ys[i] = hom.Eval(witnesses[i].V)
	}
	insts := make([]ORInstance, 2)
	for i := range insts {
		insts[i] = ORInstance{SchnorrInstance{Hom: hom, Image: ys[i]}}
	}

	w := f.NewElt(bigint.FromUint64(9))
	aHonest := hom.Eval(w.V)

	cOther := f.NewElt(bigint.FromUint64(5))
	zOther := f.NewElt(bigint.FromUint64(6))
	// Simulate: a = h^z * y^-c.
	hz := hom.Eval(zOther.V)
	ycInv := hom.Group.NewElt().Exp(ys[other], bigint.Mod(bigint.Sub(f.Order, cOther.V), f.Order))
	aOther := hom.Group.NewElt().Mul(hz, ycInv)

	commitments := make([]group.Elt, 2)
	commitments[honestIdx] = aHonest
	commitments[other] = aOther

	trees := make([]bytetree.ByteTree, 2)
	for i, c := range commitments {
		trees[i] = c.ByteTree()
	}
	overall := challengeOverMany(f, label, insts, trees)

	cHonest := field.Sub(overall, cOther)
	zHonest := field.Add(w, field.Mul(cHonest, witnesses[honestIdx]))

	branches := make([]ORBranchProof, 2)
	branches[honestIdx] = ORBranchProof{SchnorrProof{Commitment: aHonest, Challenge: cHonest, Response: zHonest}}
	branches[other] = ORBranchProof{SchnorrProof{Commitment: aOther, Challenge: cOther, Response: zOther}}

	return insts, ORProof{Branches: branches, Challenge: overall}
}

func TestSigmaORRoundTrip(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	witnesses := [2]field.Elt{f.NewElt(bigint.FromUint64(2)), f.NewElt(bigint.FromUint64(4))}
	insts, proof := buildORProof(t, f, hom, "or-test", witnesses, 0)
	require.True(t, VerifyOR(f, "or-test", insts, proof, true))
}

func TestSigmaORRejectsBrokenChallengeSum(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	witnesses := [2]field.Elt{f.NewElt(bigint.FromUint64(2)), f.NewElt(bigint.FromUint64(4))}
	insts, proof := buildORProof(t, f, hom, "or-test", witnesses, 0)
	proof.Branches[0].Challenge = field.Add(proof.Branches[0].Challenge, f.One())
	require.False(t, VerifyOR(f, "or-test", insts, proof, true))
}

func TestSigmaORNonFailFastChecksAllBranches(t *testing.T) {
	grp, f := testSetup()
	hom := NewExpHom(grp, grp.Generator())
	witnesses := [2]field.Elt{f.NewElt(bigint.FromUint64(2)), f.NewElt(bigint.FromUint64(4))}
	insts, proof := buildORProof(t, f, hom, "or-test", witnesses, 0)
	proof.Branches[1].Response = field.Add(proof.Branches[1].Response, f.One())
	require.False(t, VerifyOR(f, "or-test", insts, proof, false))
	require.False(t, VerifyOR(f, "or-test", insts, proof, true))
}

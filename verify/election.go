package verify

import (
	"github.com/takakv/egverify/baseline"
	"github.com/takakv/egverify/basehash"
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/record"
)

// Options configures the verification walk.
type Options struct {
	// FailFast stops the Sigma-OR composition (sigma.VerifyOR) as soon
	// as a branch's own Schnorr equation fails, rather than checking
	// every branch before reporting false — spec.md §4.5.
	FailFast bool
}

// VerifyElection walks rec depth-first, rooted at Election, recording
// one predicate per node into rcd (spec.md §4.7). A structural
// deserialization failure at a node suppresses predicates strictly
// beneath it but never aborts the whole walk — sibling subtrees still
// verify.
func VerifyElection(rec *record.ElectionRecord, opts Options, rcd Recorder) {
	ctx := RootContext("Election")

	grp, f, err := record.BuildGroup(rec.Parameters, baseline.Q())
	if err != nil {
		rcd.Record(false, ctx.String(), "ParametersLoading", err.Error())
		return
	}
	if !record.ValidateParameters(grp) {
		rcd.Record(false, ctx.String(), "ParametersLoading", "declared generator does not satisfy g^q = 1")
		return
	}

	n, t := rec.Parameters.NumTrustees, rec.Parameters.Threshold
	rcd.Record(t <= n, ctx.String(), "ThresholdTrustees", "threshold is at most the number of trustees")
	rcd.Record(len(rec.TrusteePublicKeys) == n, ctx.String(), "NumPubKeys", "trustee commitment row count equals n")

	rcd.Record(bigint.Cmp(grp.P(), baseline.P()) == 0, ctx.String(), "BaselineEncryptionModulus", "declared prime equals the baseline modulus")
	declaredG := bigint.FromBytes(grp.Generator().Bytes())
	rcd.Record(bigint.Cmp(declaredG, baseline.G()) == 0, ctx.String(), "BaselineEncryptionGenerator", "declared generator equals the baseline generator")

	qbar := basehash.Compute(grp.P(), grp.Q(), declaredG)
	baseOK, berr := basehash.MatchesDecimal(rec.BaseHash, qbar)
	if berr != nil {
		rcd.Record(false, ctx.String(), "ElectionBaseHash", berr.Error())
	} else {
		rcd.Record(baseOK, ctx.String(), "ElectionBaseHash", "declared base hash equals the computed base hash")
	}

	coeff0s := make([]group.Elt, 0, n)
	var allCommitments []group.Elt
	for i, keys := range rec.TrusteePublicKeys {
		c0, row, _ := verifyTrusteeKeys(grp, f, ctx, i, t, keys, rcd)
		if c0 != nil {
			coeff0s = append(coeff0s, c0)
		}
		allCommitments = append(allCommitments, row...)
	}

	qhat := basehash.ComputeExtended(qbar, n, t, allCommitments)
	extOK, eerr := basehash.MatchesDecimal(rec.ExtendedBaseHash, qhat)
	if eerr != nil {
		rcd.Record(false, ctx.String(), "ElectionExtendedBaseHash", eerr.Error())
	} else {
		rcd.Record(extOK, ctx.String(), "ElectionExtendedBaseHash", "declared extended base hash equals the computed extended base hash")
	}

	joint := grp.Identity()
	for _, c0 := range coeff0s {
		joint = grp.NewElt().Mul(joint, c0)
	}
	declaredJoint, jerr := record.ParseGroupElt(grp, rec.JointPublicKey, record.CodeAlphaLoading, "joint_public_key")
	if jerr != nil {
		rcd.Record(false, ctx.String(), "JointPublicKeyCalculation", jerr.Error())
	} else {
		rcd.Record(joint.Equal(declaredJoint), ctx.String(), "JointPublicKeyCalculation", "product of trustee coefficient-0 commitments equals the declared joint public key")
	}

	g := grp.Generator()
	jointKey := declaredJoint
	if jointKey == nil {
		jointKey = joint
	}

	schema := inferContestSchema(rec.CastBallots)
	for i, ballot := range rec.CastBallots {
		verifyCastBallot(grp, f, ctx, i, g, jointKey, schema, ballot, opts, rcd)
	}

	for i, contest := range rec.ContestTallies {
		verifyTallyContest(grp, f, ctx, i, g, jointKey, coeff0s, contest, rcd)
	}

	for i, ballot := range rec.SpoiledBallots {
		verifySpoiledBallot(grp, f, ctx, i, g, jointKey, coeff0s, ballot, rcd)
	}
}

package verify

import (
	"fmt"

	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/proofs"
	"github.com/takakv/egverify/record"
)

// verifySelectionDecryption checks one tallied or spoiled selection
// against its decryption record (spec.md §4.7, "Tally contest"): loads
// alpha/beta, verifies each trustee's Chaum-Pedersen share-correctness
// proof, combines the shares, and checks DecryptionMatches and
// CleartextMatches. When checkTallySum is set it additionally verifies
// that the homomorphic product of the listed ballot ciphertexts equals
// the declared tally (skipped for a spoiled ballot's selections, which
// carry no ballot_ciphertexts — spec.md §4.7, "Spoiled ballot").
//
// A share's proof verifying false is a ChaumPedersenProof failure, not
// a loading failure (spec.md §7: ShareLoading/SharesLoading are
// loading codes, not proof-outcome codes) — the share's value still
// loaded and still feeds the combined decryption, so DecryptionMatches
// and CleartextMatches are still checked and recorded. SharesLoading
// only fires, and only then aborts the selection early, when a share
// genuinely fails to load (malformed value, out-of-range trustee
// index, or a malformed proof encoding).
//
// It returns the parsed cleartext and whether the selection loaded far
// enough to produce one, so a spoiled contest can aggregate cleartexts
// into SumOfPlaintexts while still suppressing that aggregate when a
// selection failed to load (as opposed to merely failing a proof).
func verifySelectionDecryption(
	grp *group.ModPGroup, f *field.Field, ctx Context,
	g, jointKey group.Elt, trusteeKeys []group.Elt,
	sel record.TallySelection, checkTallySum bool, rcd Recorder,
) (cleartext *bigint.BigInt, loaded bool) {
	alpha, err := record.ParseGroupElt(grp, sel.EncryptedTally.Alpha, record.CodeAlphaLoading, "encrypted_tally.alpha")
	if err != nil {
		rcd.Record(false, ctx.String(), "AlphaLoading", err.Error())
		return nil, false
	}
	beta, err := record.ParseGroupElt(grp, sel.EncryptedTally.Beta, record.CodeAlphaLoading, "encrypted_tally.beta")
	if err != nil {
		rcd.Record(false, ctx.String(), "AlphaLoading", err.Error())
		return nil, false
	}

	combined := grp.Identity()
	loadOK := true
	for i, sh := range sel.Shares {
		sctx := ctx.Child(fmt.Sprintf("Share #%d", i))
		mi, serr := record.ParseGroupElt(grp, sh.Value, record.CodeShareLoading, "value")
		if serr != nil {
			rcd.Record(false, sctx.String(), "ShareLoading", serr.Error())
			loadOK = false
			continue
		}
		if sh.TrusteeIndex < 0 || sh.TrusteeIndex >= len(trusteeKeys) {
			rcd.Record(false, sctx.String(), "ShareLoading", "trustee_index out of range")
			loadOK = false
			continue
		}
		yi := trusteeKeys[sh.TrusteeIndex]
		valid, perr := proofs.VerifyChaumPedersen(grp, f, "share correctness", g, alpha, yi, mi, sh.Proof)
		if perr != nil {
			rcd.Record(false, sctx.String(), "ShareLoading", perr.Error())
			loadOK = false
			continue
		}
		rcd.Record(valid, sctx.String(), "ChaumPedersenProof", "share correctness")
		combined = grp.NewElt().Mul(combined, mi)
	}
	if !loadOK {
		rcd.Record(false, ctx.String(), "SharesLoading", "one or more shares failed to load")
		return nil, false
	}

	if checkTallySum {
		prodA, prodB := grp.Identity(), grp.Identity()
		sumOK := true
		for j, c := range sel.BallotCiphertexts {
			a, aerr := record.ParseGroupElt(grp, c.Alpha, record.CodeAlphaLoading, fmt.Sprintf("ballot_ciphertexts[%d].alpha", j))
			b, berr := record.ParseGroupElt(grp, c.Beta, record.CodeAlphaLoading, fmt.Sprintf("ballot_ciphertexts[%d].beta", j))
			if aerr != nil || berr != nil {
				sumOK = false
				break
			}
			prodA, prodB = grp.NewElt().Mul(prodA, a), grp.NewElt().Mul(prodB, b)
		}
		sumOK = sumOK && prodA.Equal(alpha) && prodB.Equal(beta)
		rcd.Record(sumOK, ctx.String(), "TallySum", "product of per-ballot ciphertexts equals the declared tally")
	}

	decrypted, derr := record.ParseGroupElt(grp, sel.DecryptedTally, record.CodeDecryptionData, "decrypted_tally")
	if derr != nil {
		rcd.Record(false, ctx.String(), "DecryptionData", derr.Error())
		return nil, false
	}
	bm := grp.NewElt().Mul(beta, grp.NewElt().Inv(combined))
	decOK := bm.Equal(decrypted)
	rcd.Record(decOK, ctx.String(), "DecryptionMatches", "beta times the combined share inverse equals the declared decrypted tally")

	m, merr := bigint.FromDecimalString(sel.Cleartext)
	if merr != nil {
		rcd.Record(false, ctx.String(), "CleartextMatches", merr.Error())
		return nil, false
	}
	gm := grp.NewElt().Exp(g, m)
	clearOK := gm.Equal(decrypted)
	rcd.Record(clearOK, ctx.String(), "CleartextMatches", "g raised to the cleartext equals the declared decrypted tally")

	return m, true
}

// verifyTallyContest walks one contest's tallied selections, the
// "Tally contest" node of spec.md §4.7.
func verifyTallyContest(
	grp *group.ModPGroup, f *field.Field, parent Context, idx int,
	g, jointKey group.Elt, trusteeKeys []group.Elt,
	contest record.TallyContest, rcd Recorder,
) {
	ctx := parent.Child(fmt.Sprintf("Tally contest #%d", idx))
	for i, sel := range contest.Selections {
		sctx := ctx.Child(fmt.Sprintf("Selection #%d", i))
		verifySelectionDecryption(grp, f, sctx, g, jointKey, trusteeKeys, sel, true, rcd)
	}
}

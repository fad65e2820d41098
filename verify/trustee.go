package verify

import (
	"fmt"

	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/proofs"
	"github.com/takakv/egverify/record"
	"github.com/takakv/egverify/sigma"
)

// verifyTrusteeKeys walks one trustee's row of t coefficient
// commitments (spec.md §4.7, "Trustee public keys"). It returns the
// row's coefficient-0 commitment (the trustee's contribution to the
// joint public key), the full flattened row for the extended base
// hash, and whether the row verified without any failure.
func verifyTrusteeKeys(
	grp *group.ModPGroup, f *field.Field, parent Context, idx int, t int,
	keys record.TrusteeKeys, rcd Recorder,
) (coeff0 group.Elt, row []group.Elt, ok bool) {
	ctx := parent.Child(fmt.Sprintf("Trustee public keys #%d", idx))

	lenOK := len(keys.Coefficients) == t
	rcd.Record(lenOK, ctx.String(), "NumberOfCoefficients", "row length equals the threshold t")
	if !lenOK {
		return nil, nil, false
	}

	all := true
	row = make([]group.Elt, 0, len(keys.Coefficients))
	hom := sigma.NewExpHom(grp, grp.Generator())
	for j, c := range keys.Coefficients {
		cctx := ctx.Child(fmt.Sprintf("Coefficient commitment #%d", j))
		elt, err := record.ParseGroupElt(grp, c.Commitment, record.CodeCoefficientCommitmentLoading, "commitment")
		if err != nil {
			rcd.Record(false, cctx.String(), "CoefficientCommitmentLoading", err.Error())
			all = false
			continue
		}
		valid, perr := proofs.VerifySchnorr(grp, f, "coefficient commitment", hom, elt, c.Proof)
		if perr != nil {
			rcd.Record(false, cctx.String(), "SchnorrProof", perr.Error())
			all = false
			continue
		}
		rcd.Record(valid, cctx.String(), "SchnorrProof", "knowledge of the commitment's exponent")
		all = all && valid
		row = append(row, elt)
		if j == 0 {
			coeff0 = elt
		}
	}
	return coeff0, row, all
}

package verify

import (
	"fmt"

	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/record"
)

// verifySpoiledBallot walks one spoiled ballot: per-selection
// decryption data like a tally contest, but without cross-ballot
// aggregation — TallySum is skipped, and each contest additionally
// emits SumOfPlaintexts (spec.md §4.7, "Spoiled ballot").
func verifySpoiledBallot(
	grp *group.ModPGroup, f *field.Field, parent Context, idx int,
	g, jointKey group.Elt, trusteeKeys []group.Elt,
	ballot record.SpoiledBallot, rcd Recorder,
) {
	ctx := parent.Child(fmt.Sprintf("Spoiled ballot #%d", idx))
	for c, contest := range ballot.Contests {
		cctx := ctx.Child(fmt.Sprintf("Contest #%d", c))

		sum := bigint.Zero()
		allLoaded := true
		for s, sel := range contest.Selections {
			sctx := cctx.Child(fmt.Sprintf("Selection #%d", s))
			cleartext, loaded := verifySelectionDecryption(grp, f, sctx, g, jointKey, trusteeKeys, sel, false, rcd)
			if !loaded {
				allLoaded = false
				continue
			}
			sum = bigint.Add(sum, cleartext)
		}

		// A selection that failed to load suppresses this contest's
		// aggregate entirely (spec.md §4.7 short-circuit rule); a selection
		// that loaded but failed a proof still contributes its cleartext.
		if !allLoaded {
			continue
		}
		want := bigint.FromUint64(uint64(contest.MaxSelections))
		rcd.Record(bigint.Cmp(sum, want) == 0, cctx.String(), "SumOfPlaintexts", "sum of per-selection cleartexts equals max_selections")
	}
}

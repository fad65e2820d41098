package basehash

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/group"
)

func TestComputeIsDeterministic(t *testing.T) {
	p, q, g := bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4)
	h1 := Compute(p, q, g)
	h2 := Compute(p, q, g)
	require.Equal(t, h1, h2)
}

func TestComputeChangesWithParameters(t *testing.T) {
	p, q, g := bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4)
	h1 := Compute(p, q, g)
	h2 := Compute(p, q, bigint.FromUint64(2))
	require.NotEqual(t, h1, h2)
}

func TestComputeExtendedBindsCommitments(t *testing.T) {
	grp := group.NewModPGroup("t23", bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4))
	base := Compute(bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4))
	commitments := []group.Elt{grp.Generator()}
	h1 := ComputeExtended(base, 1, 1, commitments)
	h2 := ComputeExtended(base, 1, 1, []group.Elt{grp.NewElt().Exp(grp.Generator(), bigint.FromUint64(2))})
	require.NotEqual(t, h1, h2)
}

func TestMatchesDecimal(t *testing.T) {
	h := Compute(bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4))
	ok, err := MatchesDecimal(bigint.FromBytes(h[:]).String(), h)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = MatchesDecimal("0", h)
	require.NoError(t, err)
	require.False(t, ok)
}

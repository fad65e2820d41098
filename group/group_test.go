package group

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/egverify/bigint"
)

// testGroup is a small safe-prime group usable for fast unit tests:
// p = 2*11 + 1 = 23, generator 4 (order 11 subgroup of the quadratic
// residues mod 23).
func testGroup() *ModPGroup {
	return NewModPGroup("test23", bigint.FromUint64(23), bigint.FromUint64(11), bigint.FromUint64(4))
}

func TestGeneratorSatisfiesOrder(t *testing.T) {
	g := testGroup()
	require.True(t, g.GeneratorSatisfiesOrder())
}

func TestMulInvIdentity(t *testing.T) {
	g := testGroup()
	x := g.Generator()
	inv := g.NewElt().Inv(x)
	prod := g.NewElt().Mul(x, inv)
	require.True(t, prod.IsIdentity())
}

func TestExpMatchesRepeatedMul(t *testing.T) {
	g := testGroup()
	x := g.Generator()
	cubedByExp := g.NewElt().Exp(x, bigint.FromUint64(3))
	sq := g.NewElt().Mul(x, x)
	cubedByMul := g.NewElt().Mul(sq, x)
	require.True(t, cubedByExp.Equal(cubedByMul))
}

func TestEltFromBytesRejectsNonResidue(t *testing.T) {
	g := testGroup()
	// 5 is a non-residue mod 23: the quadratic residues mod 23 are
	// {1,2,3,4,6,8,9,12,13,16,18}.
	_, err := g.EltFromBytes([]byte{5})
	require.ErrorIs(t, err, ErrNotInGroup)
}

func TestEltFromBytesRejectsOutOfRange(t *testing.T) {
	g := testGroup()
	_, err := g.EltFromBytes([]byte{23})
	require.ErrorIs(t, err, ErrNotInGroup)
}

func TestByteTreeRoundTrip(t *testing.T) {
	g := testGroup()
	x := g.Generator()
	tree := x.ByteTree()
	got, err := g.EltFromByteTree(tree)
	require.NoError(t, err)
	require.True(t, x.Equal(got))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Needs a wider group since the encoding reserves five bytes of
	// overhead (one leading byte plus the 4-byte length prefix);
	// 36028797018970703 = 2*18014398509485351+1 is a 56-bit safe prime,
	// so B_G = 7 and a 2-byte message fits.
	g := NewModPGroup("test56", bigint.FromUint64(36028797018970703), bigint.FromUint64(18014398509485351), bigint.FromUint64(4))
	msg := []byte("hi")
	e, err := g.Encode(msg)
	require.NoError(t, err)
	got, err := g.Decode(e)
	require.NoError(t, err)
	require.Equal(t, msg, got)
}

func TestFixedBaseMatchesPlainExp(t *testing.T) {
	g := testGroup()
	x := g.Generator().(*ModPElt)
	x.Fix(8)
	viaFixed := g.NewElt().Exp(x, bigint.FromUint64(5))

	plain := g.Generator()
	viaPlain := g.NewElt().Exp(plain, bigint.FromUint64(5))
	require.True(t, viaFixed.Equal(viaPlain))
}

func TestProductGroupExpAndMul(t *testing.T) {
	f := testGroup()
	pp := NewPPGroup(f, 2)
	base := pp.Prod(f.Generator(), f.NewElt().Mul(f.Generator(), f.Generator()))
	exp3 := pp.NewElt().Exp(base, bigint.FromUint64(3))

	want := pp.Prod(
		f.NewElt().Exp(f.Generator(), bigint.FromUint64(3)),
		f.NewElt().Exp(f.NewElt().Mul(f.Generator(), f.Generator()), bigint.FromUint64(3)),
	)
	require.True(t, exp3.Equal(want))
}

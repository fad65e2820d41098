package baseline

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/takakv/egverify/bigint"
)

// TestBaselineConstantsMatchFormula recomputes q = 2^256 - 189,
// p = 2^4096 - 69*q - 2650872664557734482243044168410288960, and
// g = 2^((p-1)/q) mod p independently of the embedded decimal strings,
// and requires bit-for-bit equality, per spec.md §8 invariant 3.
func TestBaselineConstantsMatchFormula(t *testing.T) {
	two := bigint.FromUint64(2)
	pow2 := func(n int) *bigint.BigInt {
		r := bigint.One()
		for i := 0; i < n; i++ {
			r = bigint.Mul(r, two)
		}
		return r
	}

	wantQ := bigint.Sub(pow2(256), bigint.FromUint64(189))
	require.Equal(t, 0, bigint.Cmp(wantQ, Q()))

	sixtyNineQ := bigint.Mul(bigint.FromUint64(69), wantQ)
	offset, err := bigint.FromDecimalString("2650872664557734482243044168410288960")
	require.NoError(t, err)
	wantP := bigint.Sub(bigint.Sub(pow2(4096), sixtyNineQ), offset)
	require.Equal(t, 0, bigint.Cmp(wantP, P()))

	pMinusOne := bigint.Sub(wantP, bigint.One())
	exp, r := bigint.DivQR(pMinusOne, wantQ)
	require.True(t, r.IsZero())
	wantG, err := bigint.ModPow(two, exp, wantP)
	require.NoError(t, err)
	require.Equal(t, 0, bigint.Cmp(wantG, G()))
}

func TestBaselineGeneratorSatisfiesOrder(t *testing.T) {
	r, err := bigint.ModPow(G(), Q(), P())
	require.NoError(t, err)
	require.True(t, r.IsOne())
}

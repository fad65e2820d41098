package bigint

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// smallSafePrime is a small safe prime (p = 2q+1) usable for fast
// property tests; the baseline 4096-bit prime is exercised separately
// in the baseline package where only the constants themselves, not
// every arithmetic property, need re-checking at full size.
var smallSafePrime = FromUint64(23) // a small safe prime: 23 = 2*11 + 1, both prime

func randBelow(t *testing.T, n *BigInt) *BigInt {
	t.Helper()
	buf := make([]byte, len(n.Bytes())+8)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	if n.IsZero() {
		return Zero()
	}
	return Mod(FromBytes(buf), n)
}

func TestAddSubRoundTrip(t *testing.T) {
	p := smallSafePrime
	for i := 0; i < 64; i++ {
		a := randBelow(t, p)
		b := randBelow(t, p)
		sum := Add(a, b)
		require.Equal(t, 0, Cmp(Sub(sum, b), a))
	}
}

func TestMulDivQRRoundTrip(t *testing.T) {
	for i := 0; i < 64; i++ {
		a := randBelow(t, FromUint64(1<<40))
		b := addSmall(randBelow(t, FromUint64(1<<20)), 1)
		q, r := DivQR(a, b)
		require.Equal(t, -1, Cmp(r, b))
		reconstructed := Add(Mul(q, b), r)
		require.Equal(t, 0, Cmp(reconstructed, a))
	}
}

func TestModPowAdditive(t *testing.T) {
	m := smallSafePrime
	base := FromUint64(7)
	for i := 0; i < 16; i++ {
		a := randBelow(t, FromUint64(1000))
		b := randBelow(t, FromUint64(1000))
		ra, err := ModPow(base, a, m)
		require.NoError(t, err)
		rb, err := ModPow(base, b, m)
		require.NoError(t, err)
		rab, err := ModPow(base, Add(a, b), m)
		require.NoError(t, err)
		require.Equal(t, 0, Cmp(mulMod(ra, rb, m), rab))
	}
}

func TestModInvIdentity(t *testing.T) {
	m := smallSafePrime
	for i := 0; i < 32; i++ {
		a := addSmall(randBelow(t, Sub(m, One())), 1)
		inv, err := ModInv(a, m)
		require.NoError(t, err)
		require.True(t, mulMod(a, inv, m).IsOne())
	}
}

func TestLegendreMatchesQuadraticResidues(t *testing.T) {
	p := FromUint64(23)
	for v := uint64(1); v < 23; v++ {
		x := FromUint64(v)
		sym := Legendre(x, p)
		sqrt, err := ModSqrt(x, p)
		if sym == 1 {
			require.NoError(t, err)
			require.True(t, mulMod(sqrt, sqrt, p).Cmp(x) == 0)
		} else {
			require.Equal(t, -1, sym)
			require.ErrorIs(t, err, ErrNotResidue)
		}
	}
}

func TestModSqrtOnPrimeCongruentOneMod4(t *testing.T) {
	// 13 = 1 (mod 4), exercises the general Tonelli-Shanks path.
	p := FromUint64(13)
	x := FromUint64(4) // 2^2
	r, err := ModSqrt(x, p)
	require.NoError(t, err)
	require.True(t, mulMod(r, r, p).Cmp(x) == 0)
}

func TestDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		DivQR(FromUint64(5), Zero())
	})
}

func TestBytesRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		v := randBelow(t, FromUint64(1<<62))
		require.Equal(t, 0, Cmp(v, FromBytes(v.Bytes())))
	}
}

func TestDecimalStringRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		v := randBelow(t, FromUint64(1<<62))
		parsed, err := FromDecimalString(v.String())
		require.NoError(t, err)
		require.Equal(t, 0, Cmp(v, parsed))
	}
	require.Equal(t, "0", Zero().String())
	parsedZero, err := FromDecimalString("0")
	require.NoError(t, err)
	require.True(t, parsedZero.IsZero())
}

func TestDecimalStringRejectsGarbage(t *testing.T) {
	_, err := FromDecimalString("12a3")
	require.ErrorIs(t, err, ErrBadDecimal)
	_, err = FromDecimalString("")
	require.ErrorIs(t, err, ErrBadDecimal)
}

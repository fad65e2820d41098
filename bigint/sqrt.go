package bigint

import "errors"

// ErrNotResidue is returned by ModSqrt when x is not a quadratic residue
// modulo the given prime.
var ErrNotResidue = errors.New("bigint: modsqrt: value is not a quadratic residue")

// ModSqrt computes a square root of x modulo the odd prime p via the
// Tonelli–Shanks algorithm, returning an error if x is not a quadratic
// residue mod p (spec.md §4.1 error conditions).
func ModSqrt(x, p *BigInt) (*BigInt, error) {
	xr := Mod(x, p)
	if xr.IsZero() {
		return Zero(), nil
	}
	if Legendre(xr, p) != 1 {
		return nil, ErrNotResidue
	}

	// Fast path: p = 3 (mod 4).
	three := FromUint64(3)
	four := FromUint64(4)
	if Mod(p, four).Cmp(three) == 0 {
		exp := ShiftRight(Add(p, One()), 2)
		return ModPow(xr, exp, p)
	}

	// Factor p-1 = q * 2^s with q odd.
	q := Sub(p, One())
	s := 0
	for q.IsEven() {
		q = ShiftRight(q, 1)
		s++
	}

	// Find a quadratic non-residue z.
	z := FromUint64(2)
	for Legendre(z, p) != -1 {
		z = addSmall(z, 1)
	}

	m := s
	c, _ := ModPow(z, q, p)
	t, _ := ModPow(xr, q, p)
	rExp := ShiftRight(Add(q, One()), 1)
	r, _ := ModPow(xr, rExp, p)

	for {
		if t.IsOne() {
			return r, nil
		}
		// Find the least i, 0 < i < m, such that t^(2^i) == 1.
		i := 0
		tt := t.Clone()
		for !tt.IsOne() {
			tt = mulMod(tt, tt, p)
			i++
			if i == m {
				return nil, ErrNotResidue
			}
		}
		bExp := ShiftLeft(One(), m-i-1)
		b, _ := ModPow(c, bExp, p)
		m = i
		c = mulMod(b, b, p)
		t = mulMod(t, c, p)
		r = mulMod(r, b, p)
	}
}

// Cmp is a convenience method mirroring the package-level Cmp function.
func (z *BigInt) Cmp(y *BigInt) int {
	return Cmp(z, y)
}

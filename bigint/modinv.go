package bigint

import "errors"

// ErrNotInvertible is returned by ModInv when a has no inverse mod m
// (gcd(a, m) != 1).
var ErrNotInvertible = errors.New("bigint: modinv: value is not invertible")

// ModInv computes a^-1 mod m for an odd modulus m, via the binary
// extended Euclidean algorithm (HAC Algorithm 14.61): it avoids
// general-purpose division entirely, using only halving, subtraction
// and parity tests, which is why it requires m to be odd. Every modulus
// the verifier reduces by (q and p) is odd by construction.
func ModInv(a, m *BigInt) (*BigInt, error) {
	if m.IsEven() {
		return nil, errors.New("bigint: modinv: modulus must be odd")
	}
	aRed := Mod(a, m)
	if aRed.IsZero() {
		return nil, ErrNotInvertible
	}

	u := m.Clone()
	v := aRed.Clone()
	A := NewSigned(1, One())
	B := SignedBigInt{Sign: 0, Mag: Zero()}
	C := SignedBigInt{Sign: 0, Mag: Zero()}
	D := NewSigned(1, One())

	mSigned := NewSigned(1, m)
	aSigned := NewSigned(1, aRed)

	for !u.IsZero() {
		for u.IsEven() {
			u = ShiftRight(u, 1)
			if A.Mag.IsEven() && B.Mag.IsEven() {
				A = halve(A)
				B = halve(B)
			} else {
				A = halve(A.Add(aSigned))
				B = halve(B.Add(mSigned.Negate()))
			}
		}
		for v.IsEven() {
			v = ShiftRight(v, 1)
			if C.Mag.IsEven() && D.Mag.IsEven() {
				C = halve(C)
				D = halve(D)
			} else {
				C = halve(C.Add(aSigned))
				D = halve(D.Add(mSigned.Negate()))
			}
		}
		if Cmp(u, v) >= 0 {
			u = Sub(u, v)
			A = A.Add(C.Negate())
			B = B.Add(D.Negate())
		} else {
			v = Sub(v, u)
			C = C.Add(A.Negate())
			D = D.Add(B.Negate())
		}
	}

	if !v.IsOne() {
		return nil, ErrNotInvertible
	}
	return D.Mod(m), nil
}

// halve divides a signed value known to be even by two, preserving sign.
func halve(s SignedBigInt) SignedBigInt {
	if s.Sign == 0 {
		return s
	}
	return NewSigned(s.Sign, ShiftRight(s.Mag, 1))
}

// Legendre computes the Legendre symbol (x|p) for an odd prime p, via
// Euler's criterion x^((p-1)/2) mod p, returning -1, 0 or 1.
func Legendre(x, p *BigInt) int {
	xr := Mod(x, p)
	if xr.IsZero() {
		return 0
	}
	exp := ShiftRight(Sub(p, One()), 1)
	r, err := ModPow(xr, exp, p)
	if err != nil {
		panic(err)
	}
	if r.IsOne() {
		return 1
	}
	return -1
}

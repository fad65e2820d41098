package bigint

// SignedBigInt pairs a sign in {-1, 0, 1} with a non-negative magnitude;
// the sign is 0 exactly when the magnitude is zero. It exists solely to
// carry intermediate negative results inside the extended binary GCD
// (ModInv) and Tonelli–Shanks (ModSqrt) routines — production
// exponentiation and the rest of the public API work on unsigned
// magnitudes only (spec.md §9, "Signed integers").
type SignedBigInt struct {
	Sign int // -1, 0 or 1
	Mag  *BigInt
}

// NewSigned builds a SignedBigInt, normalizing the sign to 0 when mag is
// zero regardless of the requested sign.
func NewSigned(sign int, mag *BigInt) SignedBigInt {
	if mag.IsZero() {
		return SignedBigInt{Sign: 0, Mag: Zero()}
	}
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	return SignedBigInt{Sign: sign, Mag: mag}
}

// Add returns x + y for signed magnitudes.
func (x SignedBigInt) Add(y SignedBigInt) SignedBigInt {
	if x.Sign == 0 {
		return y
	}
	if y.Sign == 0 {
		return x
	}
	if x.Sign == y.Sign {
		return NewSigned(x.Sign, Add(x.Mag, y.Mag))
	}
	switch Cmp(x.Mag, y.Mag) {
	case 0:
		return SignedBigInt{Sign: 0, Mag: Zero()}
	case 1:
		return NewSigned(x.Sign, Sub(x.Mag, y.Mag))
	default:
		return NewSigned(y.Sign, Sub(y.Mag, x.Mag))
	}
}

// Negate returns -x.
func (x SignedBigInt) Negate() SignedBigInt {
	return SignedBigInt{Sign: -x.Sign, Mag: x.Mag}
}

// Mul returns x * y for signed magnitudes.
func (x SignedBigInt) Mul(y SignedBigInt) SignedBigInt {
	if x.Sign == 0 || y.Sign == 0 {
		return SignedBigInt{Sign: 0, Mag: Zero()}
	}
	return NewSigned(x.Sign*y.Sign, Mul(x.Mag, y.Mag))
}

// Mod reduces x into [0, m) as an unsigned BigInt.
func (x SignedBigInt) Mod(m *BigInt) *BigInt {
	r := Mod(x.Mag, m)
	if x.Sign >= 0 || r.IsZero() {
		return r
	}
	return Sub(m, r)
}

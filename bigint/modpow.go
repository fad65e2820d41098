package bigint

import "errors"

// ErrBadModPowArgs is returned by ModPow for a negative exponent or a
// non-positive modulus (spec.md §4.1 error conditions). Negative bases
// are not representable by BigInt at all — callers reduce first.
var ErrBadModPowArgs = errors.New("bigint: modpow: negative exponent or non-positive modulus")

// windowWidth picks the fixed-width exponentiation window as a function
// of the modulus bit length, matching the schedule in spec.md §4.1:
// small at small sizes, growing to 8 at 4096+ bits.
func windowWidth(modBits int) uint {
	switch {
	case modBits >= 4096:
		return 8
	case modBits >= 2048:
		return 6
	case modBits >= 1024:
		return 5
	case modBits >= 256:
		return 4
	case modBits >= 64:
		return 3
	default:
		return 2
	}
}

// ModPow computes base^exp mod m using left-to-right sliding-window
// exponentiation (each window of at most k bits ends on a set bit):
// base^(2i+1) is precomputed for i < 2^(k-1), where k
// is chosen from windowWidth(m.BitLen()).
func ModPow(base, exp, m *BigInt) (*BigInt, error) {
	if m.IsZero() {
		return nil, ErrBadModPowArgs
	}
	if exp.IsZero() {
		return Mod(One(), m), nil
	}

	k := windowWidth(m.BitLen())
	tableSize := 1 << (k - 1)
	b := Mod(base, m)

	// odd[i] holds b^(2i+1) mod m for i in [0, tableSize).
	odd := make([]*BigInt, tableSize)
	odd[0] = b
	bSquared := mulMod(b, b, m)
	for i := 1; i < tableSize; i++ {
		odd[i] = mulMod(odd[i-1], bSquared, m)
	}

	result := One()
	n := exp.BitLen()
	i := n - 1
	for i >= 0 {
		if !exp.Bit(i) {
			result = mulMod(result, result, m)
			i--
			continue
		}
		// Find the widest window of at most k bits ending at i whose low
		// bit is set, so the table lookup below indexes an odd value.
		lo := i - int(k) + 1
		if lo < 0 {
			lo = 0
		}
		for !exp.Bit(lo) {
			lo++
		}
		width := i - lo + 1
		for s := 0; s < width; s++ {
			result = mulMod(result, result, m)
		}
		value := windowValue(exp, lo, width)
		result = mulMod(result, odd[(value-1)/2], m)
		i = lo - 1
	}
	return result, nil
}

// windowValue extracts the integer formed by exp's bits [lo, lo+width).
func windowValue(exp *BigInt, lo, width int) int {
	v := 0
	for j := width - 1; j >= 0; j-- {
		v <<= 1
		if exp.Bit(lo + j) {
			v |= 1
		}
	}
	return v
}

func mulMod(a, b, m *BigInt) *BigInt {
	return Mod(Mul(a, b), m)
}

// ModProdPow computes the simultaneous exponentiation
// prod_i base[i]^exp[i] mod m using a 2^k-entry product table, per
// spec.md §4.1. Slicing one exponent across k bases (with the others
// held at the identity) recovers a fixed-base single-exponent
// exponentiation from the same table.
func ModProdPow(bases, exps []*BigInt, m *BigInt) (*BigInt, error) {
	if len(bases) != len(exps) || len(bases) == 0 {
		return nil, errors.New("bigint: modprodpow: mismatched or empty operand vectors")
	}
	if m.IsZero() {
		return nil, ErrBadModPowArgs
	}
	k := len(bases)
	tableSize := 1 << uint(k)
	table := make([]*BigInt, tableSize)
	table[0] = Mod(One(), m)
	for mask := 1; mask < tableSize; mask++ {
		lowBit := mask & (-mask)
		idx := 0
		for (1 << idx) != lowBit {
			idx++
		}
		table[mask] = mulMod(table[mask&^lowBit], Mod(bases[idx], m), m)
	}

	maxBits := 0
	for _, e := range exps {
		if e.BitLen() > maxBits {
			maxBits = e.BitLen()
		}
	}

	result := Mod(One(), m)
	for i := maxBits - 1; i >= 0; i-- {
		result = mulMod(result, result, m)
		mask := 0
		for j, e := range exps {
			if e.Bit(i) {
				mask |= 1 << uint(j)
			}
		}
		if mask != 0 {
			result = mulMod(result, table[mask], m)
		}
	}
	return result, nil
}

package bigint

import "errors"

// ErrBadDecimal is returned by FromDecimalString when s is not a
// non-empty sequence of ASCII decimal digits.
var ErrBadDecimal = errors.New("bigint: not a valid decimal string")

// FromDecimalString parses s as an unsigned base-10 integer — the wire
// format every big natural number in an election record uses (spec.md
// §6: "Every big natural number on the wire is a decimal string").
func FromDecimalString(s string) (*BigInt, error) {
	if len(s) == 0 {
		return nil, ErrBadDecimal
	}
	z := Zero()
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, ErrBadDecimal
		}
		z = addSmall(mulSmall(z, 10), uint64(c-'0'))
	}
	return z, nil
}

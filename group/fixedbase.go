package group

import "github.com/takakv/egverify/bigint"

// fixedBaseTable precomputes base^(2^i) mod p for every bit position up
// to the group order's bit length, so that a later Exp(base, s) reduces
// to a product of precomputed powers selected by the set bits of s,
// instead of a fresh square-and-multiply ladder. This is the "amortized
// over n later exp calls" table spec.md §4.4 describes; the table is
// built once regardless of n — n only signals that the caller intends
// to reuse it, which is the condition under which building it pays off.
type fixedBaseTable struct {
	p      *bigint.BigInt
	powers []*bigint.BigInt // powers[i] = base^(2^i) mod p
}

func newFixedBaseTable(base, p *bigint.BigInt, orderBits, n int) *fixedBaseTable {
	width := orderBits + 1
	powers := make([]*bigint.BigInt, width)
	cur := bigint.Mod(base, p)
	for i := 0; i < width; i++ {
		powers[i] = cur
		cur = bigint.Mod(bigint.Mul(cur, cur), p)
	}
	return &fixedBaseTable{p: p, powers: powers}
}

// exp multiplies together the precomputed powers selected by the set
// bits of s. Every exponent this verifier ever raises a fixed base to
// is a field element already reduced mod the group order, so it never
// exceeds the table built in newFixedBaseTable.
func (t *fixedBaseTable) exp(s *bigint.BigInt) *bigint.BigInt {
	result := bigint.Mod(bigint.One(), t.p)
	for i := 0; i < s.BitLen() && i < len(t.powers); i++ {
		if !s.Bit(i) {
			continue
		}
		result = bigint.Mod(bigint.Mul(result, t.powers[i]), t.p)
	}
	return result
}

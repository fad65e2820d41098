package record

import (
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
)

// BuildGroup constructs the ModPGroup and scalar field declared by the
// record's parameters, using the fixed baseline order q — q is never
// carried on the wire (spec.md §6).
func BuildGroup(p Parameters, q *bigint.BigInt) (*group.ModPGroup, *field.Field, error) {
	prime, err := bigint.FromDecimalString(p.Prime)
	if err != nil {
		return nil, nil, NewTypedError(CodeAlphaLoading, "parameters.prime: %v", err)
	}
	gen, err := bigint.FromDecimalString(p.Generator)
	if err != nil {
		return nil, nil, NewTypedError(CodeAlphaLoading, "parameters.generator: %v", err)
	}
	grp := group.NewModPGroup("record", prime, q, gen)
	return grp, field.NewField(q), nil
}

// ValidateParameters checks g^q = 1 mod p for grp — the membership
// check spec.md §4.4 requires the core to perform whenever parameters
// arrive on the wire, rather than assuming it as it would for named
// baseline parameters.
func ValidateParameters(grp *group.ModPGroup) bool {
	return grp.GeneratorSatisfiesOrder()
}

// ParseGroupElt parses a decimal-string wire value into an element of
// g, tagging any parse or membership failure with code.
func ParseGroupElt(g group.Group, s string, code Code, what string) (group.Elt, error) {
	v, err := bigint.FromDecimalString(s)
	if err != nil {
		return nil, NewTypedError(code, "%s: %v", what, err)
	}
	e, err := g.EltFromBytes(v.Bytes())
	if err != nil {
		return nil, NewTypedError(code, "%s: %v", what, err)
	}
	return e, nil
}

// ParseFieldElt parses a decimal-string wire value into an element of
// f, tagging any failure with code.
func ParseFieldElt(f *field.Field, s string, code Code, what string) (field.Elt, error) {
	v, err := bigint.FromDecimalString(s)
	if err != nil {
		return field.Elt{}, NewTypedError(code, "%s: %v", what, err)
	}
	return f.NewElt(v), nil
}

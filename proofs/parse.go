// Package proofs adapts the on-wire proof shapes of the election
// record JSON — decimal-string-encoded group and field elements — to
// the sigma verifiers in package sigma (spec.md §4.6). Each adaptation
// function returns a structural parse error distinctly from a failed
// verification: a non-nil error means the wire value itself could not
// be parsed into a group or field element, carrying the stable code
// the verification tree reports as a failure predicate; a nil error
// with a false result means the proof parsed but did not verify.
package proofs

import (
	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
	"github.com/takakv/egverify/record"
)

func parseFieldElt(f *field.Field, s string, code record.Code, what string) (field.Elt, error) {
	v, err := bigint.FromDecimalString(s)
	if err != nil {
		return field.Elt{}, record.NewTypedError(code, "%s: %v", what, err)
	}
	return f.NewElt(v), nil
}

func parseGroupElt(g group.Group, s string, code record.Code, what string) (group.Elt, error) {
	v, err := bigint.FromDecimalString(s)
	if err != nil {
		return nil, record.NewTypedError(code, "%s: %v", what, err)
	}
	e, err := g.EltFromBytes(v.Bytes())
	if err != nil {
		return nil, record.NewTypedError(code, "%s: %v", what, err)
	}
	return e, nil
}

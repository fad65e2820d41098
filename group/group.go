// Package group implements the order-q subgroup of Z*p (ModPGroup) and
// its finite products (PPGroup) that ElGamal ciphertexts, Schnorr
// instances and Chaum–Pedersen/CDS proofs live in (spec.md §4.4).
//
// The element API is multiplicative (Mul/Inv/Exp) rather than the
// additive Add/Scale/BaseScale API the teacher repository's elliptic
// curve groups expose, because every group this verifier's record
// format actually uses is a multiplicative subgroup of Z*p — see
// DESIGN.md for why the teacher's elliptic-curve backends have no role
// here.
package group

import (
	"encoding"
	"errors"

	"github.com/takakv/egverify/bigint"
	"github.com/takakv/egverify/bytetree"
)

// ErrCrossGroup is the panic value raised when two elements of
// different groups are combined — a programming error, not a
// predicate failure (spec.md §3, "Ownership").
var ErrCrossGroup = errors.New("group: cross-group operation")

// ErrUnsupportedEncoding is returned when a group is constructed with
// an encoding other than "safe-prime", the only one the verifier
// supports (spec.md §4.4).
var ErrUnsupportedEncoding = errors.New("group: unsupported encoding")

// ErrNotInGroup is returned when bytes do not decode to a valid element
// of the group: out of range, or not a quadratic residue under the
// safe-prime encoding.
var ErrNotInGroup = errors.New("group: value is not a member of the group")

// Elt is a group element: a scalar group element or a product-group
// element, depending on which Group constructed it. Every exported
// operation is the "small capability trait" design note in spec.md §9:
// mul, inverse, exponentiate, serialize.
type Elt interface {
	// Mul sets the receiver to x*y and returns it.
	Mul(x, y Elt) Elt
	// Inv sets the receiver to x^-1 and returns it.
	Inv(x Elt) Elt
	// Exp sets the receiver to x^s and returns it. s broadcasts across
	// every component of a product-group element.
	Exp(x Elt, s *bigint.BigInt) Elt
	// Set copies x into the receiver and returns it.
	Set(x Elt) Elt
	// Equal reports whether the receiver equals x.
	Equal(x Elt) bool
	// IsIdentity reports whether the receiver is the group's identity.
	IsIdentity() bool
	// Bytes returns the fixed-width encoding of the receiver.
	Bytes() []byte
	// ByteTree returns the byte-tree encoding used for Fiat-Shamir
	// hashing: a leaf for a scalar element, a node of leaves for a
	// product element.
	ByteTree() bytetree.ByteTree

	encoding.BinaryMarshaler
}

// Group is a (possibly product) group in which ElGamal ciphertexts and
// sigma-protocol instances live.
type Group interface {
	// Name identifies the group, e.g. for diagnostic output.
	Name() string
	// NewElt allocates a zero-valued element belonging to this group.
	NewElt() Elt
	// Generator returns the group's distinguished generator.
	Generator() Elt
	// Identity returns the group's identity element.
	Identity() Elt
	// P returns the field modulus (the safe prime p for a ModPGroup).
	P() *bigint.BigInt
	// Q returns the group order.
	Q() *bigint.BigInt
	// EltFromBytes decodes bytes into an element, verifying group
	// membership (range and, for safe-prime encoding, quadratic
	// residuosity), per spec.md §4.4.
	EltFromBytes(b []byte) (Elt, error)
	// EltFromByteTree decodes an element from its byte-tree shape.
	EltFromByteTree(t bytetree.ByteTree) (Elt, error)
	// Encode maps a message of at most Group.EncodeLen() bytes to a
	// group element, per spec.md §4.4.
	Encode(msg []byte) (Elt, error)
	// Decode recovers the message bytes from an element produced by
	// Encode.
	Decode(e Elt) ([]byte, error)
	// EncodeLen returns the maximum message length accepted by Encode.
	EncodeLen() int
}

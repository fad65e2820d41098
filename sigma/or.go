package sigma

import (
	"crypto/sha256"

	"github.com/takakv/egverify/bytetree"
	"github.com/takakv/egverify/field"
	"github.com/takakv/egverify/group"
)

// ORInstance is one branch of a Sigma-OR (Cramer–Damgård–Schoenmakers)
// disjunction: the Schnorr instance the branch proves knowledge of a
// witness for. It carries no separate message field; a branch's
// expected plaintext is folded into its image by the caller, as
// proofs.VerifyZeroOrOne does with (A, B·g⁻¹) for the "one" branch.
type ORInstance struct {
	SchnorrInstance
}

// ORBranchProof is one branch's (commitment, challenge, response)
// triple. A valid disjunction proof supplies one such triple per
// branch, where exactly one branch was produced with real witness
// knowledge and the others were simulated — but from the verifier's
// side every branch is checked identically.
type ORBranchProof struct {
	SchnorrProof
}

// ORProof is a complete Sigma-OR proof: one branch proof per
// disjunct, plus the overall hash-derived challenge the branch
// challenges must sum to.
type ORProof struct {
	Branches  []ORBranchProof
	Challenge field.Elt
}

// VerifyOR checks a Sigma-OR proof over n instances (n = 2 for the
// "zero-or-one" ballot-selection proof spec.md §4.5 describes, but the
// composition generalizes to any n): every branch's Schnorr equation
// must hold under its own claimed per-branch challenge, and the
// per-branch challenges must sum to the overall Fiat-Shamir challenge
// derived from (label, all instances, all commitments) — this is the
// CDS trick that lets exactly one branch be proved honestly while the
// others are simulated, without the verifier learning which.
//
// failFast controls whether VerifyOR stops at the first failing
// branch (true) or checks every branch before reporting failure
// (false), matching verify.Options{FailFast} (spec.md §4.7): the
// non-fail-fast path is used when a diagnostic recorder wants to
// report every broken branch, not just the first.
func VerifyOR(f *field.Field, label string, insts []ORInstance, proof ORProof, failFast bool) bool {
	if len(insts) != len(proof.Branches) || len(insts) == 0 {
		return false
	}

	commitmentTrees := make([]bytetree.ByteTree, len(insts))
	ok := true
	sum := f.Zero()
	for i, inst := range insts {
		branch := proof.Branches[i]
		if !checkSchnorrEquation(inst.SchnorrInstance, branch.SchnorrProof) {
			if failFast {
				return false
			}
			ok = false
		}
		sum = field.Add(sum, branch.Challenge)
		commitmentTrees[i] = branch.Commitment.ByteTree()
	}
	if !ok {
		return false
	}

	computed := challengeOverMany(f, label, insts, commitmentTrees)
	if !computed.Equal(proof.Challenge) {
		return false
	}
	return sum.Equal(proof.Challenge)
}

// ChallengeOR derives the Sigma-OR overall challenge from the label,
// every instance's image, and every branch commitment. It is exported
// so that code constructing a Sigma-OR proof (such as the proofs
// package's record adapters and this package's own tests) can derive
// the same challenge VerifyOR recomputes, without duplicating the
// byte-tree layering.
func ChallengeOR(f *field.Field, label string, insts []ORInstance, commitments []group.Elt) field.Elt {
	trees := make([]bytetree.ByteTree, len(commitments))
	for i, c := range commitments {
		trees[i] = c.ByteTree()
	}
	return challengeOverMany(f, label, insts, trees)
}

// challengeOverMany derives the overall Sigma-OR challenge from the
// label, every branch instance's image, and every branch commitment,
// packed as a single node whose children are (label, instance nodes,
// commitment nodes) — the multi-instance generalization of Challenge.
func challengeOverMany(f *field.Field, label string, insts []ORInstance, commitments []bytetree.ByteTree) field.Elt {
	instanceNodes := make([]bytetree.ByteTree, len(insts))
	for i, inst := range insts {
		instanceNodes[i] = inst.Image.ByteTree()
	}
	node := bytetree.NewNode(
		bytetree.NewLeaf([]byte(label)),
		bytetree.NewNode(instanceNodes...),
		bytetree.NewNode(commitments...),
	)
	digest := sha256.Sum256(node.Encode())
	return f.EltFromBytes(digest[:])
}

package record

import "github.com/takakv/egverify/proofs"

// Parameters is the wire shape of an election's public parameters
// (spec.md §3, "Parameters"). Order q is never carried on the wire: it
// is always the baseline constant, per spec.md §6.
type Parameters struct {
	NumTrustees int    `json:"num_trustees"`
	Threshold   int    `json:"threshold"`
	Prime       string `json:"prime"`
	Generator   string `json:"generator"`
	Date        string `json:"date,omitempty"`
}

// Coefficient is one cell of the n*t trustee coefficient commitment
// matrix (spec.md §3, "Trustee coefficient commitments").
type Coefficient struct {
	Commitment string               `json:"commitment"`
	Proof      proofs.SchnorrRecord `json:"proof"`
}

// TrusteeKeys is one trustee's row of t coefficient commitments.
type TrusteeKeys struct {
	Coefficients []Coefficient `json:"coefficients"`
}

// Ciphertext is an ElGamal pair (alpha, beta) = (g^r, K^r*g^m).
type Ciphertext struct {
	Alpha string `json:"alpha"`
	Beta  string `json:"beta"`
}

// Selection is one cast-ballot selection: a ciphertext and its
// zero-or-one proof (spec.md §3, "Encrypted ballots").
type Selection struct {
	Ciphertext Ciphertext            `json:"ciphertext"`
	Proof      proofs.ZeroOrOneRecord `json:"proof"`
}

// Contest is one contest within a cast ballot: its selections, the
// declared maximum number of selections, and the Chaum-Pedersen proof
// that the homomorphic sum encodes exactly max_selections.
type Contest struct {
	Selections    []Selection               `json:"selections"`
	MaxSelections int                       `json:"max_selections"`
	SumProof      proofs.ChaumPedersenRecord `json:"sum_proof"`
}

// Ballot is one cast ballot: an ordered sequence of contests.
type Ballot struct {
	Contests []Contest `json:"contests"`
}

// Share is one trustee's decryption share of a tallied or spoiled
// selection, with its Chaum-Pedersen share-correctness proof.
type Share struct {
	TrusteeIndex int                       `json:"trustee_index"`
	Value        string                    `json:"value"`
	Proof        proofs.ChaumPedersenRecord `json:"proof"`
}

// TallySelection is one selection's aggregated tally: the encrypted
// tally, the claimed plaintext exponentiation g^m, the per-trustee
// decryption shares, and the cleartext m itself.
type TallySelection struct {
	EncryptedTally  Ciphertext `json:"encrypted_tally"`
	DecryptedTally  string     `json:"decrypted_tally"`
	Shares          []Share    `json:"shares"`
	Cleartext       string     `json:"cleartext"`
	// BallotCiphertexts lists the per-ballot selection ciphertexts this
	// tally aggregates, so TallySum can recompute their homomorphic
	// product; empty for a spoiled-ballot selection (spec.md §4.7,
	// "Spoiled ballot").
	BallotCiphertexts []Ciphertext `json:"ballot_ciphertexts,omitempty"`
}

// TallyContest is one contest's tallied selections.
type TallyContest struct {
	Selections []TallySelection `json:"selections"`
}

// SpoiledContest is one contest of a spoiled ballot: per-selection
// decryption data plus the declared maximum selections for the
// per-contest cleartext-sum check (spec.md §4.7, "Spoiled ballot").
type SpoiledContest struct {
	Selections    []TallySelection `json:"selections"`
	MaxSelections int              `json:"max_selections"`
}

// SpoiledBallot is one spoiled ballot: decrypted selection-wise,
// structured like a set of tally contests but without cross-ballot
// aggregation.
type SpoiledBallot struct {
	Contests []SpoiledContest `json:"contests"`
}

// ElectionRecord is the top-level wire document (spec.md §6, "Record
// file format").
type ElectionRecord struct {
	Parameters        Parameters      `json:"parameters"`
	TrusteePublicKeys  []TrusteeKeys   `json:"trustee_public_keys"`
	JointPublicKey     string          `json:"joint_public_key"`
	BaseHash           string          `json:"base_hash"`
	ExtendedBaseHash   string          `json:"extended_base_hash"`
	CastBallots        []Ballot        `json:"cast_ballots"`
	ContestTallies     []TallyContest  `json:"contest_tallies"`
	SpoiledBallots     []SpoiledBallot `json:"spoiled_ballots"`
}

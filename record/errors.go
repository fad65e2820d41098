// Package record holds the election-record data model: the typed
// shapes parsed from the wire JSON, the stable error codes spec.md §7
// names, and the schema/parameter validation the verification tree
// relies on before it ever walks a record (spec.md §6/§7).
package record

import (
	"errors"
	"fmt"
)

// Code is a stable, test-observable failure identifier — spec.md §7:
// "The code is the stable test-observable identifier; the message is
// advisory."
type Code string

const (
	CodeAlphaLoading                 Code = "AlphaLoading"
	CodeShareLoading                 Code = "ShareLoading"
	CodeSharesLoading                Code = "SharesLoading"
	CodeLoadingBallots               Code = "LoadingBallots"
	CodeDecryptionData               Code = "DecryptionData"
	CodeCleartextMatches             Code = "CleartextMatches"
	CodeTallySum                     Code = "TallySum"
	CodeChaumPedersenProof           Code = "ChaumPedersenProof"
	CodeZeroOrOneProof               Code = "ZeroOrOneProof"
	CodeSchnorrProof                 Code = "SchnorrProof"
	CodeCoefficientCommitmentLoading Code = "CoefficientCommitmentLoading"
	CodeCastBallot                   Code = "CastBallot"
)

// TypedError is the tagged-variant failure shape spec.md §7 and §9
// ("No exceptions across the verification walk") call for: a stable
// code plus a human-readable message, returned as a plain Go error
// value rather than raised as a panic or a language-level exception.
type TypedError struct {
	Code    Code
	Message string
}

func (e *TypedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewTypedError builds a TypedError with the given code and message.
func NewTypedError(code Code, format string, args ...any) *TypedError {
	return &TypedError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the Code from err if it is (or wraps) a *TypedError,
// reporting ok = false otherwise.
func CodeOf(err error) (Code, bool) {
	var te *TypedError
	if !errors.As(err, &te) {
		return "", false
	}
	return te.Code, true
}

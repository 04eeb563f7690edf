package localtoken

import (
	"errors"
	"fmt"
)

// Parse failure reasons. Every parse failure surfaces as a *TokenParseError
// wrapping exactly one of these, so callers that want finer diagnostics can
// match with errors.Is while the public surface stays a single error type.
var (
	// ErrMalformedPrefix means the input does not carry the variant's
	// prefix tag. Rejected before any decryption is attempted.
	ErrMalformedPrefix = errors.New("token prefix missing or wrong")

	// ErrMissingIssuer means no issuer was supplied to parse.
	// Rejected before any decryption is attempted.
	ErrMissingIssuer = errors.New("issuer must not be empty")

	// ErrDecryptionFailure means the ciphertext could not be opened under
	// the key derived for the supplied issuer: the token is corrupted,
	// tampered with, or was minted for a different issuer.
	ErrDecryptionFailure = errors.New("token decryption failed")

	// ErrFieldCountMismatch means the decrypted payload split into a
	// different number of fields than the variant's layout requires.
	ErrFieldCountMismatch = errors.New("unexpected wire field count")

	// ErrFieldFormat means an individual field failed its typed decode:
	// a non-numeric timestamp or lifespan, a malformed subject, issuer, or
	// role URL, or an embedded issuer differing from the supplied one.
	ErrFieldFormat = errors.New("malformed token field")
)

// TokenParseError is the only error type returned by the parse entry points.
// Parsing is all-or-nothing: a TokenParseError is never accompanied by a
// partially populated record.
type TokenParseError struct {
	Reason string
	Err    error
}

func (e *TokenParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token parse failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("token parse failed: %s", e.Reason)
}

func (e *TokenParseError) Unwrap() error {
	return e.Err
}

func newParseError(reason string, err error) *TokenParseError {
	return &TokenParseError{Reason: reason, Err: err}
}

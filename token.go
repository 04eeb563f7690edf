package localtoken

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Token is the decrypted form of a cell-local credential. A record is built
// once at issuance or reconstructed whole by parse and never mutated.
//
// Issuer is security-relevant, not merely descriptive: besides being a wire
// field it is the input from which the encryption key material is derived,
// so a token can only be opened by a codec holding the same master key and
// expecting the same issuer.
//
// Fields:
//   - IssuedAt: Issuance time in milliseconds since the epoch
//   - Lifespan: Validity window in milliseconds; zero means "use the codec's configured default for the variant"
//   - Issuer: Cell root URL of the issuing authority
//   - Subject: URL of the principal the credential authorizes
//   - Schema: Client-authenticated data schema; empty when none was presented
//   - Roles: Ordered roles granted to the subject; may be empty
type Token struct {
	IssuedAt int64
	Lifespan int64
	Issuer   string
	Subject  string
	Schema   string
	Roles    []Role
}

// NewToken builds a record with an explicit issuance time and lifespan.
func NewToken(issuedAt, lifespan int64, issuer, subject string, roles []Role, schema string) *Token {
	return &Token{
		IssuedAt: issuedAt,
		Lifespan: lifespan,
		Issuer:   issuer,
		Subject:  subject,
		Schema:   schema,
		Roles:    roles,
	}
}

// NewTokenIssuedNow builds a record issued at the current time whose
// lifespan defaults to the codec's configured duration at encode time.
func NewTokenIssuedNow(issuer, subject string, roles []Role, schema string) *Token {
	return NewToken(time.Now().UnixMilli(), 0, issuer, subject, roles, schema)
}

// ID returns the record's identity key, subject joined with the issuance
// time. Reissuing for the same subject yields a new identity because the
// issuance time changes.
func (t *Token) ID() string {
	return t.Subject + ":" + strconv.FormatInt(t.IssuedAt, 10)
}

// ExpiresAt returns the instant the credential stops being valid.
func (t *Token) ExpiresAt() time.Time {
	return time.UnixMilli(t.IssuedAt + t.Lifespan)
}

// IsExpiredAt reports whether the credential is expired at now. Parse never
// rejects an expired token; callers apply this check themselves.
func (t *Token) IsExpiredAt(now time.Time) bool {
	return now.After(t.ExpiresAt())
}

func validateRecord(t *Token) error {
	if t == nil {
		return errors.New("nil token record")
	}
	if t.IssuedAt < 0 {
		return fmt.Errorf("issuedAt must not be negative: %d", t.IssuedAt)
	}
	if t.Lifespan < 0 {
		return fmt.Errorf("lifespan must not be negative: %d", t.Lifespan)
	}
	if err := validateCredentialURL(t.Issuer); err != nil {
		return fmt.Errorf("invalid issuer: %w", err)
	}
	if err := validateCredentialURL(t.Subject); err != nil {
		return fmt.Errorf("invalid subject: %w", err)
	}
	return nil
}

// validateCredentialURL requires a non-empty absolute URL with a host, the
// shape shared by issuer, subject, and role values.
func validateCredentialURL(s string) error {
	if s == "" {
		return errors.New("empty URL")
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("malformed URL %q: %w", s, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("URL %q is not absolute", s)
	}
	return nil
}

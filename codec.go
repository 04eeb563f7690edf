package localtoken

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Wire prefixes distinguishing token families before any decryption.
const (
	PrefixAccessToken       = "AL~"
	PrefixAuthorizationCode = "GC~"
)

// codeMarker is the literal written to the marker slot of authorization
// codes. Parse reads the slot and discards it without comparing, so codes
// minted before a future literal change stay parseable.
const codeMarker = "CODE"

// layout describes one wire variant: its prefix tag, total slot count, and
// the slot index of each record field.
type layout struct {
	prefix      string
	fieldCount  int
	marker      bool // literal marker slot directly after the timestamp
	idxIssuedAt int
	idxLifespan int
	idxSubject  int
	idxSchema   int
	idxRoles    int
	idxIssuer   int
}

var (
	accessLayout = layout{
		prefix:      PrefixAccessToken,
		fieldCount:  6,
		idxIssuedAt: 0,
		idxLifespan: 1,
		idxSubject:  2,
		idxSchema:   3,
		idxRoles:    4,
		idxIssuer:   5,
	}

	// The marker slot shifts every field after the timestamp by one.
	codeLayout = layout{
		prefix:      PrefixAuthorizationCode,
		fieldCount:  7,
		marker:      true,
		idxIssuedAt: 0,
		idxLifespan: 2,
		idxSubject:  3,
		idxSchema:   4,
		idxRoles:    5,
		idxIssuer:   6,
	}
)

// Codec encodes token records into opaque credential strings and parses
// them back.
//
// Methods:
//   - EncodeAccessToken: Renders a record as an "AL~"-prefixed access token
//   - EncodeAuthorizationCode: Renders a record as a "GC~"-prefixed authorization code
//   - ParseAccessToken: Reconstructs a record from an access token string
//   - ParseAuthorizationCode: Reconstructs a record from an authorization code string
type Codec interface {
	EncodeAccessToken(t *Token) (string, error)
	EncodeAuthorizationCode(t *Token) (string, error)
	ParseAccessToken(tokenString, issuer string) (*Token, error)
	ParseAuthorizationCode(codeString, issuer string) (*Token, error)
}

// CellCodec is the concrete Codec implementation. It holds only immutable
// configuration and is safe for concurrent use.
type CellCodec struct {
	config Config
}

// NewCodec validates the configuration and returns a ready Codec.
func NewCodec(config Config) (Codec, error) {
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid codec config: %w", err)
	}
	return &CellCodec{config: config}, nil
}

// EncodeAccessToken renders the record in the 6-slot access layout and
// returns the "AL~"-prefixed credential string.
func (c *CellCodec) EncodeAccessToken(t *Token) (string, error) {
	return c.encode(t, accessLayout, c.config.AccessTokenDuration)
}

// EncodeAuthorizationCode renders the record in the 7-slot code layout,
// marker slot included, and returns the "GC~"-prefixed credential string.
func (c *CellCodec) EncodeAuthorizationCode(t *Token) (string, error) {
	return c.encode(t, codeLayout, c.config.AuthorizationCodeDuration)
}

// ParseAccessToken reconstructs a record from an access token string minted
// by the given issuer.
func (c *CellCodec) ParseAccessToken(tokenString, issuer string) (*Token, error) {
	return c.parse(tokenString, issuer, accessLayout)
}

// ParseAuthorizationCode reconstructs a record from an authorization code
// string minted by the given issuer.
func (c *CellCodec) ParseAuthorizationCode(codeString, issuer string) (*Token, error) {
	return c.parse(codeString, issuer, codeLayout)
}

// encode is the shared engine behind both encode entry points,
// parameterized by the variant layout and its default lifespan.
func (c *CellCodec) encode(t *Token, lay layout, defaultLifespan time.Duration) (string, error) {
	if err := validateRecord(t); err != nil {
		return "", fmt.Errorf("invalid token record: %w", err)
	}
	lifespan := t.Lifespan
	if lifespan == 0 {
		lifespan = defaultLifespan.Milliseconds()
	}

	fields := make([]string, lay.fieldCount)
	fields[lay.idxIssuedAt] = obfuscateTimestamp(t.IssuedAt)
	if lay.marker {
		fields[lay.idxIssuedAt+1] = codeMarker
	}
	fields[lay.idxLifespan] = strconv.FormatInt(lifespan, 10)
	fields[lay.idxSubject] = t.Subject
	fields[lay.idxSchema] = t.Schema
	fields[lay.idxRoles] = encodeRoles(t.Roles)
	fields[lay.idxIssuer] = t.Issuer

	sealed, err := sealFields(fields, c.config.MasterKey, t.Issuer)
	if err != nil {
		return "", fmt.Errorf("failed to seal token fields: %w", err)
	}
	return lay.prefix + sealed, nil
}

// parse is the shared engine behind both parse entry points. It fails
// closed: any defect in the input yields a *TokenParseError and no record.
func (c *CellCodec) parse(s, issuer string, lay layout) (*Token, error) {
	// Prefix and issuer gate the call before any cipher work is spent.
	if !strings.HasPrefix(s, lay.prefix) {
		return nil, newParseError(fmt.Sprintf("expected %q prefix", lay.prefix), ErrMalformedPrefix)
	}
	if issuer == "" {
		return nil, newParseError("no issuer supplied", ErrMissingIssuer)
	}

	frag, err := openFields(s[len(lay.prefix):], c.config.MasterKey, issuer, lay.fieldCount)
	if err != nil {
		return nil, newParseError("cannot recover token fields", err)
	}
	// For codes, the marker slot at idxIssuedAt+1 is read and discarded.

	issuedAt, err := deobfuscateTimestamp(frag[lay.idxIssuedAt])
	if err != nil {
		return nil, newParseError("bad issuance timestamp", fmt.Errorf("%w: %v", ErrFieldFormat, err))
	}
	lifespan, err := strconv.ParseInt(frag[lay.idxLifespan], 10, 64)
	if err != nil {
		return nil, newParseError("bad lifespan", fmt.Errorf("%w: %v", ErrFieldFormat, err))
	}
	if lifespan <= 0 {
		return nil, newParseError("bad lifespan", fmt.Errorf("%w: lifespan %d is not positive", ErrFieldFormat, lifespan))
	}
	subject := frag[lay.idxSubject]
	if err := validateCredentialURL(subject); err != nil {
		return nil, newParseError("bad subject", fmt.Errorf("%w: %v", ErrFieldFormat, err))
	}
	roles, err := decodeRoles(frag[lay.idxRoles])
	if err != nil {
		return nil, newParseError("bad role list", fmt.Errorf("%w: %v", ErrFieldFormat, err))
	}
	embedded := frag[lay.idxIssuer]
	if embedded != issuer {
		return nil, newParseError("issuer mismatch", fmt.Errorf("%w: token issued by %q", ErrFieldFormat, embedded))
	}

	return &Token{
		IssuedAt: issuedAt,
		Lifespan: lifespan,
		Issuer:   embedded,
		Subject:  subject,
		Schema:   frag[lay.idxSchema],
		Roles:    roles,
	}, nil
}

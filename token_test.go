package localtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIdentity(t *testing.T) {
	token := NewToken(1893456000000, 3600000, "https://cell.example/",
		"https://cell.example/__ctl/Account('bob')", nil, "")
	assert.Equal(t, "https://cell.example/__ctl/Account('bob'):1893456000000", token.ID())

	t.Run("Reissue Changes Identity", func(t *testing.T) {
		reissued := NewToken(token.IssuedAt+1, token.Lifespan, token.Issuer,
			token.Subject, nil, "")
		assert.NotEqual(t, token.ID(), reissued.ID())
	})
}

func TestTokenExpiry(t *testing.T) {
	issuedAt := int64(1893456000000)
	token := NewToken(issuedAt, 3600000, "https://cell.example/",
		"https://cell.example/__ctl/Account('bob')", nil, "")

	assert.Equal(t, time.UnixMilli(issuedAt+3600000), token.ExpiresAt())
	assert.False(t, token.IsExpiredAt(time.UnixMilli(issuedAt)))
	assert.False(t, token.IsExpiredAt(time.UnixMilli(issuedAt+3600000)))
	assert.True(t, token.IsExpiredAt(time.UnixMilli(issuedAt+3600001)))
}

// Parse returns expired tokens; expiry is caller policy.
func TestParseReturnsExpiredToken(t *testing.T) {
	codec := testCodec(t)
	issuer := testIssuer()
	token := NewToken(1000, 1, issuer, testSubject(issuer), nil, "")

	encoded, err := codec.EncodeAccessToken(token)
	require.NoError(t, err)

	parsed, err := codec.ParseAccessToken(encoded, issuer)
	require.NoError(t, err)
	assert.True(t, parsed.IsExpiredAt(time.Now()))
}

package localtoken

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test Helper Functions

const testMasterKey = "test-master-key-32-bytes-long!!!"

func testCodec(t *testing.T) Codec {
	t.Helper()
	codec, err := NewCodec(DefaultConfig(testMasterKey))
	require.NoError(t, err)
	return codec
}

func testIssuer() string {
	return fmt.Sprintf("https://cell-%s.example/", uuid.NewString())
}

func testSubject(issuer string) string {
	return fmt.Sprintf("%s__ctl/Account('%s')", issuer, uuid.NewString())
}

func testRoles(t *testing.T, issuer string, names ...string) []Role {
	t.Helper()
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		role, err := NewRole(issuer + "__role/__/" + name)
		require.NoError(t, err)
		roles = append(roles, role)
	}
	return roles
}

func testToken(t *testing.T) *Token {
	t.Helper()
	issuer := testIssuer()
	return NewToken(
		time.Now().UnixMilli(),
		time.Hour.Milliseconds(),
		issuer,
		testSubject(issuer),
		testRoles(t, issuer, "admin", "viewer"),
		fmt.Sprintf("https://app-%s.example/", uuid.NewString()),
	)
}

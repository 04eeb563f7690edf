package localtoken

import (
	"fmt"
	"strings"
)

// roleSeparator joins role URLs inside the single role-list wire field.
const roleSeparator = ","

// Role identifies a permission granted to a token subject, expressed as an
// absolute role URL within the issuing cell.
type Role struct {
	url string
}

// NewRole validates u and wraps it as a Role. The URL must be absolute and
// must not contain the role or field separators, which would corrupt the
// wire framing.
func NewRole(u string) (Role, error) {
	if err := validateCredentialURL(u); err != nil {
		return Role{}, fmt.Errorf("invalid role URL: %w", err)
	}
	if strings.ContainsAny(u, roleSeparator+fieldSeparator) {
		return Role{}, fmt.Errorf("role URL %q contains a reserved separator", u)
	}
	return Role{url: u}, nil
}

// URL returns the role URL.
func (r Role) URL() string {
	return r.url
}

func (r Role) String() string {
	return r.url
}

// encodeRoles renders a role list as comma-joined role URLs. An empty list
// encodes as the empty string; the field itself is never omitted.
func encodeRoles(roles []Role) string {
	if len(roles) == 0 {
		return ""
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = r.url
	}
	return strings.Join(parts, roleSeparator)
}

// decodeRoles is the exact inverse of encodeRoles. It fails on any
// malformed role URL and preserves role order.
func decodeRoles(s string) ([]Role, error) {
	if s == "" {
		return []Role{}, nil
	}
	parts := strings.Split(s, roleSeparator)
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		role, err := NewRole(p)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

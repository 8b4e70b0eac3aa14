package domain

import (
	"fmt"
	"strings"
)

// Role is a position in the fixed role lattice CLIENT ⊂ USER ⊂ ADMIN.
// The zero value is not a valid role.
type Role int

const (
	RoleClient Role = iota + 1
	RoleUser
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleClient: "ROLE_CLIENT",
	RoleUser:   "ROLE_USER",
	RoleAdmin:  "ROLE_ADMIN",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Grants reports whether a holder of r satisfies a check for required.
func (r Role) Grants(required Role) bool {
	return r.Valid() && r >= required
}

// Effective returns the role actually granted at runtime: every account is
// at least a ROLE_USER.
func (r Role) Effective() Role {
	if r < RoleUser {
		return RoleUser
	}
	return r
}

// Bundle lists every role string implied by r, highest first.
func (r Role) Bundle() []string {
	if !r.Valid() {
		return nil
	}
	out := make([]string, 0, int(r))
	for role := r; role >= RoleClient; role-- {
		out = append(out, roleNames[role])
	}
	return out
}

// ParseRole accepts a role string such as "ROLE_ADMIN" (case-insensitive,
// the ROLE_ prefix is optional).
func ParseRole(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(name, "ROLE_") {
		name = "ROLE_" + name
	}
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// HighestRole picks the strongest role among a list of role strings,
// ignoring unknown entries. It returns RoleClient for an empty list.
func HighestRole(names []string) Role {
	best := RoleClient
	for _, n := range names {
		if r, err := ParseRole(n); err == nil && r > best {
			best = r
		}
	}
	return best
}

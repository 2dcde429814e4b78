package domain

import (
	"fmt"
	"strings"
)

// Role determines what a user may do. The set is closed.
type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleManagerAdmin Role = "MANAGER_ADMIN"
	RolePersonal     Role = "PERSONAL"
)

// Roles lists every role, most privileged first.
var Roles = []Role{RoleSuperAdmin, RoleManagerAdmin, RolePersonal}

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleManagerAdmin, RolePersonal:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole accepts the canonical name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// IsAdmin reports whether r may read other users' audit trails.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleManagerAdmin
}

// Package principal describes the identity shape the external identity
// provider yields. The service never stores credentials; it only consumes
// tokens issued elsewhere.
package principal

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}

// Principal is an authenticated identity making a request.
type Principal struct {
	ID          string
	DisplayName string
	Role        Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Viewer is the identity a read request is evaluated against. A nil pointer
// means an anonymous viewer: the grid stays visible, details are redacted.
type Viewer = *Principal

func Anonymous() Viewer {
	return nil
}

// Package authorization defines the closed role set used by every
// permission guard in the application.
package authorization

import "fmt"

// Role is one of the three account roles. Authorization guards switch
// exhaustively over this set; there is no ad hoc string matching.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsUser() bool {
	return r == RoleUser
}

func (r Role) IsAgent() bool {
	return r == RoleAgent
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// NewRole parses a role string, rejecting anything outside the closed set.
func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

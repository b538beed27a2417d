package ticket

import (
	"fmt"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// AuthorRole is the comment author's role snapshotted at post time, or
// the sentinel system role for automated timeline entries.
type AuthorRole string

const (
	AuthorRoleUser   AuthorRole = "user"
	AuthorRoleAgent  AuthorRole = "agent"
	AuthorRoleAdmin  AuthorRole = "admin"
	AuthorRoleSystem AuthorRole = "system"
)

func (r AuthorRole) String() string {
	return string(r)
}

func (r AuthorRole) IsSystem() bool {
	return r == AuthorRoleSystem
}

func (r AuthorRole) IsValid() bool {
	switch r {
	case AuthorRoleUser, AuthorRoleAgent, AuthorRoleAdmin, AuthorRoleSystem:
		return true
	}
	return false
}

// AuthorRoleFrom snapshots an account role for a comment.
func AuthorRoleFrom(role authorization.Role) AuthorRole {
	return AuthorRole(role)
}

// Comment is an append-only timeline entry. The author reference may
// dangle after the author's account is deleted.
type Comment struct {
	userID    uint
	text      string
	timestamp time.Time
	role      AuthorRole
}

// NewComment creates a timeline entry stamped with the current time.
func NewComment(userID uint, text string, role AuthorRole) (*Comment, error) {
	if text == "" {
		return nil, ErrEmptyComment()
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", role)
	}

	return &Comment{
		userID:    userID,
		text:      text,
		timestamp: biztime.NowUTC(),
		role:      role,
	}, nil
}

// ReconstructComment rebuilds a comment from persistence.
func ReconstructComment(userID uint, text string, timestamp time.Time, role AuthorRole) (*Comment, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid author role: %s", role)
	}
	return &Comment{
		userID:    userID,
		text:      text,
		timestamp: timestamp,
		role:      role,
	}, nil
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) Timestamp() time.Time {
	return c.timestamp
}

func (c *Comment) Role() AuthorRole {
	return c.role
}

package user

import (
	"fmt"
	"time"

	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
	"quickdesk/internal/shared/errors"
)

// User is the identity aggregate. The password is an opaque credential
// compared verbatim; hardening it is explicitly out of scope.
type User struct {
	id        uint
	name      string
	email     string
	password  string
	role      authorization.Role
	createdAt time.Time
}

// NewUser creates a user pending ID assignment by the identity store.
func NewUser(name, email, password string, role authorization.Role) (*User, error) {
	if name == "" || email == "" {
		return nil, ErrEmptyField()
	}
	if password == "" {
		return nil, ErrEmptyField()
	}
	if !role.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid role: %s", role))
	}

	return &User{
		name:      name,
		email:     email,
		password:  password,
		role:      role,
		createdAt: biztime.NowUTC(),
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, name, email, password string, role authorization.Role, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:        id,
		name:      name,
		email:     email,
		password:  password,
		role:      role,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Password() string {
	return u.password
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Clone returns an independent copy of the user.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// SetID assigns the store-minted ID. Only the persistence layer calls this.
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// CheckPassword compares the stored credential verbatim.
func (u *User) CheckPassword(password string) bool {
	return u.password == password
}

// UpdateProfile overwrites name and email. Blank values are rejected;
// email uniqueness is the identity store's concern.
func (u *User) UpdateProfile(name, email string) error {
	if name == "" || email == "" {
		return ErrEmptyField()
	}
	u.name = name
	u.email = email
	return nil
}

// ChangePassword verifies the current credential and applies the new one.
func (u *User) ChangePassword(currentPassword, newPassword string) error {
	if u.password != currentPassword {
		return ErrWrongPassword()
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort()
	}
	if newPassword == currentPassword {
		return ErrPasswordUnchanged()
	}
	u.password = newPassword
	return nil
}

// ChangeRole overwrites the role. The self-change guard lives in the
// use case, where the acting identity is known.
func (u *User) ChangeRole(newRole authorization.Role) error {
	if !newRole.IsValid() {
		return errors.NewValidationError(fmt.Sprintf("invalid role: %s", newRole))
	}
	u.role = newRole
	return nil
}

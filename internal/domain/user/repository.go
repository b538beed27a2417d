package user

import (
	"context"

	"quickdesk/internal/domain/ticket"
)

// Repository is the identity store. Save mints a fresh ID
// (max existing + 1, or 1 when empty). Mutate runs fn against the
// stored aggregate under the store's write lock and persists the
// result. GetByID, GetByEmail and List return independent copies.
type Repository interface {
	Save(ctx context.Context, u *User) error
	Mutate(ctx context.Context, id uint, fn func(*User) error) error
	// DeleteWithCascade removes the user and runs sweep over every
	// stored ticket in the same snapshot write, so the account removal
	// and the ticket cleanup are durable together or not at all.
	DeleteWithCascade(ctx context.Context, id uint, sweep func(tickets []*ticket.Ticket) error) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByEmail matches the address exactly (case-sensitive).
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// Package session tracks the signed-in account. The session survives
// restarts because it is persisted alongside the rest of the
// application state.
package session

import "context"

// Repository stores the current user's ID. CurrentUserID returns nil
// when nobody is signed in; Clear is idempotent.
type Repository interface {
	CurrentUserID(ctx context.Context) (*uint, error)
	SetCurrentUser(ctx context.Context, userID uint) error
	Clear(ctx context.Context) error
}

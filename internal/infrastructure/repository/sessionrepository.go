package repository

import (
	"context"

	"quickdesk/internal/infrastructure/state"
)

// SessionRepository implements session.Repository over the state
// store.
type SessionRepository struct {
	store *state.Store
}

func NewSessionRepository(store *state.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) CurrentUserID(_ context.Context) (*uint, error) {
	var current *uint
	r.store.View(func(st *state.AppState) {
		if st.CurrentUserID != nil {
			id := *st.CurrentUserID
			current = &id
		}
	})
	return current, nil
}

func (r *SessionRepository) SetCurrentUser(ctx context.Context, userID uint) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		st.CurrentUserID = &userID
		return nil
	})
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		st.CurrentUserID = nil
		return nil
	})
}

package repository

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/state"
)

// UserRepository implements user.Repository over the state store. Like
// the ticket repository, reads hand out clones and writes run under the
// store lock.
type UserRepository struct {
	store *state.Store
}

func NewUserRepository(store *state.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		maxID := uint(0)
		for _, existing := range st.Users {
			if existing.ID() > maxID {
				maxID = existing.ID()
			}
		}
		if err := u.SetID(maxID + 1); err != nil {
			return err
		}
		st.Users = append(st.Users, u.Clone())
		return nil
	})
}

func (r *UserRepository) Mutate(ctx context.Context, id uint, fn func(*user.User) error) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		for _, existing := range st.Users {
			if existing.ID() == id {
				return fn(existing)
			}
		}
		return user.ErrNotFound()
	})
}

// DeleteWithCascade removes the user and sweeps the stored tickets in
// the same store mutation, so the cascade lands in a single snapshot
// write.
func (r *UserRepository) DeleteWithCascade(ctx context.Context, id uint, sweep func(tickets []*ticket.Ticket) error) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		idx := -1
		for i, existing := range st.Users {
			if existing.ID() == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return user.ErrNotFound()
		}
		if err := sweep(st.Tickets); err != nil {
			return err
		}
		st.Users = append(st.Users[:idx], st.Users[idx+1:]...)
		return nil
	})
}

func (r *UserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	var found *user.User
	r.store.View(func(st *state.AppState) {
		for _, u := range st.Users {
			if u.ID() == id {
				found = u.Clone()
				return
			}
		}
	})
	if found == nil {
		return nil, user.ErrNotFound()
	}
	return found, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	var found *user.User
	r.store.View(func(st *state.AppState) {
		for _, u := range st.Users {
			if u.Email() == email {
				found = u.Clone()
				return
			}
		}
	})
	if found == nil {
		return nil, user.ErrNotFound()
	}
	return found, nil
}

func (r *UserRepository) List(_ context.Context) ([]*user.User, error) {
	var out []*user.User
	r.store.View(func(st *state.AppState) {
		out = make([]*user.User, 0, len(st.Users))
		for _, u := range st.Users {
			out = append(out, u.Clone())
		}
	})
	return out, nil
}

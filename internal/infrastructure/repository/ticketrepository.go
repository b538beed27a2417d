package repository

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/state"
)

// TicketRepository implements ticket.Repository over the state store.
// Stored aggregates never leave the store lock: reads hand out clones
// and writes go through Mutate, which applies the domain mutation while
// the lock is held.
type TicketRepository struct {
	store *state.Store
}

func NewTicketRepository(store *state.Store) *TicketRepository {
	return &TicketRepository{store: store}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		maxID := uint(0)
		for _, existing := range st.Tickets {
			if existing.ID() > maxID {
				maxID = existing.ID()
			}
		}
		if err := t.SetID(maxID + 1); err != nil {
			return err
		}
		st.Tickets = append(st.Tickets, t.Clone())
		return nil
	})
}

func (r *TicketRepository) Mutate(ctx context.Context, id uint, fn func(*ticket.Ticket) error) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		for _, existing := range st.Tickets {
			if existing.ID() == id {
				return fn(existing)
			}
		}
		return ticket.ErrNotFound()
	})
}

func (r *TicketRepository) GetByID(_ context.Context, id uint) (*ticket.Ticket, error) {
	var found *ticket.Ticket
	r.store.View(func(st *state.AppState) {
		for _, t := range st.Tickets {
			if t.ID() == id {
				found = t.Clone()
				return
			}
		}
	})
	if found == nil {
		return nil, ticket.ErrNotFound()
	}
	return found, nil
}

func (r *TicketRepository) List(_ context.Context) ([]*ticket.Ticket, error) {
	var out []*ticket.Ticket
	r.store.View(func(st *state.AppState) {
		out = make([]*ticket.Ticket, 0, len(st.Tickets))
		for _, t := range st.Tickets {
			out = append(out, t.Clone())
		}
	})
	return out, nil
}

package ticket

import "context"

// Repository persists tickets. Save mints the ticket ID. Mutate runs fn
// against the stored aggregate under the store's write lock and persists
// the result, so domain mutations never race a snapshot read. GetByID
// and List return independent copies; changes to them are invisible
// until written back through Mutate.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Mutate(ctx context.Context, id uint, fn func(*Ticket) error) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
}

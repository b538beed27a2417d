// Package persistence stores the whole application state as one
// snapshot of four documents: the signed-in user, the user accounts,
// the tickets, and the category labels. Every mutation rewrites the
// snapshot as a unit, so a reload always observes a consistent state.
package persistence

import (
	"context"

	"quickdesk/internal/infrastructure/persistence/models"
)

// Document keys inside a snapshot store.
const (
	KeyCurrentUser = "currentUser"
	KeyUsers       = "users"
	KeyTickets     = "tickets"
	KeyCategories  = "categories"
)

// Snapshot is the serialized application state. CurrentUser is nil
// when nobody is signed in.
type Snapshot struct {
	CurrentUser *models.UserRecord    `json:"currentUser"`
	Users       []models.UserRecord   `json:"users"`
	Tickets     []models.TicketRecord `json:"tickets"`
	Categories  []string              `json:"categories"`
}

// Snapshotter loads and saves the application snapshot. Load returns
// (nil, nil) when the store holds no snapshot yet; Save replaces all
// documents atomically.
type Snapshotter interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Package state holds the live application state and keeps it in sync
// with the snapshot store. All reads and mutations go through the
// Store; there are no package-level state variables.
package state

import (
	"context"
	"fmt"
	"sync"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/infrastructure/persistence/seeds"
	"quickdesk/internal/shared/logger"
)

// AppState is the complete in-memory application state. Repositories
// access it only under the Store's lock.
type AppState struct {
	CurrentUserID *uint
	Users         []*user.User
	Tickets       []*ticket.Ticket
	Categories    []string
}

// Store owns the AppState and writes the full snapshot after every
// mutation.
type Store struct {
	mu          sync.RWMutex
	state       AppState
	snapshotter persistence.Snapshotter
	userMapper  mappers.UserMapper
	tickets     mappers.TicketMapper
	logger      logger.Interface
}

func NewStore(snapshotter persistence.Snapshotter, log logger.Interface) *Store {
	return &Store{
		snapshotter: snapshotter,
		userMapper:  mappers.NewUserMapper(),
		tickets:     mappers.NewTicketMapper(),
		logger:      log,
	}
}

// Load reads the persisted snapshot, seeds the stock accounts and
// default categories where missing, and writes the seeded snapshot
// back so a fresh install is durable from the start.
func (s *Store) Load(ctx context.Context) error {
	snap, err := s.snapshotter.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if snap == nil {
		snap = &persistence.Snapshot{}
	}

	snap.Users = seeds.EnsureDefaultAccounts(snap.Users)
	if snap.Categories == nil {
		snap.Categories = seeds.DefaultCategories()
	}

	users := make([]*user.User, 0, len(snap.Users))
	for _, record := range snap.Users {
		u, err := s.userMapper.ToDomain(record)
		if err != nil {
			return fmt.Errorf("failed to restore users: %w", err)
		}
		users = append(users, u)
	}

	tickets := make([]*ticket.Ticket, 0, len(snap.Tickets))
	for _, record := range snap.Tickets {
		t, err := s.tickets.ToDomain(record)
		if err != nil {
			return fmt.Errorf("failed to restore tickets: %w", err)
		}
		tickets = append(tickets, t)
	}

	s.mu.Lock()
	s.state = AppState{
		Users:      users,
		Tickets:    tickets,
		Categories: snap.Categories,
	}
	if snap.CurrentUser != nil {
		id := snap.CurrentUser.ID
		s.state.CurrentUserID = &id
	}
	s.mu.Unlock()

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.logger.Infow("application state loaded",
		"users", len(users),
		"tickets", len(tickets),
		"categories", len(snap.Categories),
	)
	return nil
}

// View runs fn with read access to the state. fn must not retain or
// mutate what it is given.
func (s *Store) View(fn func(st *AppState)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Mutate runs fn with write access to the state and, when fn succeeds,
// persists the whole snapshot. A failed fn leaves the state untouched
// only if fn itself made no changes before failing; use validation
// before mutation inside fn.
func (s *Store) Mutate(ctx context.Context, fn func(st *AppState) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	s.mu.RLock()
	snap := s.buildSnapshot()
	s.mu.RUnlock()

	if err := s.snapshotter.Save(ctx, snap); err != nil {
		s.logger.Errorw("failed to persist snapshot", "error", err)
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

func (s *Store) buildSnapshot() *persistence.Snapshot {
	userRecords := make([]models.UserRecord, 0, len(s.state.Users))
	var current *models.UserRecord
	for _, u := range s.state.Users {
		record := s.userMapper.ToRecord(u)
		userRecords = append(userRecords, record)
		if s.state.CurrentUserID != nil && u.ID() == *s.state.CurrentUserID {
			r := record
			current = &r
		}
	}

	ticketRecords := make([]models.TicketRecord, 0, len(s.state.Tickets))
	for _, t := range s.state.Tickets {
		ticketRecords = append(ticketRecords, s.tickets.ToRecord(t))
	}

	categories := make([]string, len(s.state.Categories))
	copy(categories, s.state.Categories)

	return &persistence.Snapshot{
		CurrentUser: current,
		Users:       userRecords,
		Tickets:     ticketRecords,
		Categories:  categories,
	}
}

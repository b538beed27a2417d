package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/infrastructure/persistence"
	"quickdesk/internal/infrastructure/state"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...any) {}
func (noopLogger) Infow(msg string, keysAndValues ...any)  {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (noopLogger) Errorw(msg string, keysAndValues ...any) {}
func (n noopLogger) With(args ...any) logger.Interface     { return n }
func (n noopLogger) Named(name string) logger.Interface    { return n }

func newTestStore(t *testing.T) (*state.Store, *persistence.MemoryStore) {
	t.Helper()

	backend := persistence.NewMemoryStore()
	store := state.NewStore(backend, noopLogger{})
	require.NoError(t, store.Load(context.Background()))
	return store, backend
}

func newStoredTicket(t *testing.T, repo *TicketRepository, creatorID uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(creatorID, "Printer offline", "It shows error E4.",
		"Technical", nil, ticket.AuthorRoleUser)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tk))
	return tk
}

func TestTicketRepository_SaveMintsSequentialIDs(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTicketRepository(store)

	first := newStoredTicket(t, repo, 3)
	second := newStoredTicket(t, repo, 3)

	assert.Equal(t, uint(1), first.ID())
	assert.Equal(t, uint(2), second.ID())
}

func TestTicketRepository_GetByID_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTicketRepository(store)
	newStoredTicket(t, repo, 3)

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	// Changes to the returned aggregate stay private until written
	// back through Mutate.
	require.NoError(t, got.Vote(vo.VoteUp))
	_, err = got.AddComment(3, "still broken", ticket.AuthorRoleUser)
	require.NoError(t, err)

	fresh, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Upvotes())
	assert.Equal(t, 1, fresh.CommentCount())
}

func TestTicketRepository_Mutate_PersistsChange(t *testing.T) {
	store, backend := newTestStore(t)
	repo := NewTicketRepository(store)
	newStoredTicket(t, repo, 3)

	before := backend.SaveCount()
	err := repo.Mutate(context.Background(), 1, func(tk *ticket.Ticket) error {
		return tk.Vote(vo.VoteUp)
	})
	require.NoError(t, err)
	assert.Equal(t, before+1, backend.SaveCount())

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Upvotes())
}

func TestTicketRepository_Mutate_MissingTicket(t *testing.T) {
	store, backend := newTestStore(t)
	repo := NewTicketRepository(store)

	before := backend.SaveCount()
	err := repo.Mutate(context.Background(), 42, func(tk *ticket.Ticket) error {
		t.Fatal("fn must not run for a missing ticket")
		return nil
	})

	require.Error(t, err)
	assert.True(t, errors.HasKind(err, ticket.KindNotFound))
	assert.Equal(t, before, backend.SaveCount())
}

func TestTicketRepository_ConcurrentVotesAndReads(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewTicketRepository(store)
	newStoredTicket(t, repo, 3)

	const workers = 8
	const votesPerWorker = 25

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < votesPerWorker; j++ {
				err := repo.Mutate(context.Background(), 1, func(tk *ticket.Ticket) error {
					return tk.Vote(vo.VoteUp)
				})
				assert.NoError(t, err)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < votesPerWorker; j++ {
				_, err := repo.GetByID(context.Background(), 1)
				assert.NoError(t, err)
				_, err = repo.List(context.Background())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, workers*votesPerWorker, got.Upvotes())
}

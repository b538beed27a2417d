package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
)

func TestChangeStatusUseCase_Execute_Success(t *testing.T) {
	stored := storedTicket(t, 1, 3, vo.StatusOpen)

	ticketRepo := &mockTicketRepository{
		MutateFunc: func(ctx context.Context, id uint, fn func(*ticket.Ticket) error) error {
			require.Equal(t, uint(1), id)
			return fn(stored)
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return storedUser(t, id, "Creator", "creator@example.com", authorization.RoleUser), nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := NewChangeStatusUseCase(ticketRepo, userRepo, publisher, &mockLogger{})

	result, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		ActorID:   2,
		ActorRole: authorization.RoleAgent,
		NewStatus: "Resolved",
	})

	require.NoError(t, err)
	assert.Equal(t, "Open", result.OldStatus)
	assert.Equal(t, "Resolved", result.NewStatus)
	assert.Equal(t, vo.StatusResolved, stored.Status())

	comments := stored.Comments()
	assert.Equal(t, "Status changed from 'Open' to 'Resolved'.", comments[len(comments)-1].Text())

	require.Len(t, publisher.published, 1)
	event, ok := publisher.published[0].(ticket.TicketStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "creator@example.com", event.CreatorEmail)
	assert.Equal(t, uint(2), event.ChangedBy)
}

func TestChangeStatusUseCase_Execute_AgentOnly(t *testing.T) {
	stored := storedTicket(t, 1, 3, vo.StatusOpen)
	ticketRepo := &mockTicketRepository{
		MutateFunc: func(ctx context.Context, id uint, fn func(*ticket.Ticket) error) error {
			return fn(stored)
		},
	}
	uc := NewChangeStatusUseCase(ticketRepo, &mockUserRepository{}, &mockEventPublisher{}, &mockLogger{})

	// Admins are deliberately excluded: status changes are an agent duty.
	for _, role := range []authorization.Role{authorization.RoleUser, authorization.RoleAdmin} {
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID:  1,
			ActorID:   2,
			ActorRole: role,
			NewStatus: "Closed",
		})
		require.Error(t, err)
		assert.True(t, errors.HasKind(err, ticket.KindPermissionDenied))
		assert.Contains(t, err.Error(), "Permission denied to update ticket status.")
	}
	assert.Equal(t, vo.StatusOpen, stored.Status())
}

func TestChangeStatusUseCase_Execute_InvalidStatus(t *testing.T) {
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockEventPublisher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), ChangeStatusCommand{
		TicketID:  1,
		ActorID:   2,
		ActorRole: authorization.RoleAgent,
		NewStatus: "Reopened",
	})

	require.Error(t, err)
	assert.True(t, errors.HasKind(err, ticket.KindValidation))
}

func TestChangeStatusUseCase_Execute_TicketNotFound(t *testing.T) {
	// The empty mock reports every ticket as missing. Both an agent and
	// a plain user get the not-found error: the existence check comes
	// before the permission check.
	uc := NewChangeStatusUseCase(&mockTicketRepository{}, &mockUserRepository{}, &mockEventPublisher{}, &mockLogger{})

	for _, role := range []authorization.Role{authorization.RoleAgent, authorization.RoleUser} {
		_, err := uc.Execute(context.Background(), ChangeStatusCommand{
			TicketID:  99,
			ActorID:   2,
			ActorRole: role,
			NewStatus: "Closed",
		})
		require.Error(t, err)
		assert.True(t, errors.HasKind(err, ticket.KindNotFound))
	}
}

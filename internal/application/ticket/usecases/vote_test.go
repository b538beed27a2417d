package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/errors"
)

func TestVoteUseCase_Execute(t *testing.T) {
	stored := storedTicket(t, 1, 3, vo.StatusOpen)
	before := stored.LastModified()

	ticketRepo := &mockTicketRepository{
		MutateFunc: func(ctx context.Context, id uint, fn func(*ticket.Ticket) error) error {
			return fn(stored)
		},
	}
	uc := NewVoteUseCase(ticketRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), VoteCommand{TicketID: 1, Direction: "up"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Upvotes)

	// No dedup: the same voter can bump the counter again.
	result, err = uc.Execute(context.Background(), VoteCommand{TicketID: 1, Direction: "up"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Upvotes)

	result, err = uc.Execute(context.Background(), VoteCommand{TicketID: 1, Direction: "down"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Downvotes)

	assert.Equal(t, before, stored.LastModified())
}

func TestVoteUseCase_Execute_InvalidDirection(t *testing.T) {
	uc := NewVoteUseCase(&mockTicketRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), VoteCommand{TicketID: 1, Direction: "sideways"})
	require.Error(t, err)
	assert.True(t, errors.HasKind(err, ticket.KindValidation))
}

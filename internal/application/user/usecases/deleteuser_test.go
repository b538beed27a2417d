package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
)

func TestDeleteUserUseCase_Execute_Cascade(t *testing.T) {
	// Target 3 created ticket 1 and commented on ticket 2; ticket 3 is
	// untouched by them.
	ownTicket := storedTicket(t, 1, 3)
	commentedTicket := storedTicket(t, 2, 7, 3, 3)
	unrelatedTicket := storedTicket(t, 3, 7)

	deletedID := uint(0)
	cascades := 0

	userRepo := &mockUserRepository{
		DeleteWithCascadeFunc: func(ctx context.Context, id uint, sweep func(tickets []*ticket.Ticket) error) error {
			deletedID = id
			cascades++
			return sweep([]*ticket.Ticket{ownTicket, commentedTicket, unrelatedTicket})
		},
	}
	uc := NewDeleteUserUseCase(userRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteUserCommand{
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
		TargetID:  3,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), deletedID)
	assert.Equal(t, 1, result.ClosedTickets)
	// Seed comment on ticket 1 plus two comments on ticket 2.
	assert.Equal(t, 3, result.RemovedComments)

	// The deletion and the ticket sweep travel through the repository
	// as one operation.
	assert.Equal(t, 1, cascades)
	assert.True(t, ownTicket.Status().IsClosed())

	// The closure comment is attributed to the acting admin and
	// survives the sweep of the target's comments.
	ownComments := ownTicket.Comments()
	require.Len(t, ownComments, 1)
	assert.Equal(t, "Ticket creator's account was deleted by Admin. This ticket has been closed.",
		ownComments[0].Text())
	assert.Equal(t, uint(1), ownComments[0].UserID())

	assert.Equal(t, 1, commentedTicket.CommentCount())
	assert.False(t, commentedTicket.Status().IsClosed())
	assert.Equal(t, 2, unrelatedTicket.CommentCount())
}

func TestDeleteUserUseCase_Execute_SelfDeleteForbidden(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteUserCommand{
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
		TargetID:  1,
	})

	require.Error(t, err)
	assert.True(t, errors.HasKind(err, user.KindSelfDeleteForbidden))
	assert.Contains(t, err.Error(), "You cannot delete your own account!")
}

func TestDeleteUserUseCase_Execute_AdminOnly(t *testing.T) {
	uc := NewDeleteUserUseCase(&mockUserRepository{}, &mockLogger{})

	for _, role := range []authorization.Role{authorization.RoleUser, authorization.RoleAgent} {
		_, err := uc.Execute(context.Background(), DeleteUserCommand{
			ActorID:   1,
			ActorRole: role,
			TargetID:  3,
		})
		require.Error(t, err)
	}
}

func TestDeleteUserUseCase_Execute_TargetNotFound(t *testing.T) {
	// The empty mock reports every account as missing.
	uc := NewDeleteUserUseCase(&mockUserRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteUserCommand{
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
		TargetID:  99,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

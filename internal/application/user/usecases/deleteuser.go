package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	TargetID  uint
}

type DeleteUserResult struct {
	ClosedTickets   int
	RemovedComments int
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute removes the account and cascades over the ticket store:
// every ticket the target created is closed with an explanatory system
// comment, and the target's own comments disappear from all tickets.
// The closure comment belongs to the acting admin, so stripping the
// target's comments afterwards leaves it in place. The whole cascade
// runs inside DeleteWithCascade and persists as one snapshot write.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case",
		"actor_id", cmd.ActorID, "target_id", cmd.TargetID)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can delete users")
	}
	if cmd.TargetID == cmd.ActorID {
		uc.logger.Warnw("self delete rejected", "actor_id", cmd.ActorID)
		return nil, user.ErrSelfDeleteForbidden()
	}

	closedCount := 0
	removedCount := 0
	err := uc.userRepo.DeleteWithCascade(ctx, cmd.TargetID, func(tickets []*ticket.Ticket) error {
		for _, t := range tickets {
			if t.CreatorID() == cmd.TargetID {
				t.CloseForCreatorDeletion(cmd.ActorID)
				closedCount++
			}
			removedCount += t.RemoveCommentsBy(cmd.TargetID)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user deleted",
		"target_id", cmd.TargetID,
		"closed_tickets", closedCount,
		"removed_comments", removedCount,
	)

	return &DeleteUserResult{
		ClosedTickets:   closedCount,
		RemovedComments: removedCount,
	}, nil
}

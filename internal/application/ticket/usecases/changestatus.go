package usecases

import (
	"context"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.Role
	NewStatus string
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute applies a status transition. Only agents may change status;
// any valid status can follow any other, including re-asserting the
// current one.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID, "new_status", cmd.NewStatus, "actor_id", cmd.ActorID)

	newStatus, err := vo.NewStatus(cmd.NewStatus)
	if err != nil {
		return nil, ticket.ErrValidation(err.Error())
	}

	var (
		changed   *ticket.Ticket
		oldStatus string
	)
	err = uc.ticketRepo.Mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		if !cmd.ActorRole.IsAgent() {
			return ticket.ErrPermissionDenied("Permission denied to update ticket status.")
		}
		oldStatus = t.Status().String()
		if err := t.ChangeStatus(cmd.ActorID, newStatus); err != nil {
			return err
		}
		changed = t.Clone()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("status change rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	t := changed

	creatorEmail := ""
	if creator, err := uc.userRepo.GetByID(ctx, t.CreatorID()); err == nil {
		creatorEmail = creator.Email()
	}
	if err := uc.publisher.Publish(ticket.NewTicketStatusChangedEvent(t, creatorEmail, oldStatus, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish status changed event", "error", err)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(), "old_status", oldStatus, "new_status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus,
		NewStatus: t.Status().String(),
	}, nil
}

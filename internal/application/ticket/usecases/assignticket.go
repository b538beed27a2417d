package usecases

import (
	"context"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.Role
}

type AssignTicketResult struct {
	TicketID   uint
	AssigneeID uint
	Status     string
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute assigns the ticket to the acting agent. Agents always assign
// to themselves; there is no handing tickets to someone else.
func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	if !cmd.ActorRole.IsAgent() {
		return nil, ticket.ErrPermissionDenied("Permission denied or ticket not found.")
	}

	actor, err := uc.userRepo.GetByID(ctx, cmd.ActorID)
	if err != nil {
		return nil, err
	}

	var assigned *ticket.Ticket
	err = uc.ticketRepo.Mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		if err := t.Assign(actor.ID(), actor.Name()); err != nil {
			return err
		}
		assigned = t.Clone()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("assignment rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	t := assigned

	if err := uc.publisher.Publish(ticket.NewTicketAssignedEvent(t, actor.ID())); err != nil {
		uc.logger.Warnw("failed to publish ticket assigned event", "error", err)
	}

	uc.logger.Infow("ticket assigned", "ticket_id", t.ID(), "assignee_id", actor.ID())

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: actor.ID(),
		Status:     t.Status().String(),
	}, nil
}

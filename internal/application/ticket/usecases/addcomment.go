package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.Role
	Text      string
}

type AddCommentResult struct {
	TicketID  uint
	AuthorID  uint
	Text      string
	Timestamp time.Time
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute appends a comment. Agents and admins may comment on any
// ticket; plain users only on tickets they created.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	var (
		commented *ticket.Ticket
		comment   *ticket.Comment
	)
	err := uc.ticketRepo.Mutate(ctx, cmd.TicketID, func(t *ticket.Ticket) error {
		if !t.CanBeCommentedOnBy(cmd.ActorID, cmd.ActorRole) {
			return ticket.ErrPermissionDenied("You can only comment on your own tickets.")
		}
		c, err := t.AddComment(cmd.ActorID, cmd.Text, ticket.AuthorRoleFrom(cmd.ActorRole))
		if err != nil {
			return err
		}
		comment = c
		commented = t.Clone()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("comment rejected", "ticket_id", cmd.TicketID, "actor_id", cmd.ActorID, "error", err)
		return nil, err
	}
	t := commented

	if err := uc.publisher.Publish(ticket.NewTicketCommentAddedEvent(t, cmd.ActorID)); err != nil {
		uc.logger.Warnw("failed to publish comment added event", "error", err)
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "author_id", cmd.ActorID)

	return &AddCommentResult{
		TicketID:  t.ID(),
		AuthorID:  comment.UserID(),
		Text:      comment.Text(),
		Timestamp: comment.Timestamp(),
	}, nil
}

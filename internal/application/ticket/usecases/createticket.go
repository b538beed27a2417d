package usecases

import (
	"context"
	"fmt"
	"time"

	"quickdesk/internal/domain/shared/events"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/constants"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type AttachmentInput struct {
	Name string
	Size int64
	Type string
}

type CreateTicketCommand struct {
	CreatorID   uint
	CreatorRole authorization.Role
	Subject     string
	Description string
	Category    string
	Attachments []AttachmentInput
}

type CreateTicketResult struct {
	TicketID  uint
	Subject   string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	publisher  events.EventPublisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	publisher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"subject", cmd.Subject, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	attachments := make([]ticket.Attachment, 0, len(cmd.Attachments))
	for _, a := range cmd.Attachments {
		attachments = append(attachments, ticket.Attachment{Name: a.Name, Size: a.Size, Type: a.Type})
	}

	newTicket, err := ticket.NewTicket(
		cmd.CreatorID,
		cmd.Subject,
		cmd.Description,
		cmd.Category,
		attachments,
		ticket.AuthorRoleFrom(cmd.CreatorRole),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, err
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if err := uc.publisher.Publish(ticket.NewTicketCreatedEvent(newTicket)); err != nil {
		uc.logger.Warnw("failed to publish ticket created event", "error", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Subject:   newTicket.Subject(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}
	if len(cmd.Attachments) > constants.MaxAttachments {
		return errors.NewValidationError(
			fmt.Sprintf("at most %d attachments are allowed", constants.MaxAttachments))
	}
	for _, a := range cmd.Attachments {
		if a.Size > constants.MaxAttachmentSize {
			return errors.NewValidationError(
				fmt.Sprintf("attachment %s exceeds the %dMB size limit",
					a.Name, constants.MaxAttachmentSize/(1024*1024)))
		}
	}
	return nil
}

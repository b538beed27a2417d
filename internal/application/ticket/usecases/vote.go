package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/logger"
)

type VoteCommand struct {
	TicketID  uint
	Direction string
}

type VoteResult struct {
	TicketID  uint
	Upvotes   int
	Downvotes int
}

type VoteUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewVoteUseCase(ticketRepo ticket.Repository, logger logger.Interface) *VoteUseCase {
	return &VoteUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute bumps a vote counter. Votes are not deduplicated per user
// and do not count as a modification for recency sorting.
func (uc *VoteUseCase) Execute(ctx context.Context, cmd VoteCommand) (*VoteResult, error) {
	direction, err := vo.NewVoteDirection(cmd.Direction)
	if err != nil {
		return nil, ticket.ErrValidation(err.Error())
	}

	var t *ticket.Ticket
	err = uc.ticketRepo.Mutate(ctx, cmd.TicketID, func(stored *ticket.Ticket) error {
		if err := stored.Vote(direction); err != nil {
			return err
		}
		t = stored.Clone()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("vote rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("vote recorded", "ticket_id", t.ID(), "direction", direction)

	return &VoteResult{
		TicketID:  t.ID(),
		Upvotes:   t.Upvotes(),
		Downvotes: t.Downvotes(),
	}, nil
}

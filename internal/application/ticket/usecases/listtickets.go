package usecases

import (
	"context"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	ActorID  uint
	Status   string
	Category string
	OnlyMine bool
	Search   string
	Sort     string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets    []dto.TicketListItemDTO
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	result := ticket.RunQuery(tickets, query.ActorID, ticket.Query{
		Status:   query.Status,
		Category: query.Category,
		OnlyMine: query.OnlyMine,
		Search:   query.Search,
		Sort:     query.Sort,
		Page:     query.Page,
		PageSize: query.PageSize,
	})

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	resolver := dto.NewNameResolver(users)

	items := make([]dto.TicketListItemDTO, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		items = append(items, dto.ToTicketListItemDTO(t, resolver))
	}

	return &ListTicketsResult{
		Tickets:    items,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}, nil
}

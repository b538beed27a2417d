package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type ProfileResult struct {
	UserID    uint
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileResult, error) {
	account, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		UserID:    account.ID(),
		Name:      account.Name(),
		Email:     account.Email(),
		Role:      account.Role().String(),
		CreatedAt: account.CreatedAt(),
	}, nil
}

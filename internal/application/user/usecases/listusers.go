package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	ActorRole authorization.Role
}

type UserSummary struct {
	UserID    uint
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]UserSummary, error) {
	if !query.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list users")
	}

	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{
			UserID:    u.ID(),
			Name:      u.Name(),
			Email:     u.Email(),
			Role:      u.Role().String(),
			CreatedAt: u.CreatedAt(),
		})
	}
	return out, nil
}

package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
)

type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	uc.logger.Infow("executing change password use case", "user_id", cmd.UserID)

	err := uc.userRepo.Mutate(ctx, cmd.UserID, func(account *user.User) error {
		return account.ChangePassword(cmd.CurrentPassword, cmd.NewPassword)
	})
	if err != nil {
		uc.logger.Warnw("password change rejected", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)
	return nil
}

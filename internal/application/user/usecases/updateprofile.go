package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID uint
	Name   string
	Email  string
}

type UpdateProfileResult struct {
	UserID uint
	Name   string
	Email  string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	// The new email may collide with any account other than this one.
	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing.ID() != cmd.UserID {
		uc.logger.Warnw("profile update rejected, email in use", "email", cmd.Email)
		return nil, user.ErrEmailInUse()
	}

	var updated *user.User
	err := uc.userRepo.Mutate(ctx, cmd.UserID, func(account *user.User) error {
		if err := account.UpdateProfile(cmd.Name, cmd.Email); err != nil {
			return err
		}
		updated = account.Clone()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("profile update rejected", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("profile updated", "user_id", updated.ID())

	return &UpdateProfileResult{
		UserID: updated.ID(),
		Name:   updated.Name(),
		Email:  updated.Email(),
	}, nil
}

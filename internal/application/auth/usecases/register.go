package usecases

import (
	"context"
	"time"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type RegisterResult struct {
	UserID    uint
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid register command", "error", err)
		return nil, err
	}

	if _, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil {
		uc.logger.Warnw("registration rejected, email taken", "email", cmd.Email)
		return nil, user.ErrDuplicateEmail()
	}

	role, err := authorization.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, cmd.Password, role)
	if err != nil {
		uc.logger.Errorw("failed to create user entity", "error", err)
		return nil, err
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", newUser.Role())

	return &RegisterResult{
		UserID:    newUser.ID(),
		Name:      newUser.Name(),
		Email:     newUser.Email(),
		Role:      newUser.Role().String(),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if cmd.Name == "" {
		return errors.NewValidationError("name is required")
	}
	if cmd.Email == "" {
		return errors.NewValidationError("email is required")
	}
	if cmd.Password == "" {
		return errors.NewValidationError("password is required")
	}
	return nil
}

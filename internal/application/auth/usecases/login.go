package usecases

import (
	"context"

	"quickdesk/internal/domain/session"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token  string
	UserID uint
	Name   string
	Email  string
	Role   string
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo session.Repository
	jwtService  *auth.JWTService
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo session.Repository,
	jwtService *auth.JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	uc.logger.Infow("executing login use case", "email", cmd.Email)

	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	account, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil || !account.CheckPassword(cmd.Password) {
		uc.logger.Warnw("login rejected", "email", cmd.Email)
		return nil, user.ErrInvalidCredentials()
	}

	if err := uc.sessionRepo.SetCurrentUser(ctx, account.ID()); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err)
		return nil, err
	}

	token, err := uc.jwtService.Generate(account.ID(), account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("failed to issue token", err.Error())
	}

	uc.logger.Infow("user logged in", "user_id", account.ID(), "role", account.Role())

	return &LoginResult{
		Token:  token,
		UserID: account.ID(),
		Name:   account.Name(),
		Email:  account.Email(),
		Role:   account.Role().String(),
	}, nil
}

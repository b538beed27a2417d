package usecases

import (
	"context"

	"quickdesk/internal/domain/session"
	"quickdesk/internal/shared/logger"
)

type LogoutCommand struct {
	UserID uint
}

type LogoutUseCase struct {
	sessionRepo session.Repository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo session.Repository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute clears the persisted session. Logging out when nobody is
// signed in succeeds without effect.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if err := uc.sessionRepo.Clear(ctx); err != nil {
		uc.logger.Errorw("failed to clear session", "error", err)
		return err
	}
	uc.logger.Infow("user logged out", "user_id", cmd.UserID)
	return nil
}

package usecases

import (
	"context"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type ChangeRoleCommand struct {
	ActorID   uint
	ActorRole authorization.Role
	TargetID  uint
	NewRole   string
}

type ChangeRoleResult struct {
	UserID uint
	Name   string
	Role   string
}

type ChangeRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute changes the target account's role. Admins cannot change their
// own role to a different one; re-asserting the current role is
// allowed.
func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) (*ChangeRoleResult, error) {
	uc.logger.Infow("executing change role use case",
		"actor_id", cmd.ActorID, "target_id", cmd.TargetID, "new_role", cmd.NewRole)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can change user roles")
	}

	newRole, err := authorization.NewRole(cmd.NewRole)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var changed *user.User
	err = uc.userRepo.Mutate(ctx, cmd.TargetID, func(account *user.User) error {
		if cmd.TargetID == cmd.ActorID && newRole != account.Role() {
			return user.ErrSelfRoleChangeForbidden()
		}
		if err := account.ChangeRole(newRole); err != nil {
			return err
		}
		changed = account.Clone()
		return nil
	})
	if err != nil {
		uc.logger.Warnw("role change rejected", "actor_id", cmd.ActorID, "target_id", cmd.TargetID, "error", err)
		return nil, err
	}

	uc.logger.Infow("role changed", "user_id", changed.ID(), "role", changed.Role())

	return &ChangeRoleResult{
		UserID: changed.ID(),
		Name:   changed.Name(),
		Role:   changed.Role().String(),
	}, nil
}

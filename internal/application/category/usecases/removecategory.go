package usecases

import (
	"context"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type RemoveCategoryCommand struct {
	ActorRole authorization.Role
	Name      string
}

type RemoveCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewRemoveCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *RemoveCategoryUseCase {
	return &RemoveCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute removes a label by exact match. Removing a label that is not
// in the registry succeeds without effect, and tickets keep whatever
// label text they were created with.
func (uc *RemoveCategoryUseCase) Execute(ctx context.Context, cmd RemoveCategoryCommand) error {
	uc.logger.Infow("executing remove category use case", "name", cmd.Name)

	if !cmd.ActorRole.IsAdmin() {
		return errors.NewForbiddenError("only admins can manage categories")
	}

	if err := uc.categoryRepo.Remove(ctx, cmd.Name); err != nil {
		uc.logger.Errorw("failed to remove category", "error", err)
		return err
	}

	uc.logger.Infow("category removed", "name", cmd.Name)
	return nil
}

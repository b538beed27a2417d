package usecases

import (
	"context"

	"quickdesk/internal/domain/category"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

type AddCategoryCommand struct {
	ActorRole authorization.Role
	Name      string
}

type AddCategoryResult struct {
	Name       string
	Categories []string
}

type AddCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewAddCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *AddCategoryUseCase {
	return &AddCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Execute adds a normalized label to the registry. Duplicate detection
// runs against the normalized form, so "billing" collides with
// "Billing".
func (uc *AddCategoryUseCase) Execute(ctx context.Context, cmd AddCategoryCommand) (*AddCategoryResult, error) {
	uc.logger.Infow("executing add category use case", "name", cmd.Name)

	if !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage categories")
	}

	existing, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	normalized, err := category.Validate(cmd.Name, existing)
	if err != nil {
		uc.logger.Warnw("category rejected", "name", cmd.Name, "error", err)
		return nil, err
	}

	if err := uc.categoryRepo.Add(ctx, normalized); err != nil {
		uc.logger.Errorw("failed to add category", "error", err)
		return nil, err
	}

	uc.logger.Infow("category added", "name", normalized)

	return &AddCategoryResult{
		Name:       normalized,
		Categories: append(existing, normalized),
	}, nil
}

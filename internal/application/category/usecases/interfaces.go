package usecases

import "context"

type AddCategoryExecutor interface {
	Execute(ctx context.Context, cmd AddCategoryCommand) (*AddCategoryResult, error)
}

type RemoveCategoryExecutor interface {
	Execute(ctx context.Context, cmd RemoveCategoryCommand) error
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]string, error)
}

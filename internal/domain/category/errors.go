package category

import "quickdesk/internal/shared/errors"

const (
	KindEmptyName = "empty_category_name"
	KindDuplicate = "duplicate_category"
)

func ErrEmptyName() error {
	return errors.NewValidationError("Category name cannot be empty.").WithKind(KindEmptyName)
}

func ErrDuplicate() error {
	return errors.NewConflictError("Category already exists.").WithKind(KindDuplicate)
}

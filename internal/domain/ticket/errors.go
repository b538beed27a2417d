package ticket

import "quickdesk/internal/shared/errors"

// Failure kinds surfaced by ticket store operations.
const (
	KindValidation       = "validation_error"
	KindNotFound         = "ticket_not_found"
	KindPermissionDenied = "permission_denied"
	KindAlreadyAssigned  = "already_assigned"
	KindEmptyComment     = "empty_comment"
)

func ErrValidation(message string) error {
	return errors.NewValidationError(message).WithKind(KindValidation)
}

func ErrNotFound() error {
	return errors.NewNotFoundError("Ticket not found!").WithKind(KindNotFound)
}

func ErrPermissionDenied(message string) error {
	return errors.NewForbiddenError(message).WithKind(KindPermissionDenied)
}

func ErrAlreadyAssigned() error {
	return errors.NewConflictError("Ticket is already assigned.").WithKind(KindAlreadyAssigned)
}

func ErrEmptyComment() error {
	return errors.NewValidationError("Comment text cannot be empty.").WithKind(KindEmptyComment)
}

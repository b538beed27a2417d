package user

import "quickdesk/internal/shared/errors"

// Failure kinds surfaced by identity operations. Each maps to a distinct
// user-facing message at the presentation boundary.
const (
	KindDuplicateEmail          = "duplicate_email"
	KindEmailInUse              = "email_in_use"
	KindInvalidCredentials      = "invalid_credentials"
	KindSelfRoleChangeForbidden = "self_role_change_forbidden"
	KindEmptyField              = "empty_field"
	KindWrongPassword           = "wrong_password"
	KindPasswordTooShort        = "password_too_short"
	KindPasswordUnchanged       = "password_unchanged"
	KindSelfDeleteForbidden     = "self_delete_forbidden"
)

func ErrDuplicateEmail() error {
	return errors.NewConflictError("Email already registered. Please login or use a different email.").
		WithKind(KindDuplicateEmail)
}

func ErrEmailInUse() error {
	return errors.NewConflictError("Email already in use by another account.").
		WithKind(KindEmailInUse)
}

func ErrInvalidCredentials() error {
	return errors.NewUnauthorizedError("Invalid email or password. Please try again.").
		WithKind(KindInvalidCredentials)
}

func ErrSelfRoleChangeForbidden() error {
	return errors.NewForbiddenError("You cannot change your own role directly. Please ask another admin.").
		WithKind(KindSelfRoleChangeForbidden)
}

func ErrEmptyField() error {
	return errors.NewValidationError("Name and Email cannot be empty.").
		WithKind(KindEmptyField)
}

func ErrWrongPassword() error {
	return errors.NewValidationError("Current password incorrect.").
		WithKind(KindWrongPassword)
}

func ErrPasswordTooShort() error {
	return errors.NewValidationError("New password must be at least 6 characters.").
		WithKind(KindPasswordTooShort)
}

func ErrPasswordUnchanged() error {
	return errors.NewValidationError("New password cannot be the same as the old password.").
		WithKind(KindPasswordUnchanged)
}

func ErrSelfDeleteForbidden() error {
	return errors.NewForbiddenError("You cannot delete your own account!").
		WithKind(KindSelfDeleteForbidden)
}

func ErrNotFound() error {
	return errors.NewNotFoundError("User not found.")
}

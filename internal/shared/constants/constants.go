package constants

// Pagination defaults for the ticket dashboard.
const (
	DefaultPage     = 1
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Attachment limits enforced at the HTTP boundary.
const (
	MaxAttachments    = 5
	MaxAttachmentSize = 5 * 1024 * 1024
	MinPasswordLength = 6
)

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

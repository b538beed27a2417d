package ticket

// Attachment is file metadata only; no binary content is persisted.
// Count and size limits are enforced at the presentation boundary.
type Attachment struct {
	Name string
	Size int64
	Type string
}

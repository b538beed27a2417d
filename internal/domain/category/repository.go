package category

import "context"

// Repository stores the ordered list of category labels. Add appends a
// normalized label; Remove is idempotent, removing a label that is not
// present succeeds without effect.
type Repository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}

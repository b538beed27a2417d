package repository

import (
	"context"

	"quickdesk/internal/infrastructure/state"
)

// CategoryRepository implements category.Repository over the state
// store.
type CategoryRepository struct {
	store *state.Store
}

func NewCategoryRepository(store *state.Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) List(_ context.Context) ([]string, error) {
	var out []string
	r.store.View(func(st *state.AppState) {
		out = make([]string, len(st.Categories))
		copy(out, st.Categories)
	})
	return out, nil
}

func (r *CategoryRepository) Add(ctx context.Context, name string) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		st.Categories = append(st.Categories, name)
		return nil
	})
}

func (r *CategoryRepository) Remove(ctx context.Context, name string) error {
	return r.store.Mutate(ctx, func(st *state.AppState) error {
		kept := st.Categories[:0]
		for _, c := range st.Categories {
			if c != name {
				kept = append(kept, c)
			}
		}
		st.Categories = kept
		return nil
	})
}

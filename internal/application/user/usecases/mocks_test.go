package usecases

import (
	"context"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/domain/user"
	"quickdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc              func(ctx context.Context, u *user.User) error
	MutateFunc            func(ctx context.Context, id uint, fn func(*user.User) error) error
	DeleteWithCascadeFunc func(ctx context.Context, id uint, sweep func(tickets []*ticket.Ticket) error) error
	GetByIDFunc           func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*user.User, error)
	ListFunc              func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Mutate(ctx context.Context, id uint, fn func(*user.User) error) error {
	if m.MutateFunc != nil {
		return m.MutateFunc(ctx, id, fn)
	}
	return user.ErrNotFound()
}

func (m *mockUserRepository) DeleteWithCascade(ctx context.Context, id uint, sweep func(tickets []*ticket.Ticket) error) error {
	if m.DeleteWithCascadeFunc != nil {
		return m.DeleteWithCascadeFunc(ctx, id, sweep)
	}
	return user.ErrNotFound()
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrNotFound()
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }

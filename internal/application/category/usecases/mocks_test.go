package usecases

import (
	"context"

	"quickdesk/internal/shared/logger"
)

type mockCategoryRepository struct {
	ListFunc   func(ctx context.Context) ([]string, error)
	AddFunc    func(ctx context.Context, name string) error
	RemoveFunc func(ctx context.Context, name string) error
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Add(ctx context.Context, name string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, name)
	}
	return nil
}

func (m *mockCategoryRepository) Remove(ctx context.Context, name string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, name)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }

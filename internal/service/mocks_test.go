package service

import (
	"MyWeddBlue/internal/model"
	"MyWeddBlue/internal/ornament"
	"MyWeddBlue/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// мок для repo.ScopeRepository
type mockScopeRepo struct{ mock.Mock }

func (m *mockScopeRepo) CreateClient(ctx context.Context, c *model.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockScopeRepo) CreateTemplate(ctx context.Context, t *model.Template) error {
	return m.Called(ctx, t).Error(0)
}
func (m *mockScopeRepo) ListClients(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockScopeRepo) ListTemplates(ctx context.Context) ([]model.Template, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Template); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockScopeRepo) GetClient(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockScopeRepo) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Template); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockScopeRepo) Exists(ctx context.Context, scope ornament.Scope) (bool, error) {
	args := m.Called(ctx, scope)
	return args.Bool(0), args.Error(1)
}

var _ repo.ScopeRepository = (*mockScopeRepo)(nil)

// мок для repo.OrnamentRepository
type mockOrnamentRepo struct{ mock.Mock }

func (m *mockOrnamentRepo) Load(ctx context.Context, scope ornament.Scope) (ornament.Data, bool, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(ornament.Data), args.Bool(1), args.Error(2)
}
func (m *mockOrnamentRepo) Replace(ctx context.Context, scope ornament.Scope, data ornament.Data) error {
	return m.Called(ctx, scope, data).Error(0)
}

var _ repo.OrnamentRepository = (*mockOrnamentRepo)(nil)

type fixedProber float64

func (p fixedProber) Aspect(string) float64 { return float64(p) }

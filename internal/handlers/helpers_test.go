package handlers_test

import (
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/handlers"
	"MyWeddBlue/internal/middleware"
	"MyWeddBlue/internal/model"
	"MyWeddBlue/internal/ornament"
	"MyWeddBlue/internal/repo"
	"MyWeddBlue/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockScopeRepo struct{ mock.Mock }

func (m *hMockScopeRepo) CreateClient(ctx context.Context, c *model.Client) error {
	return m.Called(ctx, c).Error(0)
}
func (m *hMockScopeRepo) CreateTemplate(ctx context.Context, t *model.Template) error {
	return m.Called(ctx, t).Error(0)
}
func (m *hMockScopeRepo) ListClients(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockScopeRepo) ListTemplates(ctx context.Context) ([]model.Template, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Template); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockScopeRepo) GetClient(ctx context.Context, id string) (*model.Client, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Client); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockScopeRepo) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Template); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockScopeRepo) Exists(ctx context.Context, scope ornament.Scope) (bool, error) {
	args := m.Called(ctx, scope)
	return args.Bool(0), args.Error(1)
}

var _ repo.ScopeRepository = (*hMockScopeRepo)(nil)

type hMockOrnamentRepo struct{ mock.Mock }

func (m *hMockOrnamentRepo) Load(ctx context.Context, scope ornament.Scope) (ornament.Data, bool, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(ornament.Data), args.Bool(1), args.Error(2)
}
func (m *hMockOrnamentRepo) Replace(ctx context.Context, scope ornament.Scope, data ornament.Data) error {
	return m.Called(ctx, scope, data).Error(0)
}

var _ repo.OrnamentRepository = (*hMockOrnamentRepo)(nil)

type testEnv struct {
	router http.Handler
	cfg    *config.Config
	scopes *hMockScopeRepo
	orns   *hMockOrnamentRepo
}

func newHandlersTestRouter(t *testing.T, opts handlers.Options) testEnv {
	t.Helper()
	cfg := &config.Config{
		CORSOrigins:  []string{"*"},
		ImageMaxMB:   1,
		ImageMaxSide: 100,
		ImageQuality: 0.8,
	}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)
	sr := &hMockScopeRepo{}
	or := &hMockOrnamentRepo{}

	scopeSvc := service.NewScopeService(sr, logger)
	// без кэша: каждый запрос доходит до репозитория
	ornSvc := service.NewOrnamentService(sr, or, nil, nil, logger)
	h := handlers.NewHandler(scopeSvc, ornSvc, logger, cfg, opts)
	return testEnv{router: h.Router, cfg: cfg, scopes: sr, orns: or}
}

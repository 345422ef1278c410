package commands

import (
	"MyWeddBlue/internal/cache"
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/handlers"
	"MyWeddBlue/internal/middleware"
	"MyWeddBlue/internal/repo"
	"MyWeddBlue/internal/service"
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// testServer поднимает настоящий API поверх in-memory SQLite и возвращает
// конфиг клиента, указывающий на него, и id созданного клиента.
func testServer(t *testing.T) (*config.Config, string) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	logger := zap.NewNop().Sugar()
	middleware.SetLogger(logger)
	scopes := repo.NewScopeRepository(db)
	scopeSvc := service.NewScopeService(scopes, logger)
	ornSvc := service.NewOrnamentService(scopes, repo.NewOrnamentRepository(db), cache.NewMemory(time.Minute, nil), nil, logger)
	srvCfg := &config.Config{CORSOrigins: []string{"*"}, ImageMaxMB: 0.5, ImageMaxSide: 800, ImageQuality: 0.9}
	h := handlers.NewHandler(scopeSvc, ornSvc, logger, srvCfg, handlers.Options{})
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)

	c, err := scopeSvc.CreateClient(context.Background(), "anna-ivan", "Anna & Ivan")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return &config.Config{ServerURL: ts.URL}, c.ID
}

// run выполняет команду через Dispatch, подставляя ответы на подтверждения.
func run(t *testing.T, cfg *config.Config, input string, args ...string) (string, int) {
	t.Helper()
	oldIn := In
	In = strings.NewReader(input)
	defer func() { In = oldIn }()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return out, code
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

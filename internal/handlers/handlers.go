package handlers

import (
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/middleware"
	"MyWeddBlue/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Options — необязательные зависимости роутера.
type Options struct {
	// Gatherer отдаётся на /metrics при включённых метриках.
	Gatherer prometheus.Gatherer
	// Limiter ограничивает запросы на запись; nil — без ограничения.
	Limiter *middleware.RateLimiter
}

// NewHandler разводящий для хендлеров
func NewHandler(
	scopeService *service.ScopeService,
	ornamentService *service.OrnamentService,
	logger *zap.SugaredLogger,
	config *config.Config,
	opts Options,
) *Handler {
	r := chi.NewRouter()

	r.Use(gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(config.CORSOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Content-Encoding", "Accept-Encoding"}),
	))
	if config.Metrics {
		r.Use(middleware.WithMetrics)
	}
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	scopeHandler := NewScopeHandler(scopeService, logger)
	ornamentHandler := NewOrnamentHandler(ornamentService, logger)
	imageHandler := NewImageHandler(logger, config)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if config.Metrics {
		g := opts.Gatherer
		if g == nil {
			g = prometheus.DefaultGatherer
		}
		r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}

	// Scope routes
	r.Get("/api/clients", scopeHandler.ListClients)
	r.Get("/api/clients/{id}", scopeHandler.GetClient)
	r.Get("/api/templates", scopeHandler.ListTemplates)

	// Ornament read routes
	r.Get("/api/{kind}/{id}/ornaments", ornamentHandler.Get)
	r.Get("/api/{kind}/{id}/sections", ornamentHandler.Sections)
	r.Get("/api/{kind}/{id}/sections/{section}/render", ornamentHandler.Render)
	r.Get("/api/{kind}/{id}/sections/{section}/render.html", ornamentHandler.RenderHTML)

	// Write routes
	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(opts.Limiter.Middleware)
		}
		r.Post("/api/clients", scopeHandler.CreateClient)
		r.Post("/api/templates", scopeHandler.CreateTemplate)
		r.Put("/api/{kind}/{id}/ornaments", ornamentHandler.Save)
		r.Post("/api/{kind}/{id}/ornaments", ornamentHandler.Save)
		r.Delete("/api/{kind}/{id}/ornaments", ornamentHandler.Reset)
		r.Post("/api/images/compress", imageHandler.Compress)
	})

	return &Handler{Router: r}
}

package main

import (
	"MyWeddBlue/internal/cache"
	"MyWeddBlue/internal/config"
	"MyWeddBlue/internal/handlers"
	"MyWeddBlue/internal/imaging"
	"MyWeddBlue/internal/middleware"
	"MyWeddBlue/internal/repo"
	"MyWeddBlue/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	var logger *zap.Logger
	var err error
	if cfg.LogProduction {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// кэш: redis, если задан адрес, иначе в памяти процесса
	var store cache.Store
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL, sugar)
		if err != nil {
			sugar.Warnw("redis unavailable, falling back to memory cache", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer rc.Close()
			store = rc
		}
	}
	if store == nil {
		mem := cache.NewMemory(cfg.CacheTTL, nil)
		go mem.RunCleanup(ctx)
		store = mem
	}

	var opts handlers.Options
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		if err := middleware.RegisterMetrics(reg); err != nil {
			sugar.Fatalw("failed to register http metrics", "error", err)
		}
		if err := service.RegisterMetrics(reg); err != nil {
			sugar.Fatalw("failed to register service metrics", "error", err)
		}
		opts.Gatherer = reg
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateBurst)
	go limiter.RunCleanup(ctx)
	opts.Limiter = limiter

	scopeRepo := repo.NewScopeRepository(gormDB)
	ornamentRepo := repo.NewOrnamentRepository(gormDB)
	scopeService := service.NewScopeService(scopeRepo, sugar)
	// пропорции изображений держим в памяти процесса независимо от кэша коллекций
	aspects := cache.NewMemory(cfg.CacheTTL, nil)
	go aspects.RunCleanup(ctx)
	ornamentService := service.NewOrnamentService(scopeRepo, ornamentRepo, store, imaging.NewProber(aspects), sugar)

	h := handlers.NewHandler(scopeService, ornamentService, sugar, cfg, opts)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"CacheTTL", cfg.CacheTTL,
		"Redis", cfg.RedisAddr != "",
		"Metrics", cfg.Metrics,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}

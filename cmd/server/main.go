package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/nutririsk/internal/api"
	"github.com/Skufu/nutririsk/internal/auth"
	"github.com/Skufu/nutririsk/internal/cache"
	"github.com/Skufu/nutririsk/internal/config"
	"github.com/Skufu/nutririsk/internal/explain"
	"github.com/Skufu/nutririsk/internal/foodlog"
	"github.com/Skufu/nutririsk/internal/logger"
	"github.com/Skufu/nutririsk/internal/riskmodel"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer lg.Sync()

	gin.SetMode(cfg.GinMode)

	deps, cleanup, err := buildDeps(context.Background(), cfg, lg)
	if err != nil {
		lg.Fatal("startup failed", "error", err)
	}
	defer cleanup()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server error", "error", err)
		}
	}()

	lg.Info("server listening", "port", cfg.Port)
	waitForShutdown(server, lg)
}

// buildDeps connects the optional backends named by cfg. The returned cleanup
// closes whatever was opened.
func buildDeps(ctx context.Context, cfg *config.Config, lg *logger.Logger) (api.Deps, func(), error) {
	deps := api.Deps{
		Log:        lg,
		Auth:       auth.New(cfg.JWTSecret, lg),
		StaticRoot: cfg.StaticDir,
	}
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				lg.Warn("close failed", "error", err)
			}
		}
	}

	if cfg.EnableDB {
		store, err := foodlog.Open(ctx, cfg.DatabaseURL, lg)
		if err != nil {
			cleanup()
			return api.Deps{}, nil, fmt.Errorf("database connection failed: %w", err)
		}
		closers = append(closers, store.Close)
		deps.DB = store
		deps.Foods = store
	}

	if cfg.RedisAddr != "" {
		kv, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.CacheTTL)
		if err != nil {
			cleanup()
			return api.Deps{}, nil, fmt.Errorf("cache connection failed: %w", err)
		}
		closers = append(closers, kv.Close)
		deps.Cache = kv
	}

	if cfg.LLMAPIKey != "" {
		deps.Explainer = explain.New(explain.NewOpenAI(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel), lg)
	} else {
		lg.Info("LLM_API_KEY not set, AI explanations disabled")
	}

	if cfg.RiskModelPath != "" {
		model, err := riskmodel.Load(cfg.RiskModelPath)
		if err != nil {
			lg.Warn("risk model unavailable", "path", cfg.RiskModelPath, "error", err)
		} else {
			deps.Model = model
		}
	}

	return deps, cleanup, nil
}

func waitForShutdown(server *http.Server, lg *logger.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	lg.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		lg.Error("graceful shutdown failed", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nrvenki/recipe/config"
	"github.com/Nrvenki/recipe/internal/email"
	"github.com/Nrvenki/recipe/internal/health"
	"github.com/Nrvenki/recipe/internal/infrastructure/postgres"
	"github.com/Nrvenki/recipe/internal/keepalive"
	ctxlog "github.com/Nrvenki/recipe/internal/log"
	"github.com/Nrvenki/recipe/internal/metrics"
	httptransport "github.com/Nrvenki/recipe/internal/transport/http"
	"github.com/Nrvenki/recipe/internal/transport/http/handler"
	"github.com/Nrvenki/recipe/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Favorites
	favoriteRepo := postgres.NewFavoriteRepository(pool)
	favoriteUsecase := usecase.NewFavoriteUsecase(favoriteRepo)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUsecase, logger)

	// Users
	userRepo := postgres.NewUserRepository(pool)
	userUsecase := usecase.NewUserUsecase(userRepo)
	userHandler := handler.NewUserHandler(userUsecase, logger)

	// Password reset
	sender := email.NewSender(cfg.Env, cfg.ResendAPIKey, cfg.ResendFrom, logger)
	resetRepo := postgres.NewResetCodeRepository(pool)
	resetUsecase := usecase.NewPasswordResetUsecase(resetRepo, sender)
	resetHandler := handler.NewPasswordResetHandler(resetUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, cfg.Env, favoriteHandler, userHandler, resetHandler),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	pinger := keepalive.New(cfg.SelfURL, logger)
	if cfg.Env == "production" {
		if err := pinger.Start(); err != nil {
			stop()
			log.Fatalf("keepalive: %v", err)
		}
		defer pinger.Stop()
	}

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"

	"github.com/poupanca/poupanca/internal/app"
	"github.com/poupanca/poupanca/internal/auth"
	"github.com/poupanca/poupanca/internal/catalog"
	"github.com/poupanca/poupanca/internal/investments"
	"github.com/poupanca/poupanca/internal/observability"
	"github.com/poupanca/poupanca/internal/piggybanks"
	"github.com/poupanca/poupanca/internal/platform/cache"
	"github.com/poupanca/poupanca/internal/platform/db"
	"github.com/poupanca/poupanca/internal/portfolio"
	"github.com/poupanca/poupanca/internal/shared"
	"github.com/poupanca/poupanca/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, cfg.SessionCookieName, cfg.SessionTTL, cfg.IsProduction())
	idempotencyStore := shared.NewIdempotencyStore(pool)
	validate := validator.New()
	metrics := observability.NewMetrics()

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	investmentRepo := investments.NewRepository(pool)
	investmentService := investments.NewService(investmentRepo)
	investmentHandler := investments.NewHandler(logger, investmentService, validate, idempotencyStore)

	piggyBankRepo := piggybanks.NewRepository(pool)
	piggyBankService := piggybanks.NewService(piggyBankRepo)
	piggyBankHandler := piggybanks.NewHandler(logger, piggyBankService, validate, idempotencyStore)

	portfolioService := portfolio.NewService(investmentRepo, piggyBankRepo)
	portfolioHandler := portfolio.NewHandler(logger, portfolioService, time.Now)

	catalogHandler := catalog.NewHandler(logger, catalog.NewService())

	jobsInspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := jobsInspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobsHandler := jobs.NewHandler(jobsInspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		AuthHandler:       authHandler,
		InvestmentHandler: investmentHandler,
		PiggyBankHandler:  piggyBankHandler,
		PortfolioHandler:  portfolioHandler,
		CatalogHandler:    catalogHandler,
		JobsHandler:       jobsHandler,
		Pool:              pool,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("http server listening", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

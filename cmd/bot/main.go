package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/set-night/gemigram/internal/config"
	"github.com/set-night/gemigram/internal/handler"
	"github.com/set-night/gemigram/internal/health"
	"github.com/set-night/gemigram/internal/metrics"
	"github.com/set-night/gemigram/internal/middleware"
	"github.com/set-night/gemigram/internal/repository"
	"github.com/set-night/gemigram/internal/service"
	"github.com/set-night/gemigram/internal/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("bot exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("bot stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	// Open document store
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()
	slog.Info("store opened", "driver", cfg.StoreDriver)

	// Initialize services
	gemini, err := service.NewGeminiService(ctx, cfg.GenAIKey, cfg.GenAIModel)
	if err != nil {
		return err
	}
	defer gemini.Close()

	search, err := service.NewSearchService(ctx, cfg.SearchAPIKey, cfg.SearchCX, config.SearchResultLimit)
	if err != nil {
		return err
	}

	m := metrics.New()

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(m),
		),
		bot.WithWorkers(cfg.Workers),
		// Each worker finishes an update before taking the next one.
		bot.WithNotAsyncHandlers(),
		bot.WithErrorsHandler(func(err error) {
			slog.Error("telegram polling error", "error", err)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return err
	}

	if cfg.DropPendingUpdates {
		if _, err := b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true}); err != nil {
			slog.Warn("failed to drop pending updates", "error", err)
		}
	}

	h := handler.New(handler.Deps{
		API:        b,
		Users:      service.NewUserService(store),
		History:    service.NewHistoryService(store),
		AI:         gemini,
		Search:     search,
		Rasterizer: service.NewPDFRasterizer(config.PDFDPI),
		Files:      telegram.NewFileFetcher(b, nil),
		Metrics:    m,
		TgLogger:   telegram.NewTelegramLogger(b, cfg),
	})
	h.Register(b)

	// Health server runs beside the poller and stops with ctx.
	go func() {
		if err := health.NewServer(cfg.ListenAddr(), m).Run(ctx); err != nil {
			slog.Error("health server failed", "error", err)
		}
	}()

	slog.Info("starting bot", "workers", cfg.Workers, "model", cfg.GenAIModel)
	b.Start(ctx)
	return nil
}

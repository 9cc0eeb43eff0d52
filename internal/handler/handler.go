package handler

import (
	"context"
	"log/slog"

	"github.com/set-night/gemigram/internal/domain"
	"github.com/set-night/gemigram/internal/metrics"
	"github.com/set-night/gemigram/internal/service"
	"github.com/set-night/gemigram/internal/telegram"
)

// Generator produces text from a prompt, or from an instruction and an image.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	DescribeImage(ctx context.Context, prompt string, image []byte) (string, error)
}

// Searcher returns the top web results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// Rasterizer renders the first page of a PDF to an encoded image.
type Rasterizer interface {
	FirstPage(pdf []byte) ([]byte, error)
}

// Downloader fetches attachment bytes by Telegram file id.
type Downloader interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Handler holds all dependencies needed by the update handlers.
type Handler struct {
	api        telegram.API
	users      *service.UserService
	history    *service.HistoryService
	ai         Generator
	search     Searcher
	rasterizer Rasterizer
	files      Downloader
	metrics    *metrics.Metrics
	tgLogger   *telegram.TelegramLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	API        telegram.API
	Users      *service.UserService
	History    *service.HistoryService
	AI         Generator
	Search     Searcher
	Rasterizer Rasterizer
	Files      Downloader
	Metrics    *metrics.Metrics
	TgLogger   *telegram.TelegramLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		api:        deps.API,
		users:      deps.Users,
		history:    deps.History,
		ai:         deps.AI,
		search:     deps.Search,
		rasterizer: deps.Rasterizer,
		files:      deps.Files,
		metrics:    deps.Metrics,
		tgLogger:   deps.TgLogger,
	}
}

// reply sends text and only logs a failed send; there is nobody else to tell.
func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	if err := telegram.Reply(ctx, h.api, chatID, text); err != nil {
		slog.Error("send reply", "error", err, "chat_id", chatID)
	}
}

// fail records a handler failure in logs, metrics and the operator chat.
func (h *Handler) fail(name string, chatID int64, err error) {
	slog.Error("handler failed", "handler", name, "error", err, "chat_id", chatID)
	h.metrics.RecordFailure(name)
	h.tgLogger.LogError(err, name)
}

package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/gemigram/internal/service"
)

// handleWebSearch answers /websearch with the top results. Unlike the chat
// handler it echoes the raw error text back to the user.
func (h *Handler) handleWebSearch(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	query := commandArgs(msg.Text)
	if query == "" {
		h.reply(ctx, chatID, msgSearchUsage)
		return
	}

	if err := h.webSearch(ctx, chatID, query); err != nil {
		h.fail("websearch", chatID, err)
		h.reply(ctx, chatID, fmt.Sprintf(msgSearchError, err))
	}
}

func (h *Handler) webSearch(ctx context.Context, chatID int64, query string) error {
	results, err := h.search.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		h.reply(ctx, chatID, msgSearchEmpty)
		return nil
	}

	summary := service.FormatResults(results)
	h.reply(ctx, chatID, msgSearchResults+summary)

	return h.history.RecordSearch(ctx, chatID, query, summary, results)
}

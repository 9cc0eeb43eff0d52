package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/gemigram/internal/telegram"
)

// handleStart registers the chat once and asks for its contact card.
func (h *Handler) handleStart(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chat := update.Message.Chat

	_, created, err := h.users.Register(ctx, chat.ID, chat.FirstName, chat.Username)
	if err != nil {
		h.fail("start", chat.ID, err)
		h.reply(ctx, chat.ID, msgProcessingError)
		return
	}
	if !created {
		h.reply(ctx, chat.ID, msgAlreadyRegistered)
		return
	}

	slog.Info("user registered", "chat_id", chat.ID, "username", chat.Username)
	h.tgLogger.LogRegistration(chat.ID, chat.FirstName, chat.Username)

	_, err = h.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chat.ID,
		Text:        msgWelcome,
		ReplyMarkup: telegram.ContactRequestKeyboard(btnRegister),
	})
	if err != nil {
		slog.Error("send registration prompt", "error", err, "chat_id", chat.ID)
	}
}

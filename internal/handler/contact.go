package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/gemigram/internal/telegram"
)

// handleContact stores a shared phone number on the chat's user record.
func (h *Handler) handleContact(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	if msg.Contact == nil {
		h.reply(ctx, chatID, msgContactMissing)
		return
	}

	matched, err := h.users.SaveContact(ctx, chatID, msg.Contact.PhoneNumber)
	if err != nil {
		h.fail("contact", chatID, err)
		h.reply(ctx, chatID, msgProcessingError)
		return
	}
	if !matched {
		// No record is created here; /start owns user creation.
		slog.Warn("contact shared by unregistered chat", "chat_id", chatID)
	}

	_, err = h.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        msgContactSaved,
		ReplyMarkup: telegram.RemoveKeyboard(),
	})
	if err != nil {
		slog.Error("send contact confirmation", "error", err, "chat_id", chatID)
	}
}

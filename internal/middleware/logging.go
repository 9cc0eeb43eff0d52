package middleware

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/gemigram/internal/metrics"
)

// UpdateKind names the content an update carries, in handler priority order.
func UpdateKind(update *models.Update) string {
	msg := update.Message
	if msg == nil {
		return "other"
	}
	switch {
	case msg.Contact != nil:
		return "contact"
	case len(msg.Photo) > 0:
		return "photo"
	case msg.Document != nil:
		return "document"
	case strings.HasPrefix(msg.Text, "/"):
		return "command"
	case msg.Text != "":
		return "text"
	default:
		return "other"
	}
}

// Logging returns middleware that logs update processing time and counts updates.
func Logging(m *metrics.Metrics) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()

			kind := UpdateKind(update)
			var chatID int64
			if update.Message != nil {
				chatID = update.Message.Chat.ID
			}
			m.RecordUpdate(kind)

			next(ctx, b, update)

			slog.Debug("update processed",
				"update_id", update.ID,
				"kind", kind,
				"chat_id", chatID,
				"duration", time.Since(start),
			)
		}
	}
}

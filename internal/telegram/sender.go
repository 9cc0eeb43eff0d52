package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
)

// SendChunks sends text as consecutive messages of at most maxLen characters.
// It stops at the first failed send.
func SendChunks(ctx context.Context, api API, chatID int64, text string, maxLen int) error {
	for i, part := range ChunkText(text, maxLen) {
		_, err := api.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   part,
		})
		if err != nil {
			return fmt.Errorf("send part %d: %w", i+1, err)
		}
	}
	return nil
}

// Reply sends a single plain-text message.
func Reply(ctx context.Context, api API, chatID int64, text string) error {
	_, err := api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

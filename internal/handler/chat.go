package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/gemigram/internal/config"
	"github.com/set-night/gemigram/internal/domain"
	"github.com/set-night/gemigram/internal/telegram"
)

const pdfMIMEType = "application/pdf"

// handleChat answers photos, PDFs and plain text. Every failure collapses
// into one fixed reply.
func (h *Handler) handleChat(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	if err := h.converse(ctx, msg); err != nil {
		h.fail("chat", msg.Chat.ID, err)
		h.reply(ctx, msg.Chat.ID, msgProcessingError)
	}
}

func (h *Handler) converse(ctx context.Context, msg *models.Message) error {
	switch {
	case len(msg.Photo) > 0:
		return h.describePhoto(ctx, msg)
	case msg.Document != nil:
		return h.describeDocument(ctx, msg)
	case msg.Text != "":
		return h.answerText(ctx, msg)
	default:
		return nil
	}
}

func (h *Handler) describePhoto(ctx context.Context, msg *models.Message) error {
	// Telegram lists sizes from smallest to largest.
	photo := msg.Photo[len(msg.Photo)-1]

	data, err := h.files.Download(ctx, photo.FileID)
	if err != nil {
		return fmt.Errorf("download photo: %w", err)
	}

	description, err := h.describe(ctx, data)
	if err != nil {
		return err
	}

	if err := h.history.RecordFile(ctx, msg.Chat.ID, domain.FileTypeImage, photo.FileID+".jpg", description); err != nil {
		return fmt.Errorf("record image: %w", err)
	}
	return telegram.Reply(ctx, h.api, msg.Chat.ID, msgImagePrefix+description)
}

func (h *Handler) describeDocument(ctx context.Context, msg *models.Message) error {
	doc := msg.Document
	if doc.MimeType != pdfMIMEType {
		slog.Info("rejected non-pdf document", "chat_id", msg.Chat.ID, "mime_type", doc.MimeType)
		return telegram.Reply(ctx, h.api, msg.Chat.ID, msgOnlyPDF)
	}

	data, err := h.files.Download(ctx, doc.FileID)
	if err != nil {
		return fmt.Errorf("download pdf: %w", err)
	}

	page, err := h.rasterizer.FirstPage(data)
	if err != nil {
		return fmt.Errorf("rasterize pdf: %w", err)
	}

	description, err := h.describe(ctx, page)
	if err != nil {
		return err
	}

	if err := h.history.RecordFile(ctx, msg.Chat.ID, domain.FileTypePDF, doc.FileID+".pdf", description); err != nil {
		return fmt.Errorf("record pdf: %w", err)
	}
	return telegram.Reply(ctx, h.api, msg.Chat.ID, msgPDFPrefix+description)
}

// describe asks the model about an image and strips emphasis markers.
func (h *Handler) describe(ctx context.Context, image []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	text, err := h.ai.DescribeImage(ctx, config.ImagePrompt, image)
	if err != nil {
		return "", fmt.Errorf("describe image: %w", err)
	}
	return telegram.CleanMarkdown(text), nil
}

// answerText forwards the raw text, replies in chunks and stores the whole reply once.
func (h *Handler) answerText(ctx context.Context, msg *models.Message) error {
	aiCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	reply, err := h.ai.GenerateText(aiCtx, msg.Text)
	cancel()
	if err != nil {
		return fmt.Errorf("generate reply: %w", err)
	}

	if err := telegram.SendChunks(ctx, h.api, msg.Chat.ID, reply, config.MaxReplyChunkLen); err != nil {
		return err
	}

	if err := h.history.RecordExchange(ctx, msg.Chat.ID, msg.Text, reply); err != nil {
		return fmt.Errorf("record exchange: %w", err)
	}
	return nil
}

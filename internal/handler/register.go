package handler

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	cmdStart     = "start"
	cmdWebSearch = "websearch"
)

// Register registers all handlers on the bot instance. The match functions
// are mutually exclusive, so dispatch never depends on registration order.
func (h *Handler) Register(b *bot.Bot) {
	b.RegisterHandlerMatchFunc(isCommand(cmdStart), h.handleStart)
	b.RegisterHandlerMatchFunc(isCommand(cmdWebSearch), h.handleWebSearch)
	b.RegisterHandlerMatchFunc(hasContact, h.handleContact)
	b.RegisterHandlerMatchFunc(isConversational, h.handleChat)
}

func isCommand(name string) bot.MatchFunc {
	return func(update *models.Update) bool {
		return update.Message != nil && commandName(update.Message.Text) == name
	}
}

func hasContact(update *models.Update) bool {
	return update.Message != nil && update.Message.Contact != nil
}

// isConversational matches photos, documents and plain non-command text.
func isConversational(update *models.Update) bool {
	msg := update.Message
	if msg == nil || msg.Contact != nil {
		return false
	}
	if len(msg.Photo) > 0 || msg.Document != nil {
		return true
	}
	return msg.Text != "" && !strings.HasPrefix(msg.Text, "/")
}

// commandName returns "websearch" for "/websearch@my_bot go", or "" for
// text that is not a command.
func commandName(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	return name
}

// commandArgs returns the words after the command joined by single spaces.
func commandArgs(text string) string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

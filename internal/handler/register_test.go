package handler

import (
	"testing"

	"github.com/go-telegram/bot/models"
)

func TestCommandName(t *testing.T) {
	tests := map[string]string{
		"/start":                "start",
		"/websearch go":         "websearch",
		"/websearch@my_bot go":  "websearch",
		"hello":                 "",
		"":                      "",
		"/":                     "",
		"  /start":              "",
	}
	for in, want := range tests {
		if got := commandName(in); got != want {
			t.Errorf("commandName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCommandArgs(t *testing.T) {
	tests := map[string]string{
		"/websearch":                      "",
		"/websearch   ":                   "",
		"/websearch golang  generics":     "golang generics",
		"/websearch@bot  best\tgo books ": "best go books",
	}
	for in, want := range tests {
		if got := commandArgs(in); got != want {
			t.Errorf("commandArgs(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchersAreExclusive(t *testing.T) {
	updates := map[string]*models.Update{
		"start":     {Message: &models.Message{Text: "/start"}},
		"websearch": {Message: &models.Message{Text: "/websearch go"}},
		"contact":   {Message: &models.Message{Contact: &models.Contact{PhoneNumber: "+1"}}},
		"chat":      {Message: &models.Message{Text: "hello"}},
		"photo":     {Message: &models.Message{Photo: []models.PhotoSize{{FileID: "p"}}}},
		"document":  {Message: &models.Message{Document: &models.Document{FileID: "d"}}},
		"unknown":   {Message: &models.Message{Text: "/help"}},
		"empty":     {},
	}
	want := map[string]int{
		"start": 1, "websearch": 1, "contact": 1, "chat": 1,
		"photo": 1, "document": 1, "unknown": 0, "empty": 0,
	}
	for name, u := range updates {
		n := 0
		for _, match := range []func(*models.Update) bool{
			isCommand(cmdStart), isCommand(cmdWebSearch), hasContact, isConversational,
		} {
			if match(u) {
				n++
			}
		}
		if n != want[name] {
			t.Errorf("%s matched %d handlers, want %d", name, n, want[name])
		}
	}
}

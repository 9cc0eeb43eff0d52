package handler

import (
	"context"
	"testing"

	"github.com/go-telegram/bot/models"
)

func contactUpdate(chatID int64, phone string) *models.Update {
	return &models.Update{Message: &models.Message{
		Chat:    models.Chat{ID: chatID},
		Contact: &models.Contact{PhoneNumber: phone},
	}}
}

func TestHandleContactStoresPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.h.handleStart(ctx, nil, textUpdate(5, "/start"))
	f.h.handleContact(ctx, nil, contactUpdate(5, "+15550100"))

	u := f.store.Users()[0]
	if u.PhoneNumber == nil || *u.PhoneNumber != "+15550100" {
		t.Errorf("PhoneNumber = %v, want +15550100", u.PhoneNumber)
	}
	if got := f.api.sent[len(f.api.sent)-1].Text; got != msgContactSaved {
		t.Errorf("reply = %q, want %q", got, msgContactSaved)
	}
}

func TestHandleContactWithoutRegistration(t *testing.T) {
	f := newFixture(t)

	f.h.handleContact(context.Background(), nil, contactUpdate(9, "+15550100"))

	if n := len(f.store.Users()); n != 0 {
		t.Errorf("store has %d users, want 0", n)
	}
	if got := f.api.texts(); len(got) != 1 || got[0] != msgContactSaved {
		t.Errorf("replies = %q, want [%q]", got, msgContactSaved)
	}
}

func TestHandleContactMissing(t *testing.T) {
	f := newFixture(t)

	f.h.handleContact(context.Background(), nil, textUpdate(9, "555-0100"))

	if got := f.api.texts(); len(got) != 1 || got[0] != msgContactMissing {
		t.Errorf("replies = %q, want [%q]", got, msgContactMissing)
	}
}

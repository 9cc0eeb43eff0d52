package repository

import (
	"context"

	"github.com/set-night/gemigram/internal/domain"
)

// Collection and table names shared by every driver.
const (
	UsersCollection        = "users"
	ChatHistoryCollection  = "chat_history"
	FileMetadataCollection = "file_metadata"
	WebSearchCollection    = "web_search_history"
)

// Store persists the four record kinds keyed by chat id. No uniqueness is
// enforced; callers that need idempotency check FindUser first.
type Store interface {
	// FindUser returns domain.ErrUserNotFound when the chat never registered.
	FindUser(ctx context.Context, chatID int64) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	// SetPhoneNumber updates the user in place and reports whether a record
	// matched. It never creates one.
	SetPhoneNumber(ctx context.Context, chatID int64, phone string) (bool, error)

	InsertChatExchange(ctx context.Context, e *domain.ChatExchange) error
	InsertFileMetadata(ctx context.Context, f *domain.FileMetadata) error
	InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error

	Close(ctx context.Context) error
}

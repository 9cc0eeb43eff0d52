package service

import (
	"context"
	"time"

	"github.com/set-night/gemigram/internal/domain"
	"github.com/set-night/gemigram/internal/repository"
)

// HistoryService appends exchanges, file descriptions and searches to the store.
type HistoryService struct {
	store repository.Store
	now   func() time.Time
}

func NewHistoryService(store repository.Store) *HistoryService {
	return &HistoryService{store: store, now: time.Now}
}

func (s *HistoryService) RecordExchange(ctx context.Context, chatID int64, message, reply string) error {
	return s.store.InsertChatExchange(ctx, &domain.ChatExchange{
		ChatID:      chatID,
		UserMessage: message,
		BotResponse: reply,
		Timestamp:   s.now(),
	})
}

func (s *HistoryService) RecordFile(ctx context.Context, chatID int64, fileType domain.FileType, fileName, description string) error {
	return s.store.InsertFileMetadata(ctx, &domain.FileMetadata{
		ChatID:          chatID,
		FileType:        fileType,
		FileName:        fileName,
		FileDescription: description,
		Timestamp:       s.now(),
	})
}

func (s *HistoryService) RecordSearch(ctx context.Context, chatID int64, query, summary string, results []domain.SearchResult) error {
	var snippets []string
	for _, r := range results {
		snippets = append(snippets, r.Snippet)
	}
	return s.store.InsertSearchRecord(ctx, &domain.SearchRecord{
		ChatID:        chatID,
		UserInput:     query,
		SearchResults: summary,
		Snippets:      snippets,
		Timestamp:     s.now(),
	})
}

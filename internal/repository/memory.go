package repository

import (
	"context"
	"sync"

	"github.com/set-night/gemigram/internal/domain"
)

// MemoryStore keeps records in process memory. It backs local runs with
// STORE_DRIVER=memory and the handler tests.
type MemoryStore struct {
	mu        sync.Mutex
	users     []domain.User
	exchanges []domain.ChatExchange
	files     []domain.FileMetadata
	searches  []domain.SearchRecord
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) FindUser(_ context.Context, chatID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ChatID == chatID {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *MemoryStore) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) SetPhoneNumber(_ context.Context, chatID int64, phone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := false
	for i := range s.users {
		if s.users[i].ChatID == chatID {
			p := phone
			s.users[i].PhoneNumber = &p
			matched = true
		}
	}
	return matched, nil
}

func (s *MemoryStore) InsertChatExchange(_ context.Context, e *domain.ChatExchange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = append(s.exchanges, *e)
	return nil
}

func (s *MemoryStore) InsertFileMetadata(_ context.Context, f *domain.FileMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, *f)
	return nil
}

func (s *MemoryStore) InsertSearchRecord(_ context.Context, r *domain.SearchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append(s.searches, *r)
	return nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

func (s *MemoryStore) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}

func (s *MemoryStore) ChatExchanges() []domain.ChatExchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChatExchange(nil), s.exchanges...)
}

func (s *MemoryStore) FileMetadata() []domain.FileMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.FileMetadata(nil), s.files...)
}

func (s *MemoryStore) SearchRecords() []domain.SearchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SearchRecord(nil), s.searches...)
}

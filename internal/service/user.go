package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/set-night/gemigram/internal/domain"
	"github.com/set-night/gemigram/internal/repository"
)

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

// Register creates the user unless the chat already has a record. The bool
// reports whether a record was created.
func (s *UserService) Register(ctx context.Context, chatID int64, firstName, username string) (*domain.User, bool, error) {
	user, err := s.store.FindUser(ctx, chatID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, fmt.Errorf("get user: %w", err)
	}

	user = &domain.User{
		ChatID:    chatID,
		FirstName: firstName,
		Username:  username,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

// SaveContact stores the phone number on an existing user. It reports false
// when the chat has no user record; nothing is created in that case.
func (s *UserService) SaveContact(ctx context.Context, chatID int64, phone string) (bool, error) {
	matched, err := s.store.SetPhoneNumber(ctx, chatID, phone)
	if err != nil {
		return false, fmt.Errorf("save contact: %w", err)
	}
	return matched, nil
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/set-night/gemigram/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStoreFindUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		s := NewMongoStoreFromDatabase(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "gemigram.users", mtest.FirstBatch, bson.D{
			{Key: "chat_id", Value: int64(42)},
			{Key: "first_name", Value: "Ada"},
			{Key: "username", Value: "ada"},
			{Key: "phone_number", Value: nil},
		}))

		user, err := s.FindUser(context.Background(), 42)
		if err != nil {
			t.Fatalf("FindUser() error = %v", err)
		}
		if user.ChatID != 42 || user.FirstName != "Ada" || user.Username != "ada" {
			t.Errorf("FindUser() = %+v", user)
		}
		if user.PhoneNumber != nil {
			t.Errorf("PhoneNumber = %q, want nil", *user.PhoneNumber)
		}
	})

	mt.Run("missing", func(mt *mtest.T) {
		s := NewMongoStoreFromDatabase(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "gemigram.users", mtest.FirstBatch))

		_, err := s.FindUser(context.Background(), 42)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("FindUser() error = %v, want %v", err, domain.ErrUserNotFound)
		}
	})
}

func TestMongoStoreSetPhoneNumber(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		s := NewMongoStoreFromDatabase(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		ok, err := s.SetPhoneNumber(context.Background(), 42, "+100")
		if err != nil {
			t.Fatalf("SetPhoneNumber() error = %v", err)
		}
		if !ok {
			t.Error("SetPhoneNumber() matched = false, want true")
		}
	})

	mt.Run("no user", func(mt *mtest.T) {
		s := NewMongoStoreFromDatabase(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		ok, err := s.SetPhoneNumber(context.Background(), 42, "+100")
		if err != nil {
			t.Fatalf("SetPhoneNumber() error = %v", err)
		}
		if ok {
			t.Error("SetPhoneNumber() matched = true, want false")
		}
	})
}

func TestMongoStoreInserts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mt.Run("success", func(mt *mtest.T) {
		s := NewMongoStoreFromDatabase(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)
		ctx := context.Background()

		if err := s.CreateUser(ctx, &domain.User{ChatID: 1}); err != nil {
			t.Errorf("CreateUser() error = %v", err)
		}
		if err := s.InsertChatExchange(ctx, &domain.ChatExchange{ChatID: 1, UserMessage: "hi", BotResponse: "hello", Timestamp: now}); err != nil {
			t.Errorf("InsertChatExchange() error = %v", err)
		}
		if err := s.InsertFileMetadata(ctx, &domain.FileMetadata{ChatID: 1, FileType: domain.FileTypeImage, FileName: "f.jpg", Timestamp: now}); err != nil {
			t.Errorf("InsertFileMetadata() error = %v", err)
		}
		if err := s.InsertSearchRecord(ctx, &domain.SearchRecord{ChatID: 1, UserInput: "go", Timestamp: now}); err != nil {
			t.Errorf("InsertSearchRecord() error = %v", err)
		}
	})

	mt.Run("write error", func(mt *mtest.T) {
		s := NewMongoStoreFromDatabase(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := s.InsertChatExchange(context.Background(), &domain.ChatExchange{ChatID: 1, Timestamp: now})
		if err == nil {
			t.Fatal("InsertChatExchange() error = nil, want write error")
		}
	})
}

func TestMongoStoreCloseWithoutClient(t *testing.T) {
	s := &MongoStore{}
	if err := s.Close(context.Background()); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

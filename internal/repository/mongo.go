package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/set-night/gemigram/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &MongoStore{client: client, db: client.Database(dbName)}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// NewMongoStoreFromDatabase wraps an existing database handle. Close is a
// no-op for stores built this way.
func NewMongoStoreFromDatabase(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// EnsureIndexes creates a non-unique chat_id index on every collection.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{UsersCollection, ChatHistoryCollection, FileMetadataCollection, WebSearchCollection} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "chat_id", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("create %s index: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) FindUser(ctx context.Context, chatID int64) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(UsersCollection).FindOne(ctx, bson.M{"chat_id": chatID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *MongoStore) CreateUser(ctx context.Context, user *domain.User) error {
	if _, err := s.db.Collection(UsersCollection).InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoStore) SetPhoneNumber(ctx context.Context, chatID int64, phone string) (bool, error) {
	res, err := s.db.Collection(UsersCollection).UpdateOne(ctx,
		bson.M{"chat_id": chatID},
		bson.M{"$set": bson.M{"phone_number": phone}},
	)
	if err != nil {
		return false, fmt.Errorf("update phone number: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (s *MongoStore) InsertChatExchange(ctx context.Context, e *domain.ChatExchange) error {
	if _, err := s.db.Collection(ChatHistoryCollection).InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert chat exchange: %w", err)
	}
	return nil
}

func (s *MongoStore) InsertFileMetadata(ctx context.Context, f *domain.FileMetadata) error {
	if _, err := s.db.Collection(FileMetadataCollection).InsertOne(ctx, f); err != nil {
		return fmt.Errorf("insert file metadata: %w", err)
	}
	return nil
}

func (s *MongoStore) InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error {
	if _, err := s.db.Collection(WebSearchCollection).InsertOne(ctx, r); err != nil {
		return fmt.Errorf("insert search record: %w", err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

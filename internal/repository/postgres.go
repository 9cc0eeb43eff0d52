package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/gemigram/internal/domain"
)

// PostgresStore keeps the same records as MongoStore in one table per kind.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// OpenPostgresStore connects, applies the embedded migrations and returns a ready store.
func OpenPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	migrations, err := MigrationsFS()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("load embedded migrations: %w", err)
	}
	if err := RunMigrations(databaseURL, migrations); err != nil {
		pool.Close()
		return nil, err
	}

	return NewPostgresStore(pool), nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) FindUser(ctx context.Context, chatID int64) (*domain.User, error) {
	var user domain.User
	err := s.pool.QueryRow(ctx,
		`SELECT chat_id, first_name, username, phone_number
		 FROM users WHERE chat_id = $1
		 ORDER BY created_at LIMIT 1`, chatID,
	).Scan(&user.ChatID, &user.FirstName, &user.Username, &user.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, chat_id, first_name, username, phone_number)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), user.ChatID, user.FirstName, user.Username, user.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) SetPhoneNumber(ctx context.Context, chatID int64, phone string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET phone_number = $2 WHERE chat_id = $1`, chatID, phone)
	if err != nil {
		return false, fmt.Errorf("update phone number: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) InsertChatExchange(ctx context.Context, e *domain.ChatExchange) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO chat_history (id, chat_id, user_message, bot_response, timestamp)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), e.ChatID, e.UserMessage, e.BotResponse, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert chat exchange: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertFileMetadata(ctx context.Context, f *domain.FileMetadata) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO file_metadata (id, chat_id, file_type, file_name, file_description, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), f.ChatID, string(f.FileType), f.FileName, f.FileDescription, f.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert file metadata: %w", err)
	}
	return nil
}

func (s *PostgresStore) InsertSearchRecord(ctx context.Context, r *domain.SearchRecord) error {
	snippets := r.Snippets
	if snippets == nil {
		snippets = []string{}
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO web_search_history (id, chat_id, user_input, search_results, snippets, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), r.ChatID, r.UserInput, r.SearchResults, snippets, r.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert search record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

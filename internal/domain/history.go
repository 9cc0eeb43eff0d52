package domain

import "time"

type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
)

// ChatExchange is one text message and the full generated reply to it.
type ChatExchange struct {
	ChatID      int64     `bson:"chat_id"`
	UserMessage string    `bson:"user_message"`
	BotResponse string    `bson:"bot_response"`
	Timestamp   time.Time `bson:"timestamp"`
}

// FileMetadata describes a processed photo or PDF attachment.
type FileMetadata struct {
	ChatID          int64     `bson:"chat_id"`
	FileType        FileType  `bson:"file_type"`
	FileName        string    `bson:"file_name"`
	FileDescription string    `bson:"file_description"`
	Timestamp       time.Time `bson:"timestamp"`
}

// SearchRecord stores a /websearch query and the summary sent back.
type SearchRecord struct {
	ChatID        int64     `bson:"chat_id"`
	UserInput     string    `bson:"user_input"`
	SearchResults string    `bson:"search_results"`
	Snippets      []string  `bson:"snippets,omitempty"`
	Timestamp     time.Time `bson:"timestamp"`
}

package config

import "time"

const (
	// Telegram rejects messages above 4096 characters; replies are cut below that.
	MaxReplyChunkLen = 4000

	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Instruction sent alongside every image
	ImagePrompt = "Describe the given image."

	// PDF rasterization
	PDFDPI = 200

	// Search results kept per query
	SearchResultLimit = 3

	// Health server
	ShutdownTimeout = 5 * time.Second
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 10 * time.Second
)

package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache defines the interface (port) for caching operations.
// Implementations of this interface will be the adapters (e.g., RedisCacheAdapter).
type Cache interface {
	// Get retrieves an item from the cache.
	// It returns ErrCacheMiss if the key is not found.
	Get(ctx context.Context, key string) (string, error)

	// Set adds an item to the cache, overwriting an existing item if one exists.
	// If expiration is 0, the item is cached indefinitely (if supported by the adapter).
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item from the cache.
	// It should not return an error if the key is not found.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}

// HistoryRepository is the port for the append-only interview history.
type HistoryRepository interface {
	// Append persists one entry. Entries are write-once.
	Append(entry *HistoryEntry) error

	// Query returns entries matching the optional role/level equality
	// filters (empty string matches everything), newest first.
	Query(role, level string) ([]*HistoryEntry, error)
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	// Transcribe returns ErrSpeechUnintelligible when the recognizer
	// produces no transcript and ErrSpeechServiceError when the service
	// cannot be reached. No retries are attempted.
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// SentimentAnalyzer scores the sentiment of a text in [0,1].
type SentimentAnalyzer interface {
	AnalyzeSentiment(ctx context.Context, text string) (float64, error)
}

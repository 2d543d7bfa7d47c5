package storage

import (
	"context"
	"time"

	"github.com/donestate/estated/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds properties similar to the given vector.
	// Returns records with similarity >= minSimilarity, up to limit results.
	// Results are ordered by similarity score (highest first).
	// Vector-similarity execution lives in the storage engine; callers never
	// rank results themselves.
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// PropertyRepository provides operations for managing ingested properties.
type PropertyRepository interface {
	Repository

	// InsertProperty persists a new property keyed by (ChannelID, MessageID).
	// Sets InsertedAt/UpdatedAt timestamps.
	// Returns ErrDuplicateKey when a row for the same message already exists;
	// the existing row is left untouched and no second row is created.
	InsertProperty(ctx context.Context, property *core.Property) (*core.Property, error)

	// UpdateProperty replaces an existing property record.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if the record doesn't exist.
	// The ingestion pipeline never calls this; it exists for moderation and
	// re-embedding flows that touch rows after creation.
	UpdateProperty(ctx context.Context, property *core.Property) (*core.Property, error)

	// GetProperty retrieves a single property by channel and message id.
	// Returns ErrNotFound if the record doesn't exist.
	GetProperty(ctx context.Context, channelID, messageID int64) (*core.Property, error)

	// MaxMessageID returns the highest persisted source message id for a
	// channel, or 0 when the channel has no rows. This is the ingestion
	// watermark: always derived from durable state, never cached.
	MaxMessageID(ctx context.Context, channelID int64) (int64, error)

	// GetPropertiesByDateRange retrieves properties posted within a time range.
	// Returns records where start <= PostedAt < end, ordered by posting time.
	GetPropertiesByDateRange(ctx context.Context, start, end time.Time) ([]*core.Property, error)

	// GetRecentProperties retrieves the N most recently posted properties,
	// most recent first.
	GetRecentProperties(ctx context.Context, limit int) ([]*core.Property, error)
}

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/donestate/estated/ai"
	"github.com/donestate/estated/core"
)

// MaxEmbedAttempts bounds how often an embedding call is retried before
// the record proceeds without a vector.
const MaxEmbedAttempts = 3

// Sleeper pauses between retry attempts. It returns early with ctx.Err()
// when the context is cancelled. Injectable so tests run without waiting.
type Sleeper func(ctx context.Context, d time.Duration) error

// defaultSleeper waits for the full duration or until ctx is cancelled.
func defaultSleeper(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ComposeEmbeddingText builds the canonical embedding input from the
// extracted fields. Parts appear in a fixed order and unknown fields are
// left out entirely, so two listings with the same known facts embed the
// same text. An empty result means there is nothing worth embedding.
func ComposeEmbeddingText(fields core.ExtractedFields) string {
	var parts []string
	if fields.Transaction != core.TransactionUnknown {
		parts = append(parts, fields.Transaction.String())
	}
	if fields.Kind != core.PropertyKindUnknown {
		parts = append(parts, fields.Kind.String())
	}
	if fields.Rooms != core.RoomsUnknown {
		parts = append(parts, fmt.Sprintf("%d комнат", fields.Rooms))
	}
	if fields.AreaSqm > 0 {
		parts = append(parts, strconv.FormatFloat(fields.AreaSqm, 'f', -1, 64)+" м²")
	}
	if fields.Address != "" {
		parts = append(parts, fields.Address)
	}
	if fields.Description != "" {
		parts = append(parts, fields.Description)
	}
	return strings.Join(parts, ", ")
}

// embedWithRetry generates an embedding with bounded retries. Rate-limit
// failures back off exponentially (2s, 4s, ...); other failures retry
// after a fixed second. When all attempts fail it returns a nil vector,
// the last error, and the number of attempts made; the caller persists
// the record without a vector.
func embedWithRetry(ctx context.Context, embedder ai.Embedder, sleep Sleeper, logger *slog.Logger, text string) ([]float32, int, error) {
	var lastErr error
	for attempt := 1; attempt <= MaxEmbedAttempts; attempt++ {
		vector, err := embedder.EmbedText(ctx, text)
		if err == nil {
			return vector, attempt, nil
		}
		lastErr = err

		if attempt == MaxEmbedAttempts {
			break
		}

		delay := time.Second
		if ai.IsRateLimited(err) {
			delay = time.Duration(1<<attempt) * time.Second
		}
		logger.Warn("embedding attempt failed", "attempt", attempt, "delay", delay, "err", err)
		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return nil, attempt, sleepErr
		}
	}
	return nil, MaxEmbedAttempts, lastErr
}

package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/donestate/estated/ai"
	"github.com/donestate/estated/core"
	"github.com/donestate/estated/ingest"
	"github.com/donestate/estated/storage"
)

// BatchProcessor regenerates embeddings for batches of property records.
type BatchProcessor struct {
	repo           storage.PropertyRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.PropertyRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// embeddingText rebuilds the canonical embedding input from a stored
// record's fields, so a reembed produces the same text the original
// ingestion did.
func embeddingText(p *core.Property) string {
	return ingest.ComposeEmbeddingText(core.ExtractedFields{
		Transaction: p.Transaction,
		Kind:        p.Kind,
		Rooms:       p.Rooms,
		AreaSqm:     p.AreaSqm,
		Floor:       p.Floor,
		PriceUSD:    p.PriceUSD,
		Address:     p.Address,
		Description: p.Description,
	})
}

// Process regenerates embeddings for a batch and writes the records back.
// Vectors are normalized for dot-product similarity. Records whose fields
// yield no embedding text are written back with their vector cleared.
func (bp *BatchProcessor) Process(ctx context.Context, records []*core.Property) error {
	if len(records) == 0 {
		return nil
	}

	var texts []string
	var indices []int
	for i, record := range records {
		if text := embeddingText(record); text != "" {
			texts = append(texts, text)
			indices = append(indices, i)
		} else {
			record.Vector = nil
		}
	}

	if len(texts) > 0 {
		var embeddings [][]float32
		err := RetryWithBackoff(ctx, func() error {
			var err error
			embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
			return err
		}, bp.maxRetries, bp.retryBaseDelay)

		if err != nil {
			return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
		}

		if len(embeddings) != len(texts) {
			return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(texts), len(embeddings))
		}

		for i, idx := range indices {
			records[idx].Vector = NormalizeVector(embeddings[i])
		}
	}

	for _, record := range records {
		if _, err := bp.repo.UpdateProperty(ctx, record); err != nil {
			return fmt.Errorf("failed to update record %d/%d: %w", record.ChannelID, record.MessageID, err)
		}
	}

	return nil
}

package reembed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donestate/estated/ai/mock"
	"github.com/donestate/estated/core"
)

func TestBatchProcessor_Process(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 2)

	ctx := context.Background()
	records, err := repo.GetRecentProperties(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	embedder := mock.NewMockEmbedder()
	processor := NewBatchProcessor(repo, embedder, 3, 10*time.Millisecond)

	require.NoError(t, processor.Process(ctx, records))

	for _, record := range records {
		updated, err := repo.GetProperty(ctx, record.ChannelID, record.MessageID)
		require.NoError(t, err)
		require.NotEmpty(t, updated.Vector, "should have embedding")

		var magnitude float32
		for _, v := range updated.Vector {
			magnitude += v * v
		}
		assert.InDelta(t, 1.0, magnitude, 0.01, "vector should be normalized")
	}
}

func TestBatchProcessor_Normalization(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 1)

	ctx := context.Background()
	records, err := repo.GetRecentProperties(ctx, 1)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		result := make([][]float32, len(texts))
		for i := range texts {
			result[i] = []float32{3.0, 4.0}
		}
		return result, nil
	}
	processor := NewBatchProcessor(repo, embedder, 3, 10*time.Millisecond)

	require.NoError(t, processor.Process(ctx, records))

	updated, err := repo.GetProperty(ctx, records[0].ChannelID, records[0].MessageID)
	require.NoError(t, err)
	require.Len(t, updated.Vector, 2)
	assert.InDelta(t, 0.6, updated.Vector[0], 0.001)
	assert.InDelta(t, 0.8, updated.Vector[1], 0.001)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	repo := setupTestDB(t)

	processor := NewBatchProcessor(repo, mock.NewMockEmbedder(), 3, 10*time.Millisecond)

	require.NoError(t, processor.Process(context.Background(), nil))
}

func TestBatchProcessor_EmbeddingError(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 1)

	ctx := context.Background()
	records, err := repo.GetRecentProperties(ctx, 1)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding error")
	}
	processor := NewBatchProcessor(repo, embedder, 2, 10*time.Millisecond)

	err = processor.Process(ctx, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding error")
}

func TestBatchProcessor_RetrySucceeds(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 1)

	ctx := context.Background()
	records, err := repo.GetRecentProperties(ctx, 1)
	require.NoError(t, err)

	calls := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("temporary error")
		}
		result := make([][]float32, len(texts))
		for i := range texts {
			result[i] = []float32{1.0, 0.0}
		}
		return result, nil
	}
	processor := NewBatchProcessor(repo, embedder, 5, 5*time.Millisecond)

	require.NoError(t, processor.Process(ctx, records))
	assert.Equal(t, 3, calls, "should succeed on third attempt")

	updated, err := repo.GetProperty(ctx, records[0].ChannelID, records[0].MessageID)
	require.NoError(t, err)
	assert.NotEmpty(t, updated.Vector)
}

func TestBatchProcessor_CountMismatch(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 2)

	ctx := context.Background()
	records, err := repo.GetRecentProperties(ctx, 2)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1.0, 0.0}}, nil
	}
	processor := NewBatchProcessor(repo, embedder, 1, 10*time.Millisecond)

	err = processor.Process(ctx, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestBatchProcessor_EmptyTextClearsVector(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// A record whose fields yield no embedding text at all.
	bare := &core.Property{
		MessageID:   1,
		ChannelID:   testChannel,
		PostedAt:    time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond),
		Transaction: core.TransactionUnknown,
		Kind:        core.PropertyKindUnknown,
		Rooms:       core.RoomsUnknown,
		RawText:     "🏠🏠🏠",
		Vector:      []float32{0.5, 0.5},
		Active:      true,
	}
	_, err := repo.InsertProperty(ctx, bare)
	require.NoError(t, err)

	records, err := repo.GetRecentProperties(ctx, 1)
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	processor := NewBatchProcessor(repo, embedder, 3, 10*time.Millisecond)

	require.NoError(t, processor.Process(ctx, records))
	assert.Equal(t, 0, embedder.CallCount(), "nothing to embed")

	updated, err := repo.GetProperty(ctx, testChannel, 1)
	require.NoError(t, err)
	assert.Empty(t, updated.Vector, "stale vector should be cleared")
}

package reembed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donestate/estated/core"
	"github.com/donestate/estated/storage"
	"github.com/donestate/estated/storage/badger"
)

const testChannel int64 = -1001234

func setupTestDB(t *testing.T) storage.PropertyRepository {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(); backend.Close() })
	return repo
}

func storedProperty(messageID int64) *core.Property {
	return &core.Property{
		MessageID:   messageID,
		ChannelID:   testChannel,
		PostedAt:    time.Now().UTC().Add(-time.Duration(messageID) * time.Minute).Truncate(time.Microsecond),
		Transaction: core.TransactionSell,
		Kind:        core.PropertyKindApartment,
		Rooms:       2,
		AreaSqm:     54.5,
		PriceUSD:    65000,
		RawText:     "Продам 2-комн квартиру",
		Description: "Продам 2-комн квартиру",
		Active:      true,
	}
}

func insertProperties(t *testing.T, repo storage.PropertyRepository, count int) {
	t.Helper()

	ctx := context.Background()
	for i := 1; i <= count; i++ {
		_, err := repo.InsertProperty(ctx, storedProperty(int64(i)))
		require.NoError(t, err)
	}
}

func TestRecordIterator_Basic(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 3)

	iter := NewRecordIterator(repo, 2)
	count := 0
	var ids []int64

	err := iter.ForEach(context.Background(), func(records []*core.Property) error {
		count += len(records)
		for _, r := range records {
			ids = append(ids, r.MessageID)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, count, "should iterate all 3 records")
	assert.Len(t, ids, 3)
}

func TestRecordIterator_BatchSizes(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 10)

	tests := []struct {
		name            string
		batchSize       int
		expectedBatches int
	}{
		{"batch size 1", 1, 10},
		{"batch size 3", 3, 4},
		{"batch size 5", 5, 2},
		{"batch size 10", 10, 1},
		{"batch size 100", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iter := NewRecordIterator(repo, tt.batchSize)
			batchCount := 0
			totalRecords := 0

			err := iter.ForEach(context.Background(), func(records []*core.Property) error {
				batchCount++
				totalRecords += len(records)
				assert.LessOrEqual(t, len(records), tt.batchSize, "batch should not exceed batchSize")
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedBatches, batchCount, "batch count")
			assert.Equal(t, 10, totalRecords, "total records")
		})
	}
}

func TestRecordIterator_EmptyDatabase(t *testing.T) {
	repo := setupTestDB(t)

	iter := NewRecordIterator(repo, 10)
	called := false

	err := iter.ForEach(context.Background(), func(records []*core.Property) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.False(t, called, "callback should not be called for empty database")
}

func TestRecordIterator_ErrorHandling(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 2)

	iter := NewRecordIterator(repo, 1)
	called := 0

	err := iter.ForEach(context.Background(), func(records []*core.Property) error {
		called++
		if called == 1 {
			return assert.AnError
		}
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, assert.AnError, err, "should return callback error")
	assert.Equal(t, 1, called, "should stop on first error")
}

func TestRecordIterator_ContextCancellation(t *testing.T) {
	repo := setupTestDB(t)
	insertProperties(t, repo, 5)

	ctx, cancel := context.WithCancel(context.Background())
	iter := NewRecordIterator(repo, 1)
	called := 0

	err := iter.ForEach(ctx, func(records []*core.Property) error {
		called++
		if called == 2 {
			cancel()
		}
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, called, "should process until context canceled")
}

func TestRecordIterator_InvalidBatchSize(t *testing.T) {
	repo := setupTestDB(t)

	iter := NewRecordIterator(repo, 0)
	assert.Equal(t, DefaultBatchSize, iter.batchSize)

	iter = NewRecordIterator(repo, -5)
	assert.Equal(t, DefaultBatchSize, iter.batchSize)
}

// Copyright 2025 Don Estate
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reembed

import (
	"context"
	"time"

	"github.com/donestate/estated/core"
	"github.com/donestate/estated/storage"
)

const (
	// DefaultBatchSize is the default number of records fetched per batch.
	DefaultBatchSize = 100
)

// RecordIterator walks all stored property records in batches, ordered
// by posting date.
type RecordIterator struct {
	repo      storage.PropertyRepository
	batchSize int
}

// NewRecordIterator creates an iterator fetching batchSize records at a
// time (DefaultBatchSize when batchSize <= 0).
func NewRecordIterator(repo storage.PropertyRepository, batchSize int) *RecordIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &RecordIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach calls fn for each batch of property records. Iteration stops
// on the first error from fn; context cancellation is checked between
// batches.
func (it *RecordIterator) ForEach(ctx context.Context, fn func([]*core.Property) error) error {
	// A date range wide enough to cover every record.
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	records, err := it.repo.GetPropertiesByDateRange(ctx, startTime, endTime)
	if err != nil {
		return err
	}

	for i := 0; i < len(records); i += it.batchSize {
		end := min(i+it.batchSize, len(records))

		if err := fn(records[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}

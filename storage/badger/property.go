package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/donestate/estated/core"
	"github.com/donestate/estated/storage"
)

// PropertyRepository implements storage.PropertyRepository for BadgerDB.
type PropertyRepository struct {
	backend *Backend
}

var _ storage.PropertyRepository = (*PropertyRepository)(nil)

// NewPropertyRepository creates a new PropertyRepository.
func NewPropertyRepository(backend *Backend) (*PropertyRepository, error) {
	return &PropertyRepository{
		backend: backend,
	}, nil
}

// Close releases repository resources.
func (r *PropertyRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *PropertyRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *PropertyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// InsertProperty persists a new property keyed by (ChannelID, MessageID).
// The uniqueness check and both writes (row + date index) happen inside a
// single transaction: a duplicate id rolls back with ErrDuplicateKey and the
// stored row stays untouched.
func (r *PropertyRepository) InsertProperty(ctx context.Context, property *core.Property) (*core.Property, error) {
	if err := core.ValidateProperty(property); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePropertyKey(property.ChannelID, property.MessageID)

		existing, err := r.readProperty(tx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			return storage.ErrDuplicateKey
		}

		property.InsertedAt = time.Now().UTC()
		property.UpdatedAt = property.InsertedAt

		value := storage.MarshalProperty(property)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		dateKey := makePropertyDateKey(property.PostedAt, property.ChannelID, property.MessageID)
		if err := tx.Set(dateKey, key); err != nil {
			return err
		}

		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return property, nil
}

// UpdateProperty replaces an existing property record.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, property *core.Property) (*core.Property, error) {
	if err := core.ValidateProperty(property); err != nil {
		return nil, err
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePropertyKey(property.ChannelID, property.MessageID)

		old, err := r.readProperty(tx, key)
		if err != nil {
			return err
		}
		if old == nil {
			return storage.ErrNotFound
		}

		property.InsertedAt = old.InsertedAt
		property.UpdatedAt = time.Now().UTC()

		value := storage.MarshalProperty(property)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		// Move the date index entry if the posting time changed
		if !old.PostedAt.Equal(property.PostedAt) {
			oldDateKey := makePropertyDateKey(old.PostedAt, old.ChannelID, old.MessageID)
			if err := tx.Delete(oldDateKey); err != nil {
				return err
			}
			newDateKey := makePropertyDateKey(property.PostedAt, property.ChannelID, property.MessageID)
			if err := tx.Set(newDateKey, key); err != nil {
				return err
			}
		}

		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return property, nil
}

// GetProperty retrieves a single property by channel and message id.
func (r *PropertyRepository) GetProperty(ctx context.Context, channelID, messageID int64) (*core.Property, error) {
	var result *core.Property
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePropertyKey(channelID, messageID)
		var err error
		result, err = r.readProperty(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// MaxMessageID returns the highest persisted message id for a channel.
// Primary keys sort ascending by message id within a channel, so a reverse
// seek from the channel's upper bound lands on the newest row.
func (r *PropertyRepository) MaxMessageID(ctx context.Context, channelID int64) (int64, error) {
	var maxID int64

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.PrefetchValues = false

		iter := tx.NewIterator(opts)
		defer iter.Close()

		channelPrefix := makePartialPropertyKey(channelID)
		upperBound := makePropertyKey(channelID, int64(^uint64(0)>>1))

		iter.Seek(upperBound)
		if !iter.Valid() {
			return nil
		}

		key := iter.Item().Key()
		if len(key) < len(channelPrefix) || slices.Compare(key[:len(channelPrefix)], channelPrefix) != 0 {
			return nil
		}

		property, err := r.readProperty(tx, key)
		if err != nil {
			return err
		}
		if property != nil {
			maxID = property.MessageID
		}
		return nil
	}, false)

	return maxID, err
}

// GetPropertiesByDateRange retrieves properties posted within a time range.
func (r *PropertyRepository) GetPropertiesByDateRange(ctx context.Context, start, end time.Time) ([]*core.Property, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Property
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialPropertyDateKey(start)
		endKey := makePartialPropertyDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			// The index value is the property's primary key
			var propertyKey []byte
			if err := iter.Item().Value(func(val []byte) error {
				propertyKey = slices.Clone(val)
				return nil
			}); err != nil {
				return err
			}

			property, err := r.readProperty(tx, propertyKey)
			if err != nil {
				return err
			}
			if property != nil {
				results = append(results, property)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentProperties retrieves the N most recently posted properties.
func (r *PropertyRepository) GetRecentProperties(ctx context.Context, limit int) ([]*core.Property, error) {
	var results []*core.Property
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible date index key
		startKey := makePartialPropertyDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		prefix := []byte(propertyDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check that we're still in the date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var propertyKey []byte
			if err := iter.Item().Value(func(val []byte) error {
				propertyKey = slices.Clone(val)
				return nil
			}); err != nil {
				return err
			}

			property, err := r.readProperty(tx, propertyKey)
			if err != nil {
				return err
			}
			if property != nil {
				results = append(results, property)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readProperty reads a property from the transaction.
func (r *PropertyRepository) readProperty(tx *badger.Txn, key []byte) (*core.Property, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var property *core.Property
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		property, unmarshalErr = storage.UnmarshalProperty(val)
		return unmarshalErr
	})
	return property, err
}

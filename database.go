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


package estated

import (
	"io"
	"log/slog"

	"github.com/donestate/estated/ai"
	"github.com/donestate/estated/ai/openai"
	"github.com/donestate/estated/ingest"
	"github.com/donestate/estated/reembed"
	"github.com/donestate/estated/source"
	"github.com/donestate/estated/storage"
	"github.com/donestate/estated/storage/badger"
)

// Database bundles the storage backend, the property repository, and the
// embedding client behind one handle.
type Database struct {
	backend      *badger.Backend
	propertyRepo storage.PropertyRepository
	embedder     ai.Embedder
	logger       *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig overrides the embedding client configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// NewDatabase opens the property database at filePath and wires the
// embedding client.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	propertyRepo, err := badger.NewPropertyRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		propertyRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:      backend,
		propertyRepo: propertyRepo,
		embedder:     embedder,
		logger:       slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.propertyRepo.Close(); err != nil {
		db.logger.Error("error closing property repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) PropertyRepository() storage.PropertyRepository {
	return db.propertyRepo
}

func (db *Database) Embedder() ai.Embedder {
	return db.embedder
}

// NewOrchestrator creates an ingestion orchestrator for one channel,
// backed by this database's repository and embedder.
func (db *Database) NewOrchestrator(src source.Source, channelID int64, opts ...ingest.Option) (*ingest.Orchestrator, error) {
	return ingest.NewOrchestrator(src, db.propertyRepo, db.embedder, channelID, opts...)
}

// NewReembedder creates a reembedder over all stored records.
func (db *Database) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(db.propertyRepo, db.embedder, config, progress)
}

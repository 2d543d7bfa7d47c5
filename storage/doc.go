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


// Package storage provides the storage abstraction layer for estated.
//
// This package defines repository interfaces that decouple storage
// implementation from the ingestion pipeline. It allows for different
// storage backends (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors to enforce abstraction and enable multiple storage backend
// implementations:
//
//	repo, err := badger.NewPropertyRepository(backend)  // storage.PropertyRepository
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Idempotent ingestion
//
// The pipeline's persistence contract lives here: InsertProperty is guarded
// by a uniqueness check on (channel id, message id) and returns
// ErrDuplicateKey instead of creating a second row, and MaxMessageID derives
// the ingestion watermark from durable rows so that restarts never diverge
// from what was actually persisted.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation
// and timeout support.
package storage

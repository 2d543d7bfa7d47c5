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


package ingest

import "errors"

var (
	// ErrSourceRequired indicates a nil message source was provided.
	ErrSourceRequired = errors.New("message source is required")

	// ErrRepositoryRequired indicates a nil property repository was provided.
	ErrRepositoryRequired = errors.New("property repository is required")

	// ErrEmbedderRequired indicates a nil embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidChannel indicates a zero channel id was configured.
	ErrInvalidChannel = errors.New("channel id must be non-zero")
)

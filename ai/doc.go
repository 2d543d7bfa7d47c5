// Package ai defines the embedding service abstraction used to enrich
// listing records with semantic vectors.
//
// The Embedder interface hides the concrete provider; ai/openai implements
// it against OpenAI-compatible APIs and ai/mock provides deterministic test
// doubles. Rate limiting is surfaced as a distinguishable error condition
// (ErrRateLimited) so the ingestion pipeline can back off exponentially.
package ai

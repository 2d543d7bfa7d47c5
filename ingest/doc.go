// Package ingest orchestrates the listing pipeline.
//
// An Orchestrator owns one channel. On startup it derives the channel's
// watermark (the highest stored message id) from the repository, replays
// recent history above it, and then follows the live feed. Every message
// passes through extraction, media download, geocoding, and embedding
// before being persisted; each enrichment stage is allowed to fail and
// merely narrows the stored record.
package ingest

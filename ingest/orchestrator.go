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

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/donestate/estated/ai"
	"github.com/donestate/estated/core"
	"github.com/donestate/estated/extract"
	"github.com/donestate/estated/geo"
	"github.com/donestate/estated/media"
	"github.com/donestate/estated/source"
	"github.com/donestate/estated/storage"
)

// State is the orchestrator lifecycle phase.
type State int32

const (
	StateInit State = iota
	StateBackfilling
	StateListening
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateBackfilling:
		return "backfilling"
	case StateListening:
		return "listening"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Outcome is the terminal status of one processed message.
type Outcome int

const (
	// OutcomeSkipped means the message produced no record (no text, or a
	// storage failure that was logged and dropped).
	OutcomeSkipped Outcome = iota
	// OutcomePersisted means a new property record was stored.
	OutcomePersisted
	// OutcomeDuplicate means a record for this message already existed.
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomePersisted:
		return "persisted"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "skipped"
	}
}

// Stats counts processed messages by outcome.
type Stats struct {
	Persisted  uint64
	Duplicates uint64
	Skipped    uint64
}

// DefaultBackfillLimit is the default number of history messages replayed
// on startup.
const DefaultBackfillLimit = 100

// Orchestrator drives the ingestion pipeline for one channel: it replays
// channel history past the stored watermark, then follows the live feed.
// Each message runs extraction, media download, geocoding, and embedding
// before persistence. No single message failure stops the loop.
type Orchestrator struct {
	src        source.Source
	repository storage.PropertyRepository
	extractor  *extract.Extractor
	embedder   ai.Embedder
	fetcher    *media.Fetcher
	geocoder   geo.Geocoder
	sleep      Sleeper
	logger     *slog.Logger

	channelID     int64
	backfillLimit int

	state      atomic.Int32
	persisted  atomic.Uint64
	duplicates atomic.Uint64
	skipped    atomic.Uint64
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithBackfillLimit sets how many history messages are requested on
// startup. Default is DefaultBackfillLimit.
func WithBackfillLimit(limit int) Option {
	return func(o *Orchestrator) error {
		if limit < 1 {
			limit = DefaultBackfillLimit
		}
		o.backfillLimit = limit
		return nil
	}
}

// WithFetcher enables media download. Without a fetcher, records are
// stored without media paths.
func WithFetcher(fetcher *media.Fetcher) Option {
	return func(o *Orchestrator) error {
		o.fetcher = fetcher
		return nil
	}
}

// WithGeocoder enables address resolution. Without a geocoder, records
// are stored without coordinates.
func WithGeocoder(geocoder geo.Geocoder) Option {
	return func(o *Orchestrator) error {
		o.geocoder = geocoder
		return nil
	}
}

// WithSleeper sets the pause function used between embedding retries.
// Tests inject one to avoid real delays.
func WithSleeper(sleep Sleeper) Option {
	return func(o *Orchestrator) error {
		if sleep == nil {
			sleep = defaultSleeper
		}
		o.sleep = sleep
		return nil
	}
}

// NewOrchestrator creates an orchestrator for the given channel.
func NewOrchestrator(
	src source.Source,
	repository storage.PropertyRepository,
	embedder ai.Embedder,
	channelID int64,
	opts ...Option,
) (*Orchestrator, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if channelID == 0 {
		return nil, ErrInvalidChannel
	}

	o := &Orchestrator{
		src:           src,
		repository:    repository,
		extractor:     extract.NewExtractor(),
		embedder:      embedder,
		sleep:         defaultSleeper,
		logger:        slog.Default().With("component", "ingest", "channel", channelID),
		channelID:     channelID,
		backfillLimit: DefaultBackfillLimit,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// State returns the current lifecycle phase.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

// Stats returns a snapshot of processed-message counters.
func (o *Orchestrator) Stats() Stats {
	return Stats{
		Persisted:  o.persisted.Load(),
		Duplicates: o.duplicates.Load(),
		Skipped:    o.skipped.Load(),
	}
}

// Run backfills history past the watermark, then follows the live feed
// until ctx is cancelled or the subscription ends.
func (o *Orchestrator) Run(ctx context.Context) error {
	defer o.state.Store(int32(StateStopped))

	if err := o.Backfill(ctx); err != nil {
		return err
	}

	o.state.Store(int32(StateListening))
	feed, err := o.src.Subscribe(ctx, o.channelID)
	if err != nil {
		return err
	}
	o.logger.Info("following live feed")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-feed:
			if !ok {
				return nil
			}
			o.ProcessMessage(ctx, msg)
		}
	}
}

// Backfill replays recent channel history, skipping everything at or
// below the stored watermark. The watermark is derived from storage on
// every call rather than cached, so a restart can never replay against
// a stale high-water mark.
func (o *Orchestrator) Backfill(ctx context.Context) error {
	o.state.Store(int32(StateBackfilling))

	watermark, err := o.repository.MaxMessageID(ctx, o.channelID)
	if err != nil {
		return err
	}

	messages, err := o.src.Recent(ctx, o.channelID, o.backfillLimit)
	if err != nil {
		return err
	}
	o.logger.Info("backfilling channel history", "watermark", watermark, "messages", len(messages))

	for _, msg := range messages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if msg.ID <= watermark {
			continue
		}
		o.ProcessMessage(ctx, msg)
	}
	return nil
}

// ProcessMessage runs one message through the full pipeline. Failures
// in enrichment stages narrow the record; only a hard storage failure
// or a textless message leaves no record at all.
func (o *Orchestrator) ProcessMessage(ctx context.Context, msg core.ListingMessage) Outcome {
	logger := o.logger.With("message", msg.ID)

	if !msg.HasText() {
		logger.Debug("skipping message without text")
		o.skipped.Add(1)
		return OutcomeSkipped
	}

	fields := o.extractor.Extract(msg.Text)

	property := core.NewProperty(&msg, fields)

	if o.fetcher != nil {
		attachments := o.collectAttachments(ctx, msg)
		property.MediaPaths, property.VideoPath = o.fetcher.Fetch(ctx, attachments)
	}

	if o.geocoder != nil && fields.Address != "" {
		if point, ok := o.geocoder.Geocode(ctx, fields.Address); ok {
			property.Latitude = point.Latitude
			property.Longitude = point.Longitude
			property.Geocoded = true
		}
	}

	if text := ComposeEmbeddingText(fields); text != "" {
		vector, attempts, err := embedWithRetry(ctx, o.embedder, o.sleep, logger, text)
		if err != nil {
			logger.Warn("storing record without embedding", "attempts", attempts, "err", err)
		} else {
			property.Vector = vector
		}
	}

	if _, err := o.repository.InsertProperty(ctx, property); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			logger.Debug("record already stored")
			o.duplicates.Add(1)
			return OutcomeDuplicate
		}
		logger.Error("failed to store record", "err", err)
		o.skipped.Add(1)
		return OutcomeSkipped
	}

	logger.Info("stored property record",
		"transaction", property.Transaction,
		"kind", property.Kind,
		"geocoded", property.Geocoded,
		"embedded", len(property.Vector) > 0)
	o.persisted.Add(1)
	return OutcomePersisted
}

// collectAttachments gathers the message's own attachments plus those of
// its album siblings. The text-bearing message of an album carries the
// whole album's media in the stored record.
func (o *Orchestrator) collectAttachments(ctx context.Context, msg core.ListingMessage) []core.Attachment {
	attachments := append([]core.Attachment(nil), msg.Attachments...)
	if msg.GroupID == 0 {
		return attachments
	}

	siblings, err := o.src.Siblings(ctx, msg.GroupID)
	if err != nil {
		o.logger.Warn("failed to resolve album siblings", "group", msg.GroupID, "err", err)
		return attachments
	}

	seen := make(map[string]struct{}, len(attachments))
	for _, att := range attachments {
		seen[att.Ref] = struct{}{}
	}
	for _, sibling := range siblings {
		if sibling.ID == msg.ID {
			continue
		}
		for _, att := range sibling.Attachments {
			if _, dup := seen[att.Ref]; dup {
				continue
			}
			seen[att.Ref] = struct{}{}
			attachments = append(attachments, att)
		}
	}
	return attachments
}

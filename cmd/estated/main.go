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


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/donestate/estated/ai"
	"github.com/donestate/estated/ai/openai"
	"github.com/donestate/estated/extract"
	"github.com/donestate/estated/geo"
	"github.com/donestate/estated/ingest"
	"github.com/donestate/estated/media"
	"github.com/donestate/estated/reembed"
	"github.com/donestate/estated/source/jsonfile"
	"github.com/donestate/estated/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "estated",
		Usage: "Real estate listing ingestion and enrichment pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Ingest a channel export into the property database",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to a JSON channel export",
						Required: true,
					},
					&cli.Int64Flag{
						Name:     "channel",
						Aliases:  []string{"c"},
						Usage:    "Channel id to ingest",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "backfill-limit",
						Usage: "Number of history messages to replay",
						Value: ingest.DefaultBackfillLimit,
					},
					&cli.StringFlag{
						Name:  "media-dir",
						Usage: "Directory for downloaded media (empty disables media)",
					},
					&cli.IntFlag{
						Name:  "media-workers",
						Usage: "Concurrent media downloads",
						Value: media.DefaultPoolSize,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "https://api.openai.com/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "text-embedding-3-small",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "Embedding service API token",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
					&cli.StringFlag{
						Name:    "geocoder-key",
						Usage:   "Yandex geocoder API key (empty disables geocoding)",
						EnvVars: []string{"YANDEX_API_KEY"},
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Extract structured fields from listing text and print them as JSON",
				Action:    extractCommand,
				ArgsUsage: "TEXT",
			},
			{
				Name:      "geocode",
				Usage:     "Resolve an address to coordinates and print the result",
				Action:    geocodeCommand,
				ArgsUsage: "ADDRESS",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "geocoder-key",
						Usage:   "Yandex geocoder API key",
						EnvVars: []string{"YANDEX_API_KEY"},
					},
				},
			},
			{
				Name:   "recent",
				Usage:  "Print the most recently posted property records",
				Action: recentCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of records to print",
						Value: 10,
					},
				},
			},
			{
				Name:   "similar",
				Usage:  "Find property records similar to a query text",
				Action: similarCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Usage:    "Query text",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Minimum similarity score",
						Value: 0.0,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "https://api.openai.com/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "text-embedding-3-small",
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "Embedding service API token",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
				},
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all property records with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "https://api.openai.com/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "api-token",
						Usage:   "Embedding service API token",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPropertyRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	embedder, err := newEmbedder(c)
	if err != nil {
		return err
	}

	src, err := jsonfile.Open(c.String("input"))
	if err != nil {
		return err
	}

	opts := []ingest.Option{
		ingest.WithBackfillLimit(c.Int("backfill-limit")),
	}

	if mediaDir := c.String("media-dir"); mediaDir != "" {
		fetcher, err := media.NewFetcher(media.FileTransport{}, mediaDir, c.Int("media-workers"))
		if err != nil {
			return fmt.Errorf("failed to create media fetcher: %w", err)
		}
		defer fetcher.Close()
		opts = append(opts, ingest.WithFetcher(fetcher))
	}

	if key := c.String("geocoder-key"); key != "" {
		opts = append(opts, ingest.WithGeocoder(geo.NewYandexGeocoder(key)))
	}

	orchestrator, err := ingest.NewOrchestrator(src, repo, embedder, c.Int64("channel"), opts...)
	if err != nil {
		return err
	}

	if err := orchestrator.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	stats := orchestrator.Stats()
	fmt.Fprintf(os.Stderr, "Done. persisted=%d duplicates=%d skipped=%d\n",
		stats.Persisted, stats.Duplicates, stats.Skipped)
	return nil
}

func extractCommand(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if text == "" {
		return fmt.Errorf("listing text is required")
	}

	fields := extract.NewExtractor().Extract(text)

	out, err := json.MarshalIndent(map[string]any{
		"transaction": fields.Transaction.String(),
		"kind":        fields.Kind.String(),
		"rooms":       fields.Rooms,
		"area_sqm":    fields.AreaSqm,
		"floor":       fields.Floor,
		"price_usd":   fields.PriceUSD,
		"address":     fields.Address,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func geocodeCommand(c *cli.Context) error {
	address := strings.Join(c.Args().Slice(), " ")
	if address == "" {
		return fmt.Errorf("address is required")
	}

	geocoder := geo.NewYandexGeocoder(c.String("geocoder-key"))
	point, ok := geocoder.Geocode(context.Background(), address)
	if !ok {
		fmt.Println("no result")
		return nil
	}
	fmt.Printf("%.6f %.6f\n", point.Latitude, point.Longitude)
	return nil
}

func recentCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPropertyRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	records, err := repo.GetRecentProperties(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	for _, record := range records {
		fmt.Printf("%d/%d %s %s %s rooms=%d %.1fm² $%.0f %s\n",
			record.ChannelID, record.MessageID,
			record.PostedAt.Format(time.DateOnly),
			record.Transaction, record.Kind,
			record.Rooms, record.AreaSqm, record.PriceUSD, record.Address)
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPropertyRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	embedder, err := newEmbedder(c)
	if err != nil {
		return err
	}

	vector, err := embedder.EmbedText(ctx, c.String("text"))
	if err != nil {
		return fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := repo.FindSimilar(ctx, vector, float32(c.Float64("min-similarity")), c.Int("limit"))
	if err != nil {
		return err
	}

	for _, result := range results {
		record := result.Property
		fmt.Printf("%.3f %d/%d %s %s rooms=%d $%.0f %s\n",
			result.Score,
			record.ChannelID, record.MessageID,
			record.Transaction, record.Kind,
			record.Rooms, record.PriceUSD, record.Address)
	}
	return nil
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPropertyRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	embedder, err := newEmbedder(c)
	if err != nil {
		return err
	}

	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reembedder := reembed.NewReembedder(repo, embedder, reembedConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

// newEmbedder builds the embedding client from the command's flags.
func newEmbedder(c *cli.Context) (ai.Embedder, error) {
	opts := []ai.ConfigOption{
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	}
	if token := c.String("api-token"); token != "" {
		opts = append(opts, ai.WithAPIToken(token))
	}
	aiConfig := ai.NewConfig(opts...)

	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return embedder, nil
}

func setup(c *cli.Context) error {
	// Load local environment overrides if present; a missing .env is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "err", err)
	}

	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

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


package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/donestate/estated/core"
)

// Transport fetches the raw bytes of a single attachment.
type Transport interface {
	Fetch(ctx context.Context, att core.Attachment) ([]byte, error)
}

// DefaultPoolSize is the default number of concurrent downloads.
const DefaultPoolSize = 4

// Fetcher downloads a message's attachments into a local directory.
type Fetcher struct {
	transport Transport
	dir       string
	pool      *ants.Pool
	logger    *slog.Logger
}

// NewFetcher creates a fetcher storing assets under dir, downloading at
// most poolSize attachments concurrently. The directory is created if it
// does not exist.
func NewFetcher(transport Transport, dir string, poolSize int) (*Fetcher, error) {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create download pool: %w", err)
	}
	return &Fetcher{
		transport: transport,
		dir:       dir,
		pool:      pool,
		logger:    slog.Default().With("component", "media-fetcher"),
	}, nil
}

// Close releases the download pool.
func (f *Fetcher) Close() {
	f.pool.Release()
}

// Fetch downloads all attachments and returns the stored photo paths in
// attachment order plus the path of the first video, if any. Individual
// failures are logged and skipped so one broken asset never drops the
// rest of the batch.
func (f *Fetcher) Fetch(ctx context.Context, attachments []core.Attachment) ([]string, string) {
	if len(attachments) == 0 {
		return nil, ""
	}

	type slot struct {
		kind core.AttachmentKind
		path string
	}
	slots := make([]slot, len(attachments))

	var wg sync.WaitGroup
	for i, att := range attachments {
		wg.Add(1)
		i, att := i, att
		err := f.pool.Submit(func() {
			defer wg.Done()
			path, err := f.fetchOne(ctx, att)
			if err != nil {
				f.logger.Warn("failed to fetch attachment", "kind", att.Kind, "ref", att.Ref, "err", err)
				return
			}
			slots[i] = slot{kind: att.Kind, path: path}
		})
		if err != nil {
			wg.Done()
			f.logger.Warn("failed to submit download", "ref", att.Ref, "err", err)
		}
	}
	wg.Wait()

	var photos []string
	var video string
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if s.path == "" {
			continue
		}
		if _, dup := seen[s.path]; dup {
			continue
		}
		seen[s.path] = struct{}{}
		switch s.kind {
		case core.AttachmentPhoto:
			photos = append(photos, s.path)
		case core.AttachmentVideo:
			if video == "" {
				video = s.path
			}
		}
	}
	return photos, video
}

// fetchOne downloads a single attachment and writes it to disk under a
// content-derived name. Oversized photos are re-encoded before storage.
func (f *Fetcher) fetchOne(ctx context.Context, att core.Attachment) (string, error) {
	data, err := f.transport.Fetch(ctx, att)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmptyAsset
	}

	var ext string
	switch att.Kind {
	case core.AttachmentPhoto:
		data = shrinkPhoto(data)
		ext = ".jpg"
	case core.AttachmentVideo:
		ext = ".mp4"
	default:
		return "", ErrUnsupportedKind
	}

	name := fmt.Sprintf("%016x%s", uint64(core.IDFromContent(data)), ext)
	path := filepath.Join(f.dir, name)

	// Same content, same name: an existing file is already what we want.
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store asset: %w", err)
	}
	return path, nil
}

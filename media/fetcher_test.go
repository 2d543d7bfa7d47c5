package media_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donestate/estated/core"
	"github.com/donestate/estated/media"
	"github.com/donestate/estated/media/mock"
)

func newTestFetcher(t *testing.T, transport media.Transport) *media.Fetcher {
	t.Helper()

	fetcher, err := media.NewFetcher(transport, t.TempDir(), 2)
	require.NoError(t, err)
	t.Cleanup(fetcher.Close)
	return fetcher
}

func TestFetch_PhotosInOrder(t *testing.T) {
	fetcher := newTestFetcher(t, mock.NewMockTransport())

	attachments := []core.Attachment{
		{Kind: core.AttachmentPhoto, Ref: "photo-a"},
		{Kind: core.AttachmentPhoto, Ref: "photo-b"},
		{Kind: core.AttachmentPhoto, Ref: "photo-c"},
	}

	photos, video := fetcher.Fetch(context.Background(), attachments)

	require.Len(t, photos, 3)
	assert.Empty(t, video)

	// Order follows the attachment list, not download completion.
	for i, path := range photos {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("asset:%s", attachments[i].Ref), string(data))
	}
}

func TestFetch_FirstVideoWins(t *testing.T) {
	fetcher := newTestFetcher(t, mock.NewMockTransport())

	photos, video := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentVideo, Ref: "video-1"},
		{Kind: core.AttachmentPhoto, Ref: "photo-1"},
		{Kind: core.AttachmentVideo, Ref: "video-2"},
	})

	require.NotEmpty(t, video)
	assert.True(t, strings.HasSuffix(video, ".mp4"))
	data, err := os.ReadFile(video)
	require.NoError(t, err)
	assert.Equal(t, "asset:video-1", string(data))
	assert.Len(t, photos, 1)
}

func TestFetch_DeduplicatesByContent(t *testing.T) {
	fetcher := newTestFetcher(t, mock.NewMockTransport())

	photos, _ := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentPhoto, Ref: "same"},
		{Kind: core.AttachmentPhoto, Ref: "same"},
		{Kind: core.AttachmentPhoto, Ref: "other"},
	})

	assert.Len(t, photos, 2)
}

func TestFetch_SkipsFailedAssets(t *testing.T) {
	transport := mock.NewMockTransport()
	transport.FetchFunc = func(ctx context.Context, att core.Attachment) ([]byte, error) {
		if att.Ref == "broken" {
			return nil, errors.New("transport failure")
		}
		return []byte("asset:" + att.Ref), nil
	}
	fetcher := newTestFetcher(t, transport)

	photos, video := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentPhoto, Ref: "good-1"},
		{Kind: core.AttachmentPhoto, Ref: "broken"},
		{Kind: core.AttachmentVideo, Ref: "broken"},
		{Kind: core.AttachmentPhoto, Ref: "good-2"},
	})

	assert.Len(t, photos, 2)
	assert.Empty(t, video)
}

func TestFetch_SkipsEmptyAssets(t *testing.T) {
	transport := mock.NewMockTransport()
	transport.FetchFunc = func(ctx context.Context, att core.Attachment) ([]byte, error) {
		return nil, nil
	}
	fetcher := newTestFetcher(t, transport)

	photos, video := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentPhoto, Ref: "empty"},
	})

	assert.Empty(t, photos)
	assert.Empty(t, video)
}

func TestFetch_NoAttachments(t *testing.T) {
	fetcher := newTestFetcher(t, mock.NewMockTransport())

	photos, video := fetcher.Fetch(context.Background(), nil)

	assert.Nil(t, photos)
	assert.Empty(t, video)
}

func TestFetch_ContentAddressedNames(t *testing.T) {
	fetcher := newTestFetcher(t, mock.NewMockTransport())

	photos, _ := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentPhoto, Ref: "photo-a"},
	})
	require.Len(t, photos, 1)

	data, err := os.ReadFile(photos[0])
	require.NoError(t, err)
	want := fmt.Sprintf("%016x.jpg", uint64(core.IDFromContent(data)))
	assert.Equal(t, want, filepath.Base(photos[0]))

	// A second fetch of the same content reuses the stored file.
	again, _ := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentPhoto, Ref: "photo-a"},
	})
	require.Len(t, again, 1)
	assert.Equal(t, photos[0], again[0])
}

func TestFetch_UnsupportedKindSkipped(t *testing.T) {
	fetcher := newTestFetcher(t, mock.NewMockTransport())

	photos, video := fetcher.Fetch(context.Background(), []core.Attachment{
		{Kind: core.AttachmentKind(99), Ref: "mystery"},
		{Kind: core.AttachmentPhoto, Ref: "photo-a"},
	})

	assert.Len(t, photos, 1)
	assert.Empty(t, video)
}

func TestFileTransport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export-photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("raw photo bytes"), 0o644))

	transport := media.FileTransport{}

	data, err := transport.Fetch(context.Background(), core.Attachment{Kind: core.AttachmentPhoto, Ref: path})
	require.NoError(t, err)
	assert.Equal(t, "raw photo bytes", string(data))

	_, err = transport.Fetch(context.Background(), core.Attachment{Kind: core.AttachmentPhoto, Ref: filepath.Join(dir, "missing.jpg")})
	assert.Error(t, err)
}

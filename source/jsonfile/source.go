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


package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/donestate/estated/core"
	"github.com/donestate/estated/source"
)

// message is the on-disk shape of one exported channel post.
type message struct {
	ID          int64        `json:"id"`
	ChannelID   int64        `json:"channel_id"`
	PostedAt    time.Time    `json:"posted_at"`
	Text        string       `json:"text"`
	GroupID     int64        `json:"group_id,omitempty"`
	Views       int          `json:"views,omitempty"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type attachment struct {
	Kind string `json:"kind"`
	Ref  string `json:"ref"`
}

// Source replays listing messages from a JSON channel export. The live
// feed of a static file is empty, so subscriptions end immediately and
// an ingestion run finishes after the backfill.
type Source struct {
	messages []core.ListingMessage
}

var _ source.Source = (*Source)(nil)

// Open reads a JSON export (an array of messages) from path.
func Open(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	var raw []message
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed export: %w", err)
	}

	messages := make([]core.ListingMessage, 0, len(raw))
	for _, m := range raw {
		msg := core.ListingMessage{
			ID:        m.ID,
			ChannelID: m.ChannelID,
			PostedAt:  m.PostedAt,
			Text:      m.Text,
			GroupID:   m.GroupID,
			Views:     m.Views,
		}
		for _, a := range m.Attachments {
			kind, ok := parseKind(a.Kind)
			if !ok {
				continue
			}
			msg.Attachments = append(msg.Attachments, core.Attachment{Kind: kind, Ref: a.Ref})
		}
		messages = append(messages, msg)
	}

	slices.SortFunc(messages, func(a, b core.ListingMessage) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return &Source{messages: messages}, nil
}

func parseKind(kind string) (core.AttachmentKind, bool) {
	switch kind {
	case "photo":
		return core.AttachmentPhoto, true
	case "video":
		return core.AttachmentVideo, true
	default:
		return 0, false
	}
}

func (s *Source) Recent(ctx context.Context, channelID int64, limit int) ([]core.ListingMessage, error) {
	var out []core.ListingMessage
	for _, msg := range s.messages {
		if msg.ChannelID == channelID {
			out = append(out, msg)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (s *Source) Subscribe(ctx context.Context, channelID int64) (<-chan core.ListingMessage, error) {
	out := make(chan core.ListingMessage)
	close(out)
	return out, nil
}

func (s *Source) Siblings(ctx context.Context, groupID int64) ([]core.ListingMessage, error) {
	if groupID == 0 {
		return nil, nil
	}
	var out []core.ListingMessage
	for _, msg := range s.messages {
		if msg.GroupID == groupID {
			out = append(out, msg)
		}
	}
	return out, nil
}

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


package source

import (
	"context"

	"github.com/donestate/estated/core"
)

// Source is a channel of listing messages: a history that can be paged
// for backfill and a live feed of new posts.
type Source interface {
	// Recent returns up to limit of the newest messages in the channel,
	// ordered oldest first so a backfill can replay them in sequence.
	Recent(ctx context.Context, channelID int64, limit int) ([]core.ListingMessage, error)

	// Subscribe delivers new messages on the returned channel until ctx
	// is cancelled. The channel is closed when the subscription ends.
	Subscribe(ctx context.Context, channelID int64) (<-chan core.ListingMessage, error)

	// Siblings returns the other messages of an album. Messages posted
	// together share a group id; only one of them carries the text.
	Siblings(ctx context.Context, groupID int64) ([]core.ListingMessage, error)
}

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


package core

import (
	"fmt"
	"time"
)

// MaxRooms is the highest room count accepted as a plausible extraction.
// Anything above it is treated as parser noise and discarded, not clamped.
const MaxRooms = 10

// ValidateListingMessage validates a message received from the source stream.
//
// Validation rules:
//   - ID must be positive
//   - ChannelID must be set
//   - PostedAt must be set and not in the future
//
// NOT validated:
//   - Text (textless messages are valid input, the pipeline skips them)
//   - Attachments (optional)
func ValidateListingMessage(msg *ListingMessage) error {
	if msg == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidMessage)
	}

	if msg.ID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrInvalidMessageID)
	}

	if msg.ChannelID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrInvalidChannelID)
	}

	if !IsValidTimestamp(msg.PostedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateProperty validates a Property before persistence.
//
// Validation rules:
//   - MessageID must be positive
//   - ChannelID must be set
//   - PostedAt must be set and not in the future
//   - Rooms must be RoomsUnknown or within [0, MaxRooms]
//
// NOT validated (optional enrichment):
//   - Vector (empty until the embedding step runs, may stay empty)
//   - Latitude/Longitude (absent when geocoding soft-failed)
//   - MediaPaths (may be partial or empty)
func ValidateProperty(property *Property) error {
	if property == nil {
		return fmt.Errorf("%w: property is nil", ErrInvalidProperty)
	}

	if property.MessageID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrInvalidMessageID)
	}

	if property.ChannelID == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrInvalidChannelID)
	}

	if !IsValidTimestamp(property.PostedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrInvalidTimestamp)
	}

	if err := ValidateRooms(property.Rooms); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, err)
	}

	return nil
}

// ValidateRooms validates a room count value.
func ValidateRooms(rooms int) error {
	if rooms == RoomsUnknown {
		return nil
	}
	if rooms < 0 || rooms > MaxRooms {
		return fmt.Errorf("%w: value %d", ErrInvalidRooms, rooms)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is set and not in the future.
func IsValidTimestamp(ts time.Time) bool {
	return !ts.IsZero() && !ts.After(time.Now())
}

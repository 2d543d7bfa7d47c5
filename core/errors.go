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

import "errors"

// Domain validation errors
var (
	// ErrInvalidMessage indicates a ListingMessage failed validation.
	ErrInvalidMessage = errors.New("invalid listing message")

	// ErrInvalidProperty indicates a Property failed validation.
	ErrInvalidProperty = errors.New("invalid property")

	// ErrInvalidMessageID indicates a non-positive source message id.
	ErrInvalidMessageID = errors.New("message id must be positive")

	// ErrInvalidChannelID indicates a missing channel id.
	ErrInvalidChannelID = errors.New("channel id required")

	// ErrInvalidTimestamp indicates a missing or future posting timestamp.
	ErrInvalidTimestamp = errors.New("posted timestamp must be set and not in the future")

	// ErrInvalidRooms indicates a room count outside the accepted range.
	ErrInvalidRooms = errors.New("room count out of range")
)

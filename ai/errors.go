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


package ai

import (
	"errors"
	"strings"
)

// ErrRateLimited signals that the embedding service rejected a call for
// exceeding its rate limit. It is distinguishable from generic errors so
// callers can apply exponential instead of fixed backoff.
var ErrRateLimited = errors.New("embedding service rate limited")

// IsRateLimited reports whether err represents a rate-limit rejection,
// either as the ErrRateLimited sentinel or a provider error carrying an
// HTTP 429 / rate-limit marker in its message.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate limit")
}

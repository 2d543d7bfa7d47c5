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


package geo

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Point is a geographic coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves an address string to coordinates.
// Resolution is best-effort: implementations report a miss, never an error,
// so a failing geocoding service can only narrow a record, not block it.
type Geocoder interface {
	// Geocode returns the best coordinate pair for the address.
	// ok is false when the address is empty, the service is unreachable or
	// misconfigured, or no result was found. Exactly one attempt, no retry.
	Geocode(ctx context.Context, address string) (Point, bool)
}

// DefaultBaseURL is the Yandex Maps geocoding endpoint.
const DefaultBaseURL = "https://geocode-maps.yandex.ru/1.x/"

// YandexGeocoder implements Geocoder against the Yandex Maps HTTP API.
type YandexGeocoder struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

var _ Geocoder = (*YandexGeocoder)(nil)

// Option configures a YandexGeocoder.
type Option func(*YandexGeocoder)

// WithBaseURL overrides the service endpoint (used in tests).
func WithBaseURL(baseURL string) Option {
	return func(g *YandexGeocoder) {
		g.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *YandexGeocoder) {
		g.client = client
	}
}

// NewYandexGeocoder creates a geocoder. An empty apiKey is allowed: the
// geocoder then reports a miss for every address instead of failing.
func NewYandexGeocoder(apiKey string, opts ...Option) *YandexGeocoder {
	g := &YandexGeocoder{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  slog.Default().With("component", "geocoder"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// geocodeResponse mirrors the subset of the Yandex response we read.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode resolves an address with a single service call.
func (g *YandexGeocoder) Geocode(ctx context.Context, address string) (Point, bool) {
	if g.apiKey == "" || address == "" {
		return Point{}, false
	}

	params := url.Values{}
	params.Set("apikey", g.apiKey)
	params.Set("geocode", address)
	params.Set("format", "json")
	params.Set("results", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		g.logger.Warn("failed to build geocode request", "address", address, "err", err)
		return Point{}, false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geocode request failed", "address", address, "err", err)
		return Point{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("geocode service returned non-OK status", "address", address, "status", resp.StatusCode)
		return Point{}, false
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		g.logger.Warn("malformed geocode response", "address", address, "err", err)
		return Point{}, false
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return Point{}, false
	}

	point, ok := parsePos(members[0].GeoObject.Point.Pos)
	if !ok {
		g.logger.Warn("malformed geocode position", "address", address, "pos", members[0].GeoObject.Point.Pos)
		return Point{}, false
	}
	return point, true
}

// parsePos parses the "longitude latitude" position string.
func parsePos(pos string) (Point, bool) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return Point{}, false
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, false
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, false
	}
	return Point{Latitude: lat, Longitude: lon}, true
}

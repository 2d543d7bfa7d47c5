package mock

import (
	"context"
	"sync"

	"github.com/donestate/estated/geo"
)

// MockGeocoder is a configurable geo.Geocoder for tests.
type MockGeocoder struct {
	// GeocodeFunc overrides the default behavior when set.
	GeocodeFunc func(ctx context.Context, address string) (geo.Point, bool)

	mu        sync.Mutex
	callCount int
}

var _ geo.Geocoder = (*MockGeocoder)(nil)

// NewMockGeocoder creates a mock that resolves every non-empty address to
// a fixed coordinate pair.
func NewMockGeocoder() *MockGeocoder {
	return &MockGeocoder{}
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (geo.Point, bool) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(ctx, address)
	}
	if address == "" {
		return geo.Point{}, false
	}
	return geo.Point{Latitude: 42.8746, Longitude: 74.5698}, true
}

// CallCount returns the number of Geocode calls made.
func (m *MockGeocoder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears recorded calls.
func (m *MockGeocoder) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
}

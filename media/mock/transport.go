package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/donestate/estated/core"
)

// MockTransport is a configurable media.Transport for tests.
type MockTransport struct {
	// FetchFunc overrides the default behavior when set.
	FetchFunc func(ctx context.Context, att core.Attachment) ([]byte, error)

	mu        sync.Mutex
	callCount int
}

// NewMockTransport creates a mock that returns small deterministic
// payloads derived from the attachment reference.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

func (m *MockTransport) Fetch(ctx context.Context, att core.Attachment) ([]byte, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, att)
	}
	return []byte(fmt.Sprintf("asset:%s", att.Ref)), nil
}

// CallCount returns the number of Fetch calls made.
func (m *MockTransport) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears recorded calls.
func (m *MockTransport) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
}

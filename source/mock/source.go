package mock

import (
	"context"
	"sync"

	"github.com/donestate/estated/core"
	"github.com/donestate/estated/source"
)

// MockSource is a configurable source.Source for tests.
type MockSource struct {
	// RecentFunc overrides the default behavior when set.
	RecentFunc func(ctx context.Context, channelID int64, limit int) ([]core.ListingMessage, error)

	// SubscribeFunc overrides the default behavior when set.
	SubscribeFunc func(ctx context.Context, channelID int64) (<-chan core.ListingMessage, error)

	// SiblingsFunc overrides the default behavior when set.
	SiblingsFunc func(ctx context.Context, groupID int64) ([]core.ListingMessage, error)

	// Messages is the channel history served by the default Recent.
	Messages []core.ListingMessage

	// Live feeds the default Subscribe; close it to end the subscription.
	Live chan core.ListingMessage

	mu           sync.Mutex
	recentCalls  int
	siblingCalls int
}

var _ source.Source = (*MockSource)(nil)

// NewMockSource creates a mock serving the given history.
func NewMockSource(messages ...core.ListingMessage) *MockSource {
	return &MockSource{
		Messages: messages,
		Live:     make(chan core.ListingMessage, 16),
	}
}

func (m *MockSource) Recent(ctx context.Context, channelID int64, limit int) ([]core.ListingMessage, error) {
	m.mu.Lock()
	m.recentCalls++
	m.mu.Unlock()

	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, channelID, limit)
	}

	var out []core.ListingMessage
	for _, msg := range m.Messages {
		if msg.ChannelID != channelID {
			continue
		}
		out = append(out, msg)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *MockSource) Subscribe(ctx context.Context, channelID int64) (<-chan core.ListingMessage, error) {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, channelID)
	}

	out := make(chan core.ListingMessage)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-m.Live:
				if !ok {
					return
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (m *MockSource) Siblings(ctx context.Context, groupID int64) ([]core.ListingMessage, error) {
	m.mu.Lock()
	m.siblingCalls++
	m.mu.Unlock()

	if m.SiblingsFunc != nil {
		return m.SiblingsFunc(ctx, groupID)
	}

	var out []core.ListingMessage
	for _, msg := range m.Messages {
		if msg.GroupID != 0 && msg.GroupID == groupID {
			out = append(out, msg)
		}
	}
	return out, nil
}

// RecentCalls returns the number of Recent calls made.
func (m *MockSource) RecentCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recentCalls
}

// SiblingCalls returns the number of Siblings calls made.
func (m *MockSource) SiblingCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.siblingCalls
}

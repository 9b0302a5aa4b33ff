package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/knesset/internal/events"
)

// MockEventHandler implements events.EventHandler for testing
type MockEventHandler struct {
	// HandleEventFn allows test cases to mock the HandleEvent behavior
	HandleEventFn func(ctx context.Context, event *events.Event) error

	// Default response value
	Err error

	// Call tracking for verification
	HandleEventCalls struct {
		// mu protects the call tracking state
		mu sync.Mutex

		// Events contains every event passed to HandleEvent, in order
		Events []*events.Event
	}
}

// HandleEvent implements the events.EventHandler interface
func (m *MockEventHandler) HandleEvent(ctx context.Context, event *events.Event) error {
	m.HandleEventCalls.mu.Lock()
	m.HandleEventCalls.Events = append(m.HandleEventCalls.Events, event)
	m.HandleEventCalls.mu.Unlock()

	if m.HandleEventFn != nil {
		return m.HandleEventFn(ctx, event)
	}

	return m.Err
}

// Received returns a copy of the events handled so far.
func (m *MockEventHandler) Received() []*events.Event {
	m.HandleEventCalls.mu.Lock()
	defer m.HandleEventCalls.mu.Unlock()

	out := make([]*events.Event, len(m.HandleEventCalls.Events))
	copy(out, m.HandleEventCalls.Events)
	return out
}

// Types returns the types of the events handled so far, in order.
func (m *MockEventHandler) Types() []string {
	received := m.Received()
	types := make([]string, len(received))
	for i, e := range received {
		types[i] = e.Type
	}
	return types
}

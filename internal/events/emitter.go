package events

import (
	"context"
	"log/slog"
	"maps"
	"sync"
)

// InMemoryEventEmitter fans assembly events out to handlers registered in
// process and keeps per-type delivery tallies for the lifetime of the emitter.
type InMemoryEventEmitter struct {
	mu        sync.RWMutex
	handlers  []EventHandler
	delivered map[string]int
	failed    map[string]int
	logger    *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no handlers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	return &InMemoryEventEmitter{
		delivered: make(map[string]int),
		failed:    make(map[string]int),
		logger:    logger.With("component", "assembly_event_emitter"),
	}
}

// RegisterHandler adds a handler that receives every subsequent event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers = append(e.handlers, handler)
}

// EmitEvent hands the event to every registered handler in registration order.
// A failing handler does not stop delivery to the rest; the first error is
// returned. An event counts as delivered when every handler accepted it.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	e.mu.RLock()
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	e.mu.RUnlock()

	var firstErr error
	for i, handler := range handlers {
		err := handler.HandleEvent(ctx, event)
		if err == nil {
			continue
		}
		e.logger.Error("handler failed to process event",
			"error", err,
			"handler_index", i,
			"event_id", event.ID,
			"event_type", event.Type)
		if firstErr == nil {
			firstErr = err
		}
	}

	e.mu.Lock()
	if firstErr != nil {
		e.failed[event.Type]++
	} else {
		e.delivered[event.Type]++
	}
	delivered, failed := e.delivered[event.Type], e.failed[event.Type]
	e.mu.Unlock()

	e.logger.Debug("event dispatched",
		"event_id", event.ID,
		"event_type", event.Type,
		"handlers", len(handlers),
		"delivered_of_type", delivered,
		"failed_of_type", failed)

	return firstErr
}

// Delivered returns a copy of the per-type count of events every handler
// accepted.
func (e *InMemoryEventEmitter) Delivered() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.delivered)
}

// Failed returns a copy of the per-type count of events at least one handler
// rejected.
func (e *InMemoryEventEmitter) Failed() map[string]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.failed)
}

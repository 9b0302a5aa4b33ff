package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	type testPayload struct {
		LawID    int    `json:"law_id"`
		MemberID int    `json:"member_id"`
		Law      string `json:"law"`
	}

	payload := testPayload{LawID: 2, MemberID: 5, Law: "[T,Knesset Member A B,Party,2020]"}

	before := time.Now().UTC()
	event, err := NewEvent(TypeLawSupported, payload)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeLawSupported, event.Type)
	assert.False(t, event.CreatedAt.Before(before))

	var decoded testPayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(event.Payload, &raw))
	assert.Equal(t, float64(2), raw["law_id"])
}

func TestNewEventUniqueIDs(t *testing.T) {
	first, err := NewEvent(TypeLawRegistered, nil)
	require.NoError(t, err)
	second, err := NewEvent(TypeLawRegistered, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "null", string(first.Payload))
}

func TestNewEventUnmarshalablePayload(t *testing.T) {
	_, err := NewEvent(TypeLawSuggested, make(chan int))
	assert.Error(t, err)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *Event
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestEventHandler(t *testing.T) {
	handler := &MockEventHandler{}

	event, err := NewEvent(TypeLawSurveyUpdated, map[string]int{"survey": 40})
	require.NoError(t, err)

	err = handler.HandleEvent(context.Background(), event)
	assert.NoError(t, err)
	assert.Equal(t, 1, handler.HandledCount)
	assert.Equal(t, event, handler.LastEvent)

	expectedErr := errors.New("handler error")
	handler.HandlerError = expectedErr
	err = handler.HandleEvent(context.Background(), event)
	assert.Equal(t, expectedErr, err)
	assert.Equal(t, 2, handler.HandledCount)
}

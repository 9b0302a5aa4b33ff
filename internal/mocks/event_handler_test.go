package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/knesset/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEventHandler(t *testing.T) {
	t.Run("records events and returns default error", func(t *testing.T) {
		expectedErr := errors.New("handler failed")
		mock := &MockEventHandler{Err: expectedErr}

		first, err := events.NewEvent(events.TypeLawRegistered, nil)
		require.NoError(t, err)
		second, err := events.NewEvent(events.TypeLawSupported, nil)
		require.NoError(t, err)

		assert.Equal(t, expectedErr, mock.HandleEvent(context.Background(), first))
		assert.Equal(t, expectedErr, mock.HandleEvent(context.Background(), second))

		assert.Equal(t, []*events.Event{first, second}, mock.Received())
		assert.Equal(t, []string{events.TypeLawRegistered, events.TypeLawSupported}, mock.Types())
	})

	t.Run("uses custom function", func(t *testing.T) {
		called := false
		mock := &MockEventHandler{
			HandleEventFn: func(ctx context.Context, event *events.Event) error {
				called = true
				return nil
			},
			Err: errors.New("ignored"),
		}

		event, err := events.NewEvent(events.TypeLawSuggested, nil)
		require.NoError(t, err)

		assert.NoError(t, mock.HandleEvent(context.Background(), event))
		assert.True(t, called)
		assert.Len(t, mock.Received(), 1)
	})
}

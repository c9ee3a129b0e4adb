package getEventInfo

import (
	"context"
	"errors"
	"testing"

	"eventManager/internal/cache"
	"eventManager/internal/cli/handlers/event/getEventInfo/mocks"
	"eventManager/internal/client"
	"eventManager/internal/lib/logger/handlers/slogdiscard"
	"eventManager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetEventInfoHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	event := &models.Event{
		ID:        7,
		Title:     "Conference",
		Price:     1999,
		Status:    models.StatusStarted,
		StartDate: 4102444800,
		EndDate:   4102531200,
	}

	t.Run("cache miss fetches and caches", func(t *testing.T) {
		t.Parallel()

		mockEvents := mocks.NewEventGetter(t)
		mockEvents.On("GetEvent", mock.Anything, 7).Return(event, nil)

		mockQueries := mocks.NewEventCache(t)
		mockQueries.On("Get", cache.EventKey(7)).Return(nil, false)
		mockQueries.On("Set", cache.EventKey(7), event)

		handler := New(logger, mockEvents, mockQueries)

		got, err := handler(context.Background(), "7")

		require.NoError(t, err)
		assert.Equal(t, event, got)
	})

	t.Run("cache hit skips the client", func(t *testing.T) {
		t.Parallel()

		mockEvents := mocks.NewEventGetter(t)

		mockQueries := mocks.NewEventCache(t)
		mockQueries.On("Get", cache.EventKey(7)).Return(event, true)

		handler := New(logger, mockEvents, mockQueries)

		got, err := handler(context.Background(), "7")

		require.NoError(t, err)
		assert.Equal(t, event, got)
		mockEvents.AssertNotCalled(t, "GetEvent", mock.Anything, mock.Anything)
	})

	t.Run("invalid id formats", func(t *testing.T) {
		t.Parallel()

		mockEvents := mocks.NewEventGetter(t)
		mockQueries := mocks.NewEventCache(t)

		handler := New(logger, mockEvents, mockQueries)

		for _, rawID := range []string{"abc", "", "0", "-1", "1.5"} {
			_, err := handler(context.Background(), rawID)

			assert.ErrorIs(t, err, ErrInvalidID, "id %q", rawID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		mockEvents := mocks.NewEventGetter(t)
		mockEvents.On("GetEvent", mock.Anything, 404).Return(nil, client.ErrNotFound)

		mockQueries := mocks.NewEventCache(t)
		mockQueries.On("Get", cache.EventKey(404)).Return(nil, false)

		handler := New(logger, mockEvents, mockQueries)

		_, err := handler(context.Background(), "404")

		assert.ErrorIs(t, err, client.ErrNotFound)
		mockQueries.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	})

	t.Run("client error", func(t *testing.T) {
		t.Parallel()

		mockEvents := mocks.NewEventGetter(t)
		mockEvents.On("GetEvent", mock.Anything, 7).Return(nil, errors.New("request failed"))

		mockQueries := mocks.NewEventCache(t)
		mockQueries.On("Get", cache.EventKey(7)).Return(nil, false)

		handler := New(logger, mockEvents, mockQueries)

		_, err := handler(context.Background(), "7")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "request failed")
	})
}

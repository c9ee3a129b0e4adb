package getEventInfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"eventManager/internal/cache"
	"eventManager/internal/client"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
)

var ErrInvalidID = errors.New("invalid event id format")

type Handler func(ctx context.Context, rawID string) (*models.Event, error)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(ctx context.Context, id int) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCache
type EventCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

func New(log *slog.Logger, events EventGetter, queries EventCache) Handler {
	return func(ctx context.Context, rawID string) (*models.Event, error) {
		const op = "handlers.event.getEventInfo.New"

		log := log.With(slog.String("op", op))

		id, err := strconv.Atoi(rawID)
		if err != nil || id <= 0 {
			log.Error("invalid event id format", slog.String("id", rawID))

			return nil, ErrInvalidID
		}

		log = log.With(slog.Int("event_id", id))

		if cached, ok := queries.Get(cache.EventKey(id)); ok {
			if event, ok := cached.(*models.Event); ok {
				log.Debug("event served from cache")

				return event, nil
			}
		}

		event, err := events.GetEvent(ctx, id)
		if err != nil {
			if errors.Is(err, client.ErrNotFound) {
				log.Error("event not found")

				return nil, client.ErrNotFound
			}

			log.Error("failed to get event information", sl.Err(err))

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		queries.Set(cache.EventKey(id), event)

		log.Info("event info successfully received")

		return event, nil
	}
}

package getAllEvents

import (
	"context"
	"fmt"
	"log/slog"

	"eventManager/internal/cache"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
)

type Handler func(ctx context.Context) ([]models.Event, error)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsCache
type EventsCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

func New(log *slog.Logger, events EventsGetter, queries EventsCache) Handler {
	return func(ctx context.Context) ([]models.Event, error) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		if cached, ok := queries.Get(cache.EventsKey); ok {
			if list, ok := cached.([]models.Event); ok {
				log.Debug("events served from cache", slog.Int("count", len(list)))

				return list, nil
			}
		}

		list, err := events.ListEvents(ctx)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		queries.Set(cache.EventsKey, list)

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		return list, nil
	}
}

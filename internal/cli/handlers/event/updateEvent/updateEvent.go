package updateEvent

import (
	"context"
	"fmt"
	"log/slog"

	"eventManager/internal/cache"
	"eventManager/internal/form"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/validation"
)

// Handler runs one edit-event form. Unlike creation, a start date in
// the past is accepted: events that already began stay editable.
type Handler func(ctx context.Context, in validation.UpdateInput) (*models.Event, error)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, id int, payload validation.UpdatePayload) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CacheInvalidator
type CacheInvalidator interface {
	Invalidate(keys ...string)
}

func New(log *slog.Logger, events EventUpdater, queries CacheInvalidator) Handler {
	var guard form.Guard

	return func(ctx context.Context, in validation.UpdateInput) (*models.Event, error) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(slog.String("op", op))

		if err := guard.Begin(); err != nil {
			log.Warn("submit ignored, previous one still in flight")

			return nil, err
		}

		payload, verrs := validation.ValidateForUpdate(in)
		if len(verrs) > 0 {
			guard.Finish(verrs)
			log.Error("invalid event input", sl.Err(verrs))

			return nil, verrs
		}

		log = log.With(slog.Int("event_id", payload.ID))
		log.Info("event input validated")

		event, err := events.UpdateEvent(ctx, payload.ID, payload)
		guard.Finish(err)
		if err != nil {
			log.Error("failed to update event", sl.Err(err))

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		queries.Invalidate(cache.EventsKey, cache.EventKey(payload.ID))

		log.Info("event updated")

		return event, nil
	}
}

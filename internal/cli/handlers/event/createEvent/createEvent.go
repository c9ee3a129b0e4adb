package createEvent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventManager/internal/cache"
	"eventManager/internal/form"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/validation"
)

// Handler runs one create-event form: validate raw input, post the
// canonical payload, invalidate the events list on success.
type Handler func(ctx context.Context, in validation.CreateInput) (*models.Event, error)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, payload validation.CreatePayload) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CacheInvalidator
type CacheInvalidator interface {
	Invalidate(keys ...string)
}

func New(log *slog.Logger, events EventCreator, queries CacheInvalidator) Handler {
	var guard form.Guard

	return func(ctx context.Context, in validation.CreateInput) (*models.Event, error) {
		const op = "handlers.event.createEvent.New"

		log := log.With(slog.String("op", op))

		if err := guard.Begin(); err != nil {
			log.Warn("submit ignored, previous one still in flight")

			return nil, err
		}

		payload, verrs := validation.ValidateForCreate(in, time.Now())
		if len(verrs) > 0 {
			guard.Finish(verrs)
			log.Error("invalid event input", sl.Err(verrs))

			return nil, verrs
		}

		log.Info("event input validated", slog.Any("payload", payload))

		event, err := events.CreateEvent(ctx, payload)
		guard.Finish(err)
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		queries.Invalidate(cache.EventsKey)

		log.Info("event created", slog.Int("id", event.ID))

		return event, nil
	}
}

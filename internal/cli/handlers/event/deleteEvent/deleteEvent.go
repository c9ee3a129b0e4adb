package deleteEvent

import (
	"context"
	"fmt"
	"log/slog"

	"eventManager/internal/cache"
	"eventManager/internal/form"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/validation"
)

type Handler func(ctx context.Context, in validation.DeleteInput) error

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id int) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CacheInvalidator
type CacheInvalidator interface {
	Invalidate(keys ...string)
}

func New(log *slog.Logger, events EventDeleter, queries CacheInvalidator) Handler {
	var guard form.Guard

	return func(ctx context.Context, in validation.DeleteInput) error {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(slog.String("op", op))

		if err := guard.Begin(); err != nil {
			log.Warn("submit ignored, previous one still in flight")

			return err
		}

		payload, verrs := validation.ValidateDelete(in)
		if len(verrs) > 0 {
			guard.Finish(verrs)
			log.Error("invalid delete input", sl.Err(verrs))

			return verrs
		}

		log = log.With(slog.Int("event_id", payload.ID))

		err := events.DeleteEvent(ctx, payload.ID)
		guard.Finish(err)
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))

			return fmt.Errorf("%s: %w", op, err)
		}

		queries.Invalidate(cache.EventsKey, cache.EventKey(payload.ID))

		log.Info("event deleted")

		return nil
	}
}

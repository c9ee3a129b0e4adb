package main

import (
	"context"
	"errors"
	"eventManager/internal/cache"
	"eventManager/internal/cli/handlers/event/createEvent"
	"eventManager/internal/cli/handlers/event/deleteEvent"
	"eventManager/internal/cli/handlers/event/getAllEvents"
	"eventManager/internal/cli/handlers/event/getEventInfo"
	"eventManager/internal/cli/handlers/event/updateEvent"
	"eventManager/internal/client"
	"eventManager/internal/config"
	"eventManager/internal/lib/currency"
	"eventManager/internal/lib/dates"
	"eventManager/internal/lib/logger/handlers/slogpretty"
	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"
	"eventManager/internal/validation"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event manager",
		slog.String("env", cfg.Env),
		slog.String("api", cfg.API.BaseURL),
	)
	log.Debug("Debug messages are enabled")

	api := client.New(cfg.API, log)
	queries := cache.New(cfg.Cache.TTL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	if err := run(ctx, log, api, queries, os.Args[1:]); err != nil {
		var verrs validation.FieldErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
			}
			os.Exit(2)
		}

		log.Error("command failed", sl.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, api *client.Client, queries *cache.Cache, args []string) error {
	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("command is required")
	}

	switch cmd := args[0]; cmd {
	case "list":
		events, err := getAllEvents.New(log, api, queries)(ctx)
		if err != nil {
			return err
		}

		printEvents(events)

		return nil

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: show <id>")
		}

		event, err := getEventInfo.New(log, api, queries)(ctx, args[1])
		if err != nil {
			return err
		}

		printEvent(event)

		return nil

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		title := fs.String("title", "", "event title")
		price := fs.String("price", "", "price in dollars, e.g. 19.99")
		start := fs.String("start", "", "start date, dd/mm/yyyy")
		end := fs.String("end", "", "end date, dd/mm/yyyy")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		event, err := createEvent.New(log, api, queries)(ctx, validation.CreateInput{
			Title:     *title,
			Price:     *price,
			StartDate: *start,
			EndDate:   *end,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Event created with id %d\n", event.ID)

		return nil

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: update <id> [flags]")
		}

		fs := flag.NewFlagSet("update", flag.ExitOnError)
		title := fs.String("title", "", "event title")
		price := fs.String("price", "", "price in dollars, e.g. 19.99")
		start := fs.String("start", "", "start date, dd/mm/yyyy")
		end := fs.String("end", "", "end date, dd/mm/yyyy")
		status := fs.String("status", "", "status: started, paused or completed")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}

		// Prefill the form from the current record so one flag can be
		// changed without re-entering the rest, like the edit dialog does.
		current, err := getEventInfo.New(log, api, queries)(ctx, args[1])
		if err != nil {
			return err
		}

		in := validation.EditForm(current)

		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "title":
				in.Title = *title
			case "price":
				in.Price = *price
			case "start":
				in.StartDate = *start
			case "end":
				in.EndDate = *end
			case "status":
				in.Status = *status
			}
		})

		event, err := updateEvent.New(log, api, queries)(ctx, in)
		if err != nil {
			return err
		}

		fmt.Printf("Event %d updated\n", event.ID)

		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: delete <id>")
		}

		if err := deleteEvent.New(log, api, queries)(ctx, validation.DeleteInput{ID: args[1]}); err != nil {
			return err
		}

		fmt.Printf("Event %s deleted\n", args[1])

		return nil

	default:
		printUsage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func printEvents(events []models.Event) {
	if len(events) == 0 {
		fmt.Println("No events found")
		return
	}

	fmt.Printf("%-5s %-30s %-10s %-12s %-13s %s\n", "ID", "TITLE", "STATUS", "PRICE", "START", "END")
	for _, e := range events {
		fmt.Printf("%-5d %-30s %-10s %-12s %-13s %s\n",
			e.ID,
			e.Title,
			e.Status,
			formatPrice(e.Price),
			dates.FormatHumanDate(e.StartDate),
			dates.FormatHumanDate(e.EndDate),
		)
	}
}

func printEvent(e *models.Event) {
	fmt.Printf("Title:  %s\n", e.Title)
	fmt.Printf("Status: %s\n", e.Status)
	fmt.Printf("Price:  %s\n", formatPrice(e.Price))
	fmt.Printf("Start:  %s\n", dates.FormatHumanDate(e.StartDate))
	fmt.Printf("End:    %s\n", dates.FormatHumanDate(e.EndDate))
}

func formatPrice(minorUnits int64) string {
	if minorUnits == 0 {
		return "Free"
	}

	return "$" + currency.ToMajorUnits(minorUnits)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: event-manager <command> [flags]

Commands:
  list                      list all events
  show <id>                 show one event
  create [flags]            create an event (-title, -price, -start, -end)
  update <id> [flags]       update an event (-title, -price, -start, -end, -status)
  delete <id>               delete an event`)
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stderr)

	return slog.New(h)
}

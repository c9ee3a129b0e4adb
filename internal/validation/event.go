// Package validation is the pipeline between raw form input and the
// canonical wire representation of an event. It validates every field,
// applies the display-to-canonical transforms (dd/mm/yyyy -> epoch
// seconds, decimal major units -> integer minor units) and reports all
// violations of one call in a single field-tagged result.
package validation

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"eventManager/internal/lib/currency"
	"eventManager/internal/lib/dates"
	"eventManager/internal/models"
)

const (
	titleMinLen = 3
	titleMaxLen = 255
)

// CreateInput holds raw field values exactly as they come out of form
// controls. All fields are strings; nothing is trusted.
type CreateInput struct {
	Title     string
	Price     string
	StartDate string
	EndDate   string
}

type UpdateInput struct {
	ID        string
	Title     string
	Price     string
	StartDate string
	EndDate   string
	Status    string
}

type DeleteInput struct {
	ID string
}

// CreatePayload is the canonical creation body: no id, no status.
type CreatePayload struct {
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
}

type UpdatePayload struct {
	ID        int           `json:"id"`
	Title     string        `json:"title"`
	Price     int64         `json:"price"`
	StartDate int64         `json:"startDate"`
	EndDate   int64         `json:"endDate"`
	Status    models.Status `json:"status"`
}

type DeletePayload struct {
	ID int `json:"id"`
}

// ValidateForCreate validates raw input for event creation and, on
// success, returns the canonical payload. The start date must lie
// strictly in the future relative to now.
func ValidateForCreate(in CreateInput, now time.Time) (CreatePayload, FieldErrors) {
	var errs FieldErrors

	title := validateTitle(in.Title, &errs)
	price := validatePrice(in.Price, &errs)
	start, startOK := validateDate("startDate", in.StartDate, &errs)
	end, endOK := validateDate("endDate", in.EndDate, &errs)

	var startSec, endSec int64
	if startOK {
		startSec = dates.ToEpochSeconds(start)
	}
	if endOK {
		endSec = dates.ToEpochSeconds(end)
	}

	if startOK && endOK && endSec <= startSec {
		errs.add("endDate", CodeEndBeforeStart, "End date must be greater than start date")
	}
	if startOK && startSec <= dates.ToEpochSeconds(now) {
		errs.add("startDate", CodeStartNotFuture, "Start date must be in the future")
	}

	if len(errs) > 0 {
		return CreatePayload{}, errs
	}

	return CreatePayload{
		Title:     title,
		Price:     price,
		StartDate: startSec,
		EndDate:   endSec,
	}, nil
}

// ValidateForUpdate applies the same field rules as creation plus id and
// status checks. A start date in the past is allowed: editing an event
// that already began must stay possible.
func ValidateForUpdate(in UpdateInput) (UpdatePayload, FieldErrors) {
	var errs FieldErrors

	id := validateID(in.ID, &errs)
	title := validateTitle(in.Title, &errs)
	price := validatePrice(in.Price, &errs)
	start, startOK := validateDate("startDate", in.StartDate, &errs)
	end, endOK := validateDate("endDate", in.EndDate, &errs)

	status := models.Status(in.Status)
	if !status.Valid() {
		errs.add("status", CodeInvalidStatus, "Status must be one of started, paused, completed")
	}

	var startSec, endSec int64
	if startOK {
		startSec = dates.ToEpochSeconds(start)
	}
	if endOK {
		endSec = dates.ToEpochSeconds(end)
	}

	if startOK && endOK && endSec <= startSec {
		errs.add("endDate", CodeEndBeforeStart, "End date must be greater than start date")
	}

	if len(errs) > 0 {
		return UpdatePayload{}, errs
	}

	return UpdatePayload{
		ID:        id,
		Title:     title,
		Price:     price,
		StartDate: startSec,
		EndDate:   endSec,
		Status:    status,
	}, nil
}

// ValidateDelete checks nothing but the id.
func ValidateDelete(in DeleteInput) (DeletePayload, FieldErrors) {
	var errs FieldErrors

	id := validateID(in.ID, &errs)
	if len(errs) > 0 {
		return DeletePayload{}, errs
	}

	return DeletePayload{ID: id}, nil
}

// EditForm converts a canonical event back into raw form values for
// editing. Feeding the result to ValidateForUpdate reproduces the same
// title, price and calendar days (time of day is not representable in
// the display form and collapses to local midnight).
func EditForm(event *models.Event) UpdateInput {
	return UpdateInput{
		ID:        strconv.Itoa(event.ID),
		Title:     event.Title,
		Price:     currency.ToMajorUnits(event.Price),
		StartDate: dates.FormatDisplayDate(event.StartDate),
		EndDate:   dates.FormatDisplayDate(event.EndDate),
		Status:    string(event.Status),
	}
}

func validateTitle(raw string, errs *FieldErrors) string {
	title := strings.TrimSpace(raw)

	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		errs.add("title", CodeRequired, "Title is required")
	case n < titleMinLen:
		errs.add("title", CodeTooShort, "Title is too short, minimum %d characters", titleMinLen)
	case n > titleMaxLen:
		errs.add("title", CodeTooLong, "Title is too long, maximum %d characters", titleMaxLen)
	}

	return title
}

func validatePrice(raw string, errs *FieldErrors) int64 {
	if strings.TrimSpace(raw) == "" {
		errs.add("price", CodeRequired, "Price is required")
		return 0
	}

	price, err := currency.ToMinorUnits(raw)
	if err != nil {
		switch {
		case errors.Is(err, currency.ErrNegative):
			errs.add("price", CodeNegative, "Invalid price, minimum zero (0) dollars")
		case errors.Is(err, currency.ErrTooManyDecimals):
			errs.add("price", CodeTooManyDecimals, "Price must have at most 2 decimal places")
		default:
			errs.add("price", CodeNotANumber, "Price must be a number")
		}
		return 0
	}

	return price
}

func validateDate(field, raw string, errs *FieldErrors) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		errs.add(field, CodeRequired, "Date is required")
		return time.Time{}, false
	}

	parsed, err := dates.ParseDisplayDate(raw)
	if err != nil {
		errs.add(field, CodeInvalidFormat, "Date must be in dd/mm/yyyy format")
		return time.Time{}, false
	}

	return parsed, true
}

func validateID(raw string, errs *FieldErrors) int {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		errs.add("id", CodeInvalidID, "Id must be a positive integer")
		return 0
	}

	return id
}

package validation

import (
	"strings"
	"testing"
	"time"

	"eventManager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed submission instant so the future-start rule is deterministic.
var testNow = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.Local)

func TestValidateForCreate(t *testing.T) {
	t.Parallel()

	validInput := CreateInput{
		Title:     "Conference",
		Price:     "19.99",
		StartDate: "10/01/2025",
		EndDate:   "11/01/2025",
	}

	testCases := []struct {
		name       string
		input      CreateInput
		wantErrs   map[string]Code
		checkValid func(t *testing.T, payload CreatePayload)
	}{
		{
			name:  "valid input",
			input: validInput,
			checkValid: func(t *testing.T, payload CreatePayload) {
				assert.Equal(t, "Conference", payload.Title)
				assert.Equal(t, int64(1999), payload.Price)
				assert.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.Local).Unix(), payload.StartDate)
				assert.Equal(t, time.Date(2025, time.January, 11, 0, 0, 0, 0, time.Local).Unix(), payload.EndDate)
			},
		},
		{
			name: "title is trimmed",
			input: CreateInput{
				Title:     "  Conference  ",
				Price:     "19.99",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			checkValid: func(t *testing.T, payload CreatePayload) {
				assert.Equal(t, "Conference", payload.Title)
			},
		},
		{
			name: "free event",
			input: CreateInput{
				Title:     "Meetup",
				Price:     "0",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			checkValid: func(t *testing.T, payload CreatePayload) {
				assert.Equal(t, int64(0), payload.Price)
			},
		},
		{
			name: "title too short",
			input: CreateInput{
				Title:     "ab",
				Price:     "19.99",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"title": CodeTooShort},
		},
		{
			name: "title too long",
			input: CreateInput{
				Title:     strings.Repeat("a", 256),
				Price:     "19.99",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"title": CodeTooLong},
		},
		{
			name: "title whitespace only",
			input: CreateInput{
				Title:     "   ",
				Price:     "19.99",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"title": CodeRequired},
		},
		{
			name: "negative price",
			input: CreateInput{
				Title:     "Conference",
				Price:     "-5",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"price": CodeNegative},
		},
		{
			name: "price with too many decimals",
			input: CreateInput{
				Title:     "Conference",
				Price:     "19.999",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"price": CodeTooManyDecimals},
		},
		{
			name: "price not a number",
			input: CreateInput{
				Title:     "Conference",
				Price:     "free",
				StartDate: "10/01/2025",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"price": CodeNotANumber},
		},
		{
			name: "bad date format",
			input: CreateInput{
				Title:     "Conference",
				Price:     "19.99",
				StartDate: "2025-01-10",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"startDate": CodeInvalidFormat},
		},
		{
			name: "end before start attaches to endDate",
			input: CreateInput{
				Title:     "Conference",
				Price:     "19.99",
				StartDate: "10/01/2025",
				EndDate:   "09/01/2025",
			},
			wantErrs: map[string]Code{"endDate": CodeEndBeforeStart},
		},
		{
			name: "end equal to start rejected",
			input: CreateInput{
				Title:     "Conference",
				Price:     "19.99",
				StartDate: "10/01/2025",
				EndDate:   "10/01/2025",
			},
			wantErrs: map[string]Code{"endDate": CodeEndBeforeStart},
		},
		{
			name: "start date in the past",
			input: CreateInput{
				Title:     "Conference",
				Price:     "19.99",
				StartDate: "31/12/2024",
				EndDate:   "11/01/2025",
			},
			wantErrs: map[string]Code{"startDate": CodeStartNotFuture},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			payload, errs := ValidateForCreate(tc.input, testNow)

			if len(tc.wantErrs) > 0 {
				require.NotEmpty(t, errs)
				for field, code := range tc.wantErrs {
					assert.True(t, errs.Has(field, code), "expected %s on %s, got %v", code, field, errs)
				}
				return
			}

			require.Empty(t, errs)
			if tc.checkValid != nil {
				tc.checkValid(t, payload)
			}
		})
	}
}

// One call reports every violated field, not just the first.
func TestValidateForCreateAggregatesErrors(t *testing.T) {
	t.Parallel()

	_, errs := ValidateForCreate(CreateInput{
		Title:     "",
		Price:     "-5",
		StartDate: "",
		EndDate:   "11/01/2025",
	}, testNow)

	require.GreaterOrEqual(t, len(errs), 3)
	assert.True(t, errs.Has("title", CodeRequired))
	assert.True(t, errs.Has("price", CodeNegative))
	assert.True(t, errs.Has("startDate", CodeRequired))
}

func TestValidateForUpdate(t *testing.T) {
	t.Parallel()

	validInput := UpdateInput{
		ID:        "7",
		Title:     "Conference",
		Price:     "19.99",
		StartDate: "10/01/2020",
		EndDate:   "11/01/2020",
		Status:    "paused",
	}

	t.Run("past start date is allowed", func(t *testing.T) {
		t.Parallel()

		payload, errs := ValidateForUpdate(validInput)

		require.Empty(t, errs)
		assert.Equal(t, 7, payload.ID)
		assert.Equal(t, models.StatusPaused, payload.Status)
		assert.Equal(t, int64(1999), payload.Price)
		assert.Equal(t, time.Date(2020, time.January, 10, 0, 0, 0, 0, time.Local).Unix(), payload.StartDate)
	})

	t.Run("end before start still rejected", func(t *testing.T) {
		t.Parallel()

		in := validInput
		in.EndDate = "09/01/2020"

		_, errs := ValidateForUpdate(in)

		assert.True(t, errs.Has("endDate", CodeEndBeforeStart))
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"0", "-1", "abc", ""} {
			in := validInput
			in.ID = id

			_, errs := ValidateForUpdate(in)

			assert.True(t, errs.Has("id", CodeInvalidID), "id %q", id)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		t.Parallel()

		for _, status := range []string{"", "archived", "Started"} {
			in := validInput
			in.Status = status

			_, errs := ValidateForUpdate(in)

			assert.True(t, errs.Has("status", CodeInvalidStatus), "status %q", status)
		}
	})

	t.Run("field and id errors aggregate", func(t *testing.T) {
		t.Parallel()

		_, errs := ValidateForUpdate(UpdateInput{
			ID:     "abc",
			Title:  "ab",
			Price:  "19.99",
			Status: "started",
		})

		assert.True(t, errs.Has("id", CodeInvalidID))
		assert.True(t, errs.Has("title", CodeTooShort))
		assert.True(t, errs.Has("startDate", CodeRequired))
		assert.True(t, errs.Has("endDate", CodeRequired))
	})
}

func TestValidateDelete(t *testing.T) {
	t.Parallel()

	t.Run("valid id", func(t *testing.T) {
		t.Parallel()

		payload, errs := ValidateDelete(DeleteInput{ID: "5"})

		require.Empty(t, errs)
		assert.Equal(t, 5, payload.ID)
	})

	t.Run("invalid ids", func(t *testing.T) {
		t.Parallel()

		for _, id := range []string{"0", "-3", "", "five", "1.5"} {
			_, errs := ValidateDelete(DeleteInput{ID: id})

			assert.True(t, errs.Has("id", CodeInvalidID), "id %q", id)
		}
	})
}

// Canonical -> display form -> canonical keeps title, price and the
// calendar day of both dates.
func TestEditFormRoundTrip(t *testing.T) {
	t.Parallel()

	event := &models.Event{
		ID:        7,
		Title:     "Conference",
		Price:     1990,
		Status:    models.StatusPaused,
		StartDate: time.Date(2020, time.January, 10, 0, 0, 0, 0, time.Local).Unix(),
		EndDate:   time.Date(2020, time.January, 11, 0, 0, 0, 0, time.Local).Unix(),
	}

	form := EditForm(event)

	assert.Equal(t, "7", form.ID)
	assert.Equal(t, "19.9", form.Price)
	assert.Equal(t, "10/01/2020", form.StartDate)
	assert.Equal(t, "11/01/2020", form.EndDate)

	payload, errs := ValidateForUpdate(form)
	require.Empty(t, errs)

	assert.Equal(t, event.ID, payload.ID)
	assert.Equal(t, event.Title, payload.Title)
	assert.Equal(t, event.Price, payload.Price)
	assert.Equal(t, event.Status, payload.Status)
	assert.Equal(t, event.StartDate, payload.StartDate)
	assert.Equal(t, event.EndDate, payload.EndDate)
}

func TestFieldErrorsError(t *testing.T) {
	t.Parallel()

	errs := FieldErrors{
		{Field: "title", Code: CodeTooShort, Message: "Title is too short, minimum 3 characters"},
		{Field: "price", Code: CodeNegative, Message: "Invalid price, minimum zero (0) dollars"},
	}

	assert.Equal(t, "title: Title is too short, minimum 3 characters; price: Invalid price, minimum zero (0) dollars", errs.Error())
}

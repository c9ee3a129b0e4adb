// Package dates converts between the canonical event date representation
// (Unix epoch seconds) and the dd/mm/yyyy strings shown in forms.
package dates

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidFormat = errors.New("date must match dd/mm/yyyy")

// Day 01-31 and month 01-12 are checked syntactically only. A calendrically
// impossible combination such as 31/02/2024 passes the pattern and is
// normalized forward by time.Date (to 2 March 2024). Callers relying on
// strict calendar validity must check the parsed value themselves.
var displayDateRegex = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/([1-9][0-9]{3})$`)

// ParseDisplayDate parses a dd/mm/yyyy string into an instant at local
// midnight of that day.
func ParseDisplayDate(s string) (time.Time, error) {
	if !displayDateRegex.MatchString(s) {
		return time.Time{}, ErrInvalidFormat
	}

	parts := strings.Split(s, "/")

	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// FormatDisplayDate renders epoch seconds as dd/mm/yyyy in local time,
// suitable for prefilling a date input.
func FormatDisplayDate(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).Format("02/01/2006")
}

// FormatHumanDate renders epoch seconds like "05 Jan 2025".
func FormatHumanDate(epochSeconds int64) string {
	return time.Unix(epochSeconds, 0).Format("02 Jan 2006")
}

// ToEpochSeconds floors the instant's millisecond value to whole seconds.
// Floor, not truncation toward zero: pre-epoch instants must not round up.
func ToEpochSeconds(t time.Time) int64 {
	ms := t.UnixMilli()

	sec := ms / 1000
	if ms%1000 < 0 {
		sec--
	}

	return sec
}

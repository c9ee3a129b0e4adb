// Package currency converts between major-unit decimal strings entered in
// forms ("19.99") and the integer minor units (cents) the API expects.
// All arithmetic is done on decimal digits, never through float64: a price
// of 19.99 must become exactly 1999.
package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotANumber      = errors.New("price is not a number")
	ErrNegative        = errors.New("price must not be negative")
	ErrTooManyDecimals = errors.New("price must have at most 2 decimal places")
)

// ToMinorUnits parses a non-negative decimal amount with at most two
// fraction digits and returns it in minor units.
func ToMinorUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotANumber
	}

	if strings.HasPrefix(s, "-") {
		// Validate the remainder first so "-abc" reads as not-a-number.
		if _, err := ToMinorUnits(s[1:]); err != nil {
			return 0, err
		}
		return 0, ErrNegative
	}

	whole, frac, hasFrac := strings.Cut(s, ".")

	if whole == "" && frac == "" {
		return 0, ErrNotANumber
	}
	if whole == "" {
		whole = "0"
	}

	if !isDigits(whole) {
		return 0, ErrNotANumber
	}
	if hasFrac {
		if frac == "" || !isDigits(frac) {
			return 0, ErrNotANumber
		}
		if len(frac) > 2 {
			return 0, ErrTooManyDecimals
		}
	}

	for len(frac) < 2 {
		frac += "0"
	}

	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	fracVal, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrNotANumber
	}

	return wholeVal*100 + fracVal, nil
}

// ToMajorUnits renders minor units as a decimal string with trailing
// zeros trimmed: 1999 -> "19.99", 1990 -> "19.9", 1200 -> "12".
func ToMajorUnits(minorUnits int64) string {
	sign := ""
	if minorUnits < 0 {
		sign = "-"
		minorUnits = -minorUnits
	}

	whole := minorUnits / 100
	frac := minorUnits % 100

	switch {
	case frac == 0:
		return fmt.Sprintf("%s%d", sign, whole)
	case frac%10 == 0:
		return fmt.Sprintf("%s%d.%d", sign, whole, frac/10)
	default:
		return fmt.Sprintf("%s%d.%02d", sign, whole, frac)
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

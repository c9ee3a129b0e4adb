package validation

import (
	"fmt"
	"strings"
)

// Code identifies a single validation rule. Codes are stable contract
// values; messages are presentation only.
type Code string

const (
	CodeRequired        Code = "required"
	CodeTooShort        Code = "too_short"
	CodeTooLong         Code = "too_long"
	CodeNotANumber      Code = "not_a_number"
	CodeNegative        Code = "negative"
	CodeTooManyDecimals Code = "too_many_decimals"
	CodeInvalidFormat   Code = "invalid_format"
	CodeEndBeforeStart  Code = "end_before_start"
	CodeStartNotFuture  Code = "start_not_future"
	CodeInvalidID       Code = "invalid_id"
	CodeInvalidStatus   Code = "invalid_status"
)

// FieldError is a validation failure attributable to exactly one field,
// so a caller can render the message inline next to that field.
type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// FieldErrors aggregates every violated rule across all fields of one
// validation call. It is returned as a value, never panicked.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}

	return strings.Join(msgs, "; ")
}

// Has reports whether the given rule failed for the given field.
func (e FieldErrors) Has(field string, code Code) bool {
	for _, fe := range e {
		if fe.Field == field && fe.Code == code {
			return true
		}
	}
	return false
}

func (e *FieldErrors) add(field string, code Code, format string, args ...any) {
	*e = append(*e, FieldError{
		Field:   field,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

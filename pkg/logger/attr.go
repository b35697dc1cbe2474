package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error is the "error" attribute, or an empty Attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

// Field is the record attribute being validated or assigned.
func Field(name string) slog.Attr { return slog.String("field", name) }

// Mode accepts a temporal.Mode; it is logged through its String method.
func Mode(mode any) slog.Attr { return slog.Any("mode", mode) }

// Input is the raw user input, logged as typed.
func Input(raw any) slog.Attr { return slog.Any("input", raw) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

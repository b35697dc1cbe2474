package logger

import "errors"

var ErrInvalidFormat = errors.New("invalid log format")

package get_next_flat

import (
	"context"
	"time"
)

type AvailabilityService interface {
	NextFlat(ctx context.Context, asOf time.Time) (string, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

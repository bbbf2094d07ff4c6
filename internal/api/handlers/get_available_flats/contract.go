package get_available_flats

import (
	"context"
	"time"
)

type AvailabilityService interface {
	AvailableFlats(ctx context.Context, checkIn, checkOut time.Time) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

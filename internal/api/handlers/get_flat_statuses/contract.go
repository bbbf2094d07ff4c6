package get_flat_statuses

import (
	"context"
	"time"

	availabilityService "github.com/m04kA/GH-BookingService/internal/service/availability"
)

type AvailabilityService interface {
	Board(ctx context.Context, asOf time.Time) (*availabilityService.FlatBoard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_rooms

import (
	"context"
	"time"

	"github.com/m04kA/GH-BookingService/internal/domain"
)

type AvailabilityService interface {
	UnitCounts(ctx context.Context, asOf time.Time) (map[domain.RoomType]int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
